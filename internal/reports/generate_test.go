package reports

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}
	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("не удалось мигрировать тестовую БД: %v", err)
	}
	return db
}

func TestGenerateProducesFilesAndData(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	report := models.FinancialReport{
		Title:       "Отчёт за март",
		PeriodType:  models.PeriodMonth,
		PeriodStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		Status:      models.ReportPending,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("создание отчёта: %v", err)
	}

	if err := Generate(db, report.ID, dir); err != nil {
		t.Fatalf("генерация: %v", err)
	}

	var got models.FinancialReport
	db.First(&got, report.ID)
	if got.Status != models.ReportReady {
		t.Fatalf("статус после генерации: %s", got.Status)
	}
	for _, path := range []string{got.ExcelPath, got.WordPath} {
		if path == "" {
			t.Fatal("пути файлов должны быть заполнены")
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("файл отчёта не записан: %v", err)
		}
	}

	var data ReportData
	if err := json.Unmarshal(got.ReportData, &data); err != nil {
		t.Fatalf("данные отчёта нечитаемы: %v", err)
	}
	if data.Title != "Отчёт за март" {
		t.Fatalf("заголовок данных: %q", data.Title)
	}
	if data.Summary == nil || data.Utilization == nil {
		t.Fatal("сводка и загрузка должны присутствовать даже на пустой базе")
	}
}

func TestGenerateMissingReportFails(t *testing.T) {
	db := setupTestDB(t)
	if err := Generate(db, 999, t.TempDir()); err == nil {
		t.Fatal("генерация несуществующего отчёта должна вернуть ошибку")
	}
}
