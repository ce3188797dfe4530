// ad-rental-platform/internal/reports/generate.go
package reports

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Generate строит отчёт целиком: данные, файл Excel и файл Word.
// При успехе отчёт переходит в статус ready, при любой ошибке в failed.
// Повторных попыток нет, ошибка остаётся в логе.
func Generate(db *gorm.DB, reportID uint, dir string) error {
	var report models.FinancialReport
	if err := db.First(&report, reportID).Error; err != nil {
		return err
	}

	if err := generateFiles(db, &report, dir); err != nil {
		slog.Error("генерация отчёта не удалась",
			"report_id", reportID, "error", err)
		db.Model(&report).Update("status", models.ReportFailed)
		return err
	}
	return nil
}

func generateFiles(db *gorm.DB, report *models.FinancialReport, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := Build(db, report)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	base := fmt.Sprintf("report_%d_%s", report.ID, uuid.NewString())
	excelPath := filepath.Join(dir, base+".xlsx")
	wordPath := filepath.Join(dir, base+".docx")

	if err := WriteExcel(data, excelPath); err != nil {
		return err
	}
	if err := WriteWord(data, wordPath); err != nil {
		return err
	}

	return db.Model(report).Updates(map[string]interface{}{
		"report_data": datatypes.JSON(raw),
		"excel_path":  excelPath,
		"word_path":   wordPath,
		"status":      models.ReportReady,
	}).Error
}
