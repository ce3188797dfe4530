// ad-rental-platform/internal/tasks/queue.go
package tasks

import (
	"encoding/json"
	"log/slog"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/reports"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"gorm.io/gorm"
)

// queueKey — список Redis, через который воркеру передаются фоновые задания.
const queueKey = "background_jobs"

// Типы фоновых заданий.
const (
	JobReport    = "report"
	JobDashboard = "dashboard"
)

// Job — фоновое задание: генерация отчёта или обновление дашборда.
type Job struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

// EnqueueReport ставит генерацию отчёта в очередь.
func EnqueueReport(db *gorm.DB, reportsDir string, reportID uint) error {
	return enqueue(db, reportsDir, Job{Type: JobReport, ID: reportID})
}

// EnqueueDashboardRefresh ставит обновление снапшота дашборда в очередь.
func EnqueueDashboardRefresh(db *gorm.DB, dashboardID uint) error {
	return enqueue(db, "", Job{Type: JobDashboard, ID: dashboardID})
}

// enqueue кладёт задание в Redis. Без Redis задание выполняется в фоне
// этого же процесса: функциональность сохраняется, теряется только
// распределение по воркерам.
func enqueue(db *gorm.DB, reportsDir string, job Job) error {
	if config.RDB == nil {
		go runJob(db, reportsDir, job)
		return nil
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := config.RDB.LPush(config.Ctx, queueKey, payload).Err(); err != nil {
		slog.Error("не удалось поставить задание в очередь",
			"type", job.Type, "id", job.ID, "error", err)
		return err
	}
	return nil
}

// runJob выполняет одно задание. Ошибка логируется, повторов нет.
func runJob(db *gorm.DB, reportsDir string, job Job) {
	var err error
	switch job.Type {
	case JobReport:
		err = reports.Generate(db, job.ID, reportsDir)
	case JobDashboard:
		_, err = services.RefreshDashboard(db, job.ID)
	default:
		slog.Error("неизвестный тип задания", "type", job.Type)
		return
	}
	if err != nil {
		slog.Error("фоновое задание завершилось ошибкой",
			"type", job.Type, "id", job.ID, "error", err)
	}
}
