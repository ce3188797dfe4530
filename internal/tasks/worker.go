// ad-rental-platform/internal/tasks/worker.go
package tasks

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/config"
	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// StartWorker запускает фоновые процессы: обработку очереди заданий
// и периодический планировщик.
func StartWorker(db *gorm.DB, reportsDir string) {
	if config.RDB != nil {
		go consumeJobs(db, reportsDir)
	}
	go runScheduler(db, reportsDir)
}

// consumeJobs снимает задания из очереди и выполняет их.
// Ошибка задания логируется, цикл продолжает работу.
func consumeJobs(db *gorm.DB, reportsDir string) {
	for {
		result, err := config.RDB.BRPop(config.Ctx, 5*time.Second, queueKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			slog.Error("ошибка чтения очереди заданий", "error", err)
			time.Sleep(time.Second)
			continue
		}
		// BRPop возвращает пару [ключ, значение]
		if len(result) < 2 {
			continue
		}
		var job Job
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			slog.Error("нечитаемое задание в очереди", "error", err)
			continue
		}
		runJob(db, reportsDir, job)
	}
}

// runScheduler раз в десять минут доставляет зависшие pending-отчёты,
// обновляет дашборды по умолчанию и пишет сводку по задачам со сроком.
func runScheduler(db *gorm.DB, reportsDir string) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		requeuePendingReports(db, reportsDir)
		refreshDefaultDashboards(db)
		logDueTasks(db)
	}
}

// requeuePendingReports возвращает в очередь отчёты, оставшиеся
// в статусе pending дольше десяти минут (потерянные задания).
func requeuePendingReports(db *gorm.DB, reportsDir string) {
	cutoff := time.Now().UTC().Add(-10 * time.Minute)
	var stale []models.FinancialReport
	if err := db.Where("status = ? AND updated_at < ?", models.ReportPending, cutoff).
		Find(&stale).Error; err != nil {
		slog.Error("не удалось найти зависшие отчёты", "error", err)
		return
	}
	for _, report := range stale {
		if err := EnqueueReport(db, reportsDir, report.ID); err == nil {
			slog.Info("зависший отчёт возвращён в очередь", "report_id", report.ID)
		}
	}
}

func refreshDefaultDashboards(db *gorm.DB) {
	var dashboards []models.Dashboard
	if err := db.Where("is_default = ?", true).Find(&dashboards).Error; err != nil {
		slog.Error("не удалось получить дашборды по умолчанию", "error", err)
		return
	}
	for _, dashboard := range dashboards {
		_ = EnqueueDashboardRefresh(db, dashboard.ID)
	}
}

func logDueTasks(db *gorm.DB) {
	tasks, err := services.TasksDueSoon(db, 3)
	if err != nil {
		slog.Error("не удалось получить задачи с подходящим сроком", "error", err)
		return
	}
	if len(tasks) == 0 {
		return
	}
	slog.Info("задачи с подходящим сроком", "count", len(tasks))
}
