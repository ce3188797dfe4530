// ad-rental-platform/internal/reports/data.go
package reports

import (
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/internal/services"
	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/gorm"
)

// ReportData — содержимое финансового отчёта. Эта же структура
// сериализуется в JSON-колонку отчёта и ложится в файлы Excel/Word.
type ReportData struct {
	Title       string                     `json:"title"`
	PeriodStart string                     `json:"periodStart"`
	PeriodEnd   string                     `json:"periodEnd"`
	GeneratedAt time.Time                  `json:"generatedAt"`
	Summary     *services.FinancialSummary `json:"summary"`
	Monthly     []services.MonthPoint      `json:"monthly"`
	Utilization *services.UtilizationStats `json:"utilization"`
	Pipeline    []services.PipelineStage   `json:"pipeline"`
	TopClients  []services.ClientRevenue   `json:"topClients"`
}

// Build собирает данные отчёта за период из аналитики сервисного слоя.
func Build(db *gorm.DB, report *models.FinancialReport) (*ReportData, error) {
	summary, err := services.SummarizePayments(db, report.PeriodStart, report.PeriodEnd)
	if err != nil {
		return nil, err
	}
	monthly, err := services.MonthlyRevenue(db, report.PeriodStart, report.PeriodEnd)
	if err != nil {
		return nil, err
	}
	utilization, err := services.AssetUtilization(db, report.PeriodEnd)
	if err != nil {
		return nil, err
	}
	pipeline, err := services.DealPipeline(db)
	if err != nil {
		return nil, err
	}
	topClients, err := services.TopClients(db, 10)
	if err != nil {
		return nil, err
	}

	return &ReportData{
		Title:       report.Title,
		PeriodStart: report.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   report.PeriodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Monthly:     monthly,
		Utilization: utilization,
		Pipeline:    pipeline,
		TopClients:  topClients,
	}, nil
}
