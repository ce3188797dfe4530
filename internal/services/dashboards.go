// ad-rental-platform/internal/services/dashboards.go
package services

import (
	"encoding/json"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardSnapshot — сводка показателей для дашборда.
type DashboardSnapshot struct {
	Summary      *FinancialSummary `json:"summary"`
	Monthly      []MonthPoint      `json:"monthly"`
	Utilization  *UtilizationStats `json:"utilization"`
	Pipeline     []PipelineStage   `json:"pipeline"`
	TopClients   []ClientRevenue   `json:"topClients"`
	TasksDueSoon int               `json:"tasksDueSoon"`
}

// BuildDashboardSnapshot собирает показатели за период [from, to].
func BuildDashboardSnapshot(db *gorm.DB, from, to time.Time) (*DashboardSnapshot, error) {
	summary, err := SummarizePayments(db, from, to)
	if err != nil {
		return nil, err
	}
	monthly, err := MonthlyRevenue(db, from, to)
	if err != nil {
		return nil, err
	}
	utilization, err := AssetUtilization(db, to)
	if err != nil {
		return nil, err
	}
	pipeline, err := DealPipeline(db)
	if err != nil {
		return nil, err
	}
	topClients, err := TopClients(db, 5)
	if err != nil {
		return nil, err
	}
	tasks, err := TasksDueSoon(db, 3)
	if err != nil {
		return nil, err
	}

	return &DashboardSnapshot{
		Summary:      summary,
		Monthly:      monthly,
		Utilization:  utilization,
		Pipeline:     pipeline,
		TopClients:   topClients,
		TasksDueSoon: len(tasks),
	}, nil
}

// RefreshDashboard пересчитывает снапшот дашборда за последний год
// и фиксирует время обновления.
func RefreshDashboard(db *gorm.DB, id uint) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := db.First(&dashboard, id).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snapshot, err := BuildDashboardSnapshot(db, now.AddDate(-1, 0, 0), now)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	dashboard.Snapshot = datatypes.JSON(raw)
	dashboard.RefreshedAt = &now
	if err := db.Save(&dashboard).Error; err != nil {
		return nil, err
	}
	return &dashboard, nil
}
