// ad-rental-platform/internal/services/analytics.go
package services

import (
	"sort"
	"time"

	"github.com/AlgisPropolov/ad-rental-platform/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialSummary — агрегат по платежам за период.
type FinancialSummary struct {
	ConfirmedTotal   decimal.Decimal `json:"confirmedTotal"`
	UnconfirmedTotal decimal.Decimal `json:"unconfirmedTotal"`
	ConfirmedCount   int             `json:"confirmedCount"`
	UnconfirmedCount int             `json:"unconfirmedCount"`
}

// MonthPoint — точка помесячного ряда (месяц в формате YYYY-MM).
type MonthPoint struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// UtilizationStats — загрузка рекламных площадок.
type UtilizationStats struct {
	TotalAssets    int64   `json:"totalAssets"`
	OccupiedAssets int64   `json:"occupiedAssets"`
	Utilization    float64 `json:"utilization"`
}

// PipelineStage — стадия воронки продаж с числом сделок и ожидаемой суммой.
type PipelineStage struct {
	Status   models.DealStatus `json:"status"`
	Count    int               `json:"count"`
	Expected decimal.Decimal   `json:"expected"`
}

// ClientRevenue — клиент и сумма его договоров.
type ClientRevenue struct {
	ClientID uint            `json:"clientId"`
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	IsVIP    bool            `json:"isVip"`
}

// SummarizePayments считает суммы подтверждённых и неподтверждённых платежей
// за период [from, to]. Суммы складываются в decimal без потери точности.
func SummarizePayments(db *gorm.DB, from, to time.Time) (*FinancialSummary, error) {
	var payments []models.Payment
	if err := db.Where("date >= ? AND date <= ?", from, to).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	s := &FinancialSummary{
		ConfirmedTotal:   decimal.Zero,
		UnconfirmedTotal: decimal.Zero,
	}
	for _, p := range payments {
		if p.IsConfirmed {
			s.ConfirmedTotal = s.ConfirmedTotal.Add(p.Amount)
			s.ConfirmedCount++
		} else {
			s.UnconfirmedTotal = s.UnconfirmedTotal.Add(p.Amount)
			s.UnconfirmedCount++
		}
	}
	return s, nil
}

// MonthlyRevenue строит помесячный ряд выручки по подтверждённым платежам.
// Группировка делается в памяти, чтобы не зависеть от диалекта date_trunc.
func MonthlyRevenue(db *gorm.DB, from, to time.Time) ([]MonthPoint, error) {
	var payments []models.Payment
	if err := db.Where("is_confirmed = ? AND date >= ? AND date <= ?", true, from, to).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	byMonth := map[string]*MonthPoint{}
	for _, p := range payments {
		key := p.Date.Format("2006-01")
		point, ok := byMonth[key]
		if !ok {
			point = &MonthPoint{Month: key, Total: decimal.Zero}
			byMonth[key] = point
		}
		point.Total = point.Total.Add(p.Amount)
		point.Count++
	}
	series := make([]MonthPoint, 0, len(byMonth))
	for _, point := range byMonth {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series, nil
}

// AssetUtilization считает долю площадок, занятых действующими договорами
// на дату at. Площадка занята, если на неё есть позиция активного договора,
// период которого покрывает дату.
func AssetUtilization(db *gorm.DB, at time.Time) (*UtilizationStats, error) {
	stats := &UtilizationStats{}
	if err := db.Model(&models.Asset{}).
		Where("is_active = ?", true).Count(&stats.TotalAssets).Error; err != nil {
		return nil, err
	}

	var contracts []models.Contract
	if err := db.Preload("Lines").
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, at, at).
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	occupied := map[uint]struct{}{}
	for _, c := range contracts {
		for _, line := range c.Lines {
			occupied[line.AssetID] = struct{}{}
		}
	}
	stats.OccupiedAssets = int64(len(occupied))
	if stats.TotalAssets > 0 {
		stats.Utilization = float64(stats.OccupiedAssets) / float64(stats.TotalAssets)
	}
	return stats, nil
}

// DealPipeline возвращает воронку продаж: число сделок и ожидаемую сумму
// по каждой стадии, в порядке движения по воронке.
func DealPipeline(db *gorm.DB) ([]PipelineStage, error) {
	var deals []models.Deal
	if err := db.Find(&deals).Error; err != nil {
		return nil, err
	}
	order := []models.DealStatus{
		models.DealNew, models.DealInProgress, models.DealApproval,
		models.DealWon, models.DealLost, models.DealArchived,
	}
	byStatus := map[models.DealStatus]*PipelineStage{}
	for _, status := range order {
		byStatus[status] = &PipelineStage{Status: status, Expected: decimal.Zero}
	}
	for _, d := range deals {
		stage, ok := byStatus[d.Status]
		if !ok {
			continue
		}
		stage.Count++
		stage.Expected = stage.Expected.Add(d.ExpectedAmount)
	}
	pipeline := make([]PipelineStage, 0, len(order))
	for _, status := range order {
		pipeline = append(pipeline, *byStatus[status])
	}
	return pipeline, nil
}

// TopClients возвращает клиентов с наибольшей суммой договоров.
func TopClients(db *gorm.DB, limit int) ([]ClientRevenue, error) {
	var contracts []models.Contract
	if err := db.Preload("Client").Find(&contracts).Error; err != nil {
		return nil, err
	}
	byClient := map[uint]*ClientRevenue{}
	for _, c := range contracts {
		entry, ok := byClient[c.ClientID]
		if !ok {
			entry = &ClientRevenue{ClientID: c.ClientID, Total: decimal.Zero}
			if c.Client != nil {
				entry.Name = c.Client.Name
				entry.IsVIP = c.Client.IsVIP
			}
			byClient[c.ClientID] = entry
		}
		entry.Total = entry.Total.Add(c.TotalAmount)
	}
	top := make([]ClientRevenue, 0, len(byClient))
	for _, entry := range byClient {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Total.Equal(top[j].Total) {
			return top[i].Total.GreaterThan(top[j].Total)
		}
		return top[i].ClientID < top[j].ClientID
	})
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// TasksDueSoon возвращает незавершённые задачи со сроком в ближайшие days дней
// (просроченные включаются).
func TasksDueSoon(db *gorm.DB, days int) ([]models.DealTask, error) {
	horizon := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)
	var tasks []models.DealTask
	err := db.Preload("Deal").Preload("Assignee").
		Where("is_done = ? AND due_date <= ?", false, horizon).
		Order("due_date").
		Find(&tasks).Error
	return tasks, err
}
