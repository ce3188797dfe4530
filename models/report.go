package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportPeriodType — гранулярность финансового отчёта.
type ReportPeriodType string

const (
	PeriodDay     ReportPeriodType = "day"
	PeriodWeek    ReportPeriodType = "week"
	PeriodMonth   ReportPeriodType = "month"
	PeriodQuarter ReportPeriodType = "quarter"
	PeriodYear    ReportPeriodType = "year"
)

func (t ReportPeriodType) Valid() bool {
	switch t {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// ReportStatus — жизненный цикл отчёта: создан -> сгенерирован / ошибка.
type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
	ReportReady   ReportStatus = "ready"
	ReportFailed  ReportStatus = "failed"
)

// FinancialReport — финансовый отчёт.
// report_data хранит табличные данные отчёта (headers + rows) как JSON;
// файлы Excel/Word генерируются воркером и лежат на диске.
type FinancialReport struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Title       string           `gorm:"column:title;not null"                        json:"title"`
	PeriodType  ReportPeriodType `gorm:"column:period_type;type:varchar(10);default:'month'" json:"periodType"`
	PeriodStart time.Time        `gorm:"column:period_start;type:date;not null"       json:"periodStart"`
	PeriodEnd   time.Time        `gorm:"column:period_end;type:date;not null;index"   json:"periodEnd"`
	ReportData  datatypes.JSON   `gorm:"column:report_data"                           json:"reportData"`
	Status      ReportStatus     `gorm:"column:status;type:varchar(10);default:'pending';index" json:"status"`
	ExcelPath   string           `gorm:"column:excel_path"                            json:"excelPath"`
	WordPath    string           `gorm:"column:word_path"                             json:"wordPath"`

	CreatedByID *uint `gorm:"column:created_by_id"     json:"createdById,omitempty"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID"   json:"createdBy,omitempty"`
}

func (FinancialReport) TableName() string { return "financial_reports" }

// Dashboard — сохранённая конфигурация дашборда и её последний снапшот.
type Dashboard struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Title       string         `gorm:"column:title;not null"             json:"title"`
	Description string         `gorm:"column:description;type:text"      json:"description"`
	Config      datatypes.JSON `gorm:"column:config"                     json:"config"`
	Snapshot    datatypes.JSON `gorm:"column:snapshot"                   json:"snapshot"`
	IsDefault   bool           `gorm:"column:is_default;default:false"   json:"isDefault"`
	RefreshedAt *time.Time     `gorm:"column:refreshed_at"               json:"refreshedAt,omitempty"`

	CreatedByID *uint `gorm:"column:created_by_id"   json:"createdById,omitempty"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Dashboard) TableName() string { return "dashboards" }
