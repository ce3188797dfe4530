package models

import (
	"time"

	"gorm.io/gorm"
)

// AvailabilitySlot — период доступности площадки ("шахматка").
// Инварианты: end_date >= start_date; слоты одной площадки не пересекаются;
// свободный слот не несёт ссылки на договор.
type AvailabilitySlot struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	AssetID     uint      `gorm:"column:asset_id;not null;index"        json:"assetId"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null;check:end_date >= start_date" json:"endDate"`
	IsAvailable bool      `gorm:"column:is_available;default:true;index" json:"isAvailable"`

	// Обратная ссылка на договор, зарезервировавший слот
	ReservedByID *uint     `gorm:"column:reserved_by_id;index" json:"reservedById,omitempty"`
	ReservedBy   *Contract `gorm:"foreignKey:ReservedByID"     json:"reservedBy,omitempty"`

	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

func (AvailabilitySlot) TableName() string { return "availability_slots" }

// Overlaps сообщает, пересекается ли слот с периодом [start, end].
// Границы считаются открытыми: соприкасающиеся встык периоды не конфликтуют.
func (s AvailabilitySlot) Overlaps(start, end time.Time) bool {
	return s.StartDate.Before(end) && s.EndDate.After(start)
}
