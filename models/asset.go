package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetType — тип рекламной площадки.
type AssetType string

const (
	AssetBus       AssetType = "bus"
	AssetBusStop   AssetType = "bus_stop"
	AssetScreen    AssetType = "screen"
	AssetBillboard AssetType = "billboard"
	AssetDigital   AssetType = "digital"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetBus, AssetBusStop, AssetScreen, AssetBillboard, AssetDigital:
		return true
	}
	return false
}

// AssetZone — зона города, в которой расположена площадка.
type AssetZone string

const (
	ZoneCenter AssetZone = "center"
	ZoneNorth  AssetZone = "north"
	ZoneSouth  AssetZone = "south"
	ZoneEast   AssetZone = "east"
	ZoneWest   AssetZone = "west"
)

func (z AssetZone) Valid() bool {
	switch z {
	case ZoneCenter, ZoneNorth, ZoneSouth, ZoneEast, ZoneWest:
		return true
	}
	return false
}

// Asset — рекламная площадка (автобус, остановка, экран, билборд).
// Пара (location, asset_type) уникальна. Дневная ставка строго положительна —
// правило приложения; в БД остаётся только check daily_rate >= 0.
type Asset struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Name      string          `gorm:"column:name;not null"                                    json:"name"`
	AssetType AssetType       `gorm:"column:asset_type;type:varchar(20);not null;index;uniqueIndex:uniq_asset_location" json:"assetType"`
	Zone      AssetZone       `gorm:"column:zone;type:varchar(10);default:'center';index"     json:"zone"`
	Location  string          `gorm:"column:location;not null;uniqueIndex:uniq_asset_location" json:"location"`
	DailyRate decimal.Decimal `gorm:"column:daily_rate;type:numeric(10,2);check:daily_rate >= 0" json:"dailyRate"`
	IsActive  bool            `gorm:"column:is_active;default:true;index"                     json:"isActive"`
	Notes     string          `gorm:"column:notes;type:text"                                  json:"notes"`

	Tags []Tag `gorm:"many2many:asset_tags" json:"tags,omitempty"`
}

func (Asset) TableName() string { return "assets" }
