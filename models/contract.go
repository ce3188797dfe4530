package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentType — схема оплаты по договору.
type PaymentType string

const (
	PaymentFull    PaymentType = "full"
	PaymentPartial PaymentType = "partial"
	PaymentPostpay PaymentType = "postpay"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentFull, PaymentPartial, PaymentPostpay:
		return true
	}
	return false
}

// Contract описывает договор аренды рекламных площадок.
// total_amount — производное поле: всегда равно сумме цен позиций
// (contract_assets) и пересчитывается сервисным слоем при любой их мутации.
// Документ хранится на диске; в БД пишем только путь в поле document_path.
type Contract struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Number      string          `gorm:"column:number;uniqueIndex;not null"            json:"number"`
	ClientID    uint            `gorm:"column:client_id;not null;index"               json:"clientId"`
	DealID      *uint           `gorm:"column:deal_id;index"                          json:"dealId,omitempty"`
	StartDate   time.Time       `gorm:"column:start_date;type:date;not null;index"    json:"startDate"`
	EndDate     time.Time       `gorm:"column:end_date;type:date;not null;index;check:end_date >= start_date" json:"endDate"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);check:total_amount >= 0" json:"totalAmount"`
	PaymentType PaymentType     `gorm:"column:payment_type;type:varchar(10);default:'full'" json:"paymentType"`
	Signed      bool            `gorm:"column:signed;default:false"                   json:"signed"`
	SignedDate  *time.Time      `gorm:"column:signed_date;type:date"                  json:"signedDate,omitempty"`
	IsActive    bool            `gorm:"column:is_active;default:true;index"           json:"isActive"`
	IsFullyPaid bool            `gorm:"column:is_fully_paid;default:false"            json:"isFullyPaid"`

	DocumentPath string `gorm:"column:document_path" json:"documentPath"`

	// Связи
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Deal   *Deal   `gorm:"foreignKey:DealID"   json:"deal,omitempty"`

	Lines    []ContractAsset `gorm:"foreignKey:ContractID" json:"lines,omitempty"`
	Payments []Payment       `gorm:"foreignKey:ContractID" json:"payments,omitempty"`
}

func (Contract) TableName() string { return "contracts" }

// ContractAsset — позиция договора: одна площадка (и, опционально, один слот
// доступности) по фиксированной цене. Тройка (contract, asset, slot) уникальна.
type ContractAsset struct {
	ID        uint      `gorm:"primaryKey" json:"ID"`
	CreatedAt time.Time `               json:"CreatedAt"`

	ContractID uint            `gorm:"column:contract_id;not null;index;uniqueIndex:uniq_contract_line" json:"contractId"`
	AssetID    uint            `gorm:"column:asset_id;not null;index;uniqueIndex:uniq_contract_line"    json:"assetId"`
	SlotID     *uint           `gorm:"column:slot_id;index;uniqueIndex:uniq_contract_line"              json:"slotId,omitempty"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(12,2);check:price >= 0"                 json:"price"`
	Notes      string          `gorm:"column:notes;type:text"                                           json:"notes"`

	Contract *Contract         `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Asset    *Asset            `gorm:"foreignKey:AssetID"    json:"asset,omitempty"`
	Slot     *AvailabilitySlot `gorm:"foreignKey:SlotID"     json:"slot,omitempty"`
}

func (ContractAsset) TableName() string { return "contract_assets" }
