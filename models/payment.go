package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod — способ оплаты.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodOther    PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodOther:
		return true
	}
	return false
}

// PaymentStatus — статус платежа.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment — платёж по договору.
// confirmation_date проставляется при первом подтверждении; статус completed
// подразумевает is_confirmed = true. Квитанция хранится на диске (receipt_path).
type Payment struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	ContractID       uint            `gorm:"column:contract_id;not null;index"              json:"contractId"`
	Amount           decimal.Decimal `gorm:"column:amount;type:numeric(12,2);check:amount >= 0" json:"amount"`
	Date             time.Time       `gorm:"column:date;type:date;not null;index"           json:"date"`
	Method           PaymentMethod   `gorm:"column:method;type:varchar(10);default:'transfer'" json:"method"`
	Status           PaymentStatus   `gorm:"column:status;type:varchar(10);default:'pending';index" json:"status"`
	IsConfirmed      bool            `gorm:"column:is_confirmed;default:false;index"        json:"isConfirmed"`
	ConfirmationDate *time.Time      `gorm:"column:confirmation_date"                       json:"confirmationDate,omitempty"`
	TransactionID    string          `gorm:"column:transaction_id"                          json:"transactionId"`
	Notes            string          `gorm:"column:notes;type:text"                         json:"notes"`
	ReceiptPath      string          `gorm:"column:receipt_path"                            json:"receiptPath"`

	ConfirmedByID *uint `gorm:"column:confirmed_by_id" json:"confirmedById,omitempty"`
	ConfirmedBy   *User `gorm:"foreignKey:ConfirmedByID" json:"confirmedBy,omitempty"`

	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
}

func (Payment) TableName() string { return "payments" }
