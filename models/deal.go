package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DealStatus — стадия воронки продаж.
type DealStatus string

const (
	DealNew        DealStatus = "new"
	DealInProgress DealStatus = "in_progress"
	DealApproval   DealStatus = "approval"
	DealWon        DealStatus = "won"
	DealLost       DealStatus = "lost"
	DealArchived   DealStatus = "archived"
)

func (s DealStatus) Valid() bool {
	switch s {
	case DealNew, DealInProgress, DealApproval, DealWon, DealLost, DealArchived:
		return true
	}
	return false
}

// Terminal сообщает, является ли статус конечным (won/lost).
func (s DealStatus) Terminal() bool {
	return s == DealWon || s == DealLost
}

// Deal — сделка: потенциальный договор, который ведёт менеджер.
// closed_at проставляется автоматически при переходе в конечный статус.
type Deal struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Title          string          `gorm:"column:title;not null"                          json:"title"`
	ClientID       uint            `gorm:"column:client_id;not null;index"                json:"clientId"`
	ManagerID      uint            `gorm:"column:manager_id;not null;index"               json:"managerId"`
	Status         DealStatus      `gorm:"column:status;type:varchar(20);default:'new';index" json:"status"`
	ExpectedAmount decimal.Decimal `gorm:"column:expected_amount;type:numeric(12,2)"      json:"expectedAmount"`
	Probability    int             `gorm:"column:probability;default:50"                  json:"probability"`
	ClosedAt       *time.Time      `gorm:"column:closed_at"                               json:"closedAt,omitempty"`

	Client  *Client `gorm:"foreignKey:ClientID"  json:"client,omitempty"`
	Manager *User   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`

	Tasks []DealTask `gorm:"foreignKey:DealID" json:"tasks,omitempty"`
}

func (Deal) TableName() string { return "deals" }
