package models

import (
	"time"

	"gorm.io/gorm"
)

// Client описывает клиента-рекламодателя.
// ИНН необязателен; если указан — 10 или 12 цифр (для 10-значного сверяется
// контрольная сумма на уровне валидации).
type Client struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `gorm:"index"               json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	Name          string  `gorm:"column:name;not null"               json:"name"`
	INN           *string `gorm:"column:inn;uniqueIndex"             json:"inn,omitempty"`
	ContactPerson string  `gorm:"column:contact_person"              json:"contactPerson"`
	Phone         string  `gorm:"column:phone"                       json:"phone"`
	Email         string  `gorm:"column:email"                       json:"email"`
	IsVIP         bool    `gorm:"column:is_vip;default:false"        json:"isVip"`
	IsActive      bool    `gorm:"column:is_active;default:true;index" json:"isActive"`
	Notes         string  `gorm:"column:notes;type:text"             json:"notes"`

	// Связи
	ManagerID *uint `gorm:"column:manager_id;index" json:"managerId,omitempty"`
	Manager   *User `gorm:"foreignKey:ManagerID"    json:"manager,omitempty"`
}

func (Client) TableName() string { return "clients" }
