package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole — роль пользователя в системе.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleClient  UserRole = "client"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	}
	return false
}

// User — сотрудник агентства (менеджер) либо учётная запись клиента.
type User struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	FullName   string   `gorm:"column:full_name;not null"        json:"fullName"`
	Email      string   `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone      string   `gorm:"column:phone"                     json:"phone"`
	Role       UserRole `gorm:"column:role;type:varchar(20);default:'manager';index" json:"role"`
	AvatarURL  string   `gorm:"column:avatar_url"                json:"avatarUrl"`
	IsVerified bool     `gorm:"column:is_verified;default:false" json:"isVerified"`
}

func (User) TableName() string { return "users" }
