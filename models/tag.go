package models

import "time"

// Tag — метка для группировки площадок (например, "центр", "премиум").
type Tag struct {
	ID        uint      `gorm:"primaryKey"              json:"ID"`
	CreatedAt time.Time `                               json:"CreatedAt"`
	UpdatedAt time.Time `                               json:"UpdatedAt"`

	Name  string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Color string `gorm:"column:color;default:'#6c757d'"   json:"color"`
}

func (Tag) TableName() string { return "tags" }
