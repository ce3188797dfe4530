package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskPriority — приоритет задачи по сделке.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// DealTask — задача-напоминание по сделке.
// completed_at проставляется автоматически при выставлении is_done.
type DealTask struct {
	ID        uint           `gorm:"primaryKey"          json:"ID"`
	CreatedAt time.Time      `                           json:"CreatedAt"`
	UpdatedAt time.Time      `                           json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"               json:"DeletedAt"`

	DealID      uint         `gorm:"column:deal_id;not null;index"     json:"dealId"`
	AssigneeID  *uint        `gorm:"column:assignee_id;index"          json:"assigneeId,omitempty"`
	Title       string       `gorm:"column:title;not null"             json:"title"`
	Description string       `gorm:"column:description;type:text"      json:"description"`
	DueDate     time.Time    `gorm:"column:due_date;type:date;index"   json:"dueDate"`
	Priority    TaskPriority `gorm:"column:priority;type:varchar(10);default:'medium'" json:"priority"`
	IsDone      bool         `gorm:"column:is_done;default:false;index" json:"isDone"`
	CompletedAt *time.Time   `gorm:"column:completed_at"               json:"completedAt,omitempty"`

	Deal     *Deal `gorm:"foreignKey:DealID"     json:"deal,omitempty"`
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}

func (DealTask) TableName() string { return "deal_tasks" }
