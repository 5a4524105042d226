package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task statuses and priorities are fixed enums; anything else is rejected
// at the service boundary.
const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

var (
	TaskStatuses   = []string{StatusTodo, StatusInProgress, StatusDone}
	TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// Task belongs to exactly one user; UserID is set at creation and never
// changes afterwards.
type Task struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"size:1000" json:"description"`
	Status      string          `gorm:"size:20;default:'To Do';index" json:"status"`
	Priority    string          `gorm:"size:10;default:'Medium';index" json:"priority"`
	DueDate     *datatypes.Date `json:"due_date"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func ValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func ValidTaskPriority(p string) bool {
	for _, v := range TaskPriorities {
		if v == p {
			return true
		}
	}
	return false
}
