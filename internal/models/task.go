package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values.
const (
	TaskStatusToDo       = "to-do"
	TaskStatusInProgress = "in-progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)

// Task priority values.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task belongs to exactly one board; the board reference is immutable after
// creation. Assignee and reviewer are optional and are validated against board
// membership at assignment time only.
type Task struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	BoardID     uint           `gorm:"index;not null" json:"board"`
	Board       *Board         `gorm:"foreignKey:BoardID" json:"-"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;not null" json:"status"`
	Priority    string         `gorm:"size:20;not null" json:"priority"`
	AssigneeID  *uint          `json:"assignee_id"`
	Assignee    *User          `gorm:"foreignKey:AssigneeID" json:"-"`
	ReviewerID  *uint          `json:"reviewer_id"`
	Reviewer    *User          `gorm:"foreignKey:ReviewerID" json:"-"`
	DueDate     string         `gorm:"size:10" json:"due_date"` // YYYY-MM-DD
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Task) TableName() string { return "tasks" }
