package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to exactly one task and has exactly one author; both
// references are immutable. Only the author may update or delete it.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TaskID    uint           `gorm:"index;not null" json:"task_id"`
	Task      *Task          `gorm:"foreignKey:TaskID" json:"-"`
	AuthorID  uint           `gorm:"index;not null" json:"author_id"`
	Author    *User          `gorm:"foreignKey:AuthorID" json:"-"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string { return "comments" }
