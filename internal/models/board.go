package models

import (
	"time"

	"gorm.io/gorm"
)

// Board is the top-level container. It has exactly one owner and a set of
// members stored in the board_members join table. The owner is not stored in
// the member set; the permission layer treats the owner as a member everywhere.
type Board struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	OwnerID   uint           `gorm:"index;not null" json:"owner_id"`
	Owner     *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members   []User         `gorm:"many2many:board_members" json:"members,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Board) TableName() string { return "boards" }
