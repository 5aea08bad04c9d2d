package model

import (
	"time"

	"gorm.io/gorm"
)

// Bookmark marks a question a user wants to revisit.
type Bookmark struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     string         `json:"user_id" gorm:"not null;uniqueIndex:idx_user_bookmark"`
	QuestionID uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_user_bookmark"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
