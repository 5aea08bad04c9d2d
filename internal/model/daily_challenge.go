package model

import (
	"time"

	"gorm.io/gorm"
)

// DailyChallenge is one per user per calendar day, created lazily on first
// request. Date is truncated to midnight.
type DailyChallenge struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    string         `json:"user_id" gorm:"not null;uniqueIndex:idx_user_challenge_date"`
	Date      time.Time      `json:"date" gorm:"not null;uniqueIndex:idx_user_challenge_date"`
	Completed bool           `json:"completed" gorm:"not null;default:false"`
	Score     *int           `json:"score,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
