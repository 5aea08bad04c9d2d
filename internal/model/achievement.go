package model

import (
	"time"

	"gorm.io/gorm"
)

// ConditionType is the closed set of achievement unlock conditions.
type ConditionType string

const (
	ConditionQuizCount      ConditionType = "quiz_count"
	ConditionCorrectAnswers ConditionType = "correct_answers"
	ConditionPerfectScore   ConditionType = "perfect_score"
)

// Achievement is static reference data created at seed time and never
// mutated by the engine.
type Achievement struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `json:"name" gorm:"not null;uniqueIndex"`
	NameAr        string         `json:"name_ar,omitempty"`
	Description   string         `json:"description,omitempty"`
	DescriptionAr string         `json:"description_ar,omitempty"`
	Icon          string         `json:"icon,omitempty"`
	ConditionType ConditionType  `json:"condition_type" gorm:"not null"`
	Threshold     int            `json:"threshold" gorm:"not null;default:1"`
	Points        int            `json:"points" gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserAchievement pairs a user with an unlocked achievement. The unique index
// on the pair is what makes repeated grants idempotent.
type UserAchievement struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        string         `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID uint           `json:"achievement_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	Achievement   Achievement    `json:"achievement,omitempty" gorm:"foreignKey:AchievementID"`
	UnlockedAt    time.Time      `json:"unlocked_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
