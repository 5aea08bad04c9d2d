package model

import (
	"time"

	"gorm.io/gorm"
)

type ReviewDifficulty string

const (
	ReviewEasy   ReviewDifficulty = "EASY"
	ReviewNormal ReviewDifficulty = "NORMAL"
	ReviewHard   ReviewDifficulty = "HARD"
)

// UserProgress is the spaced-repetition state for one (user, question) pair.
// Created on the first attempt, updated atomically on every later attempt.
// Invariant: NextReview, once set, is never before LastAttempt.
type UserProgress struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	UserID         string           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_question"`
	QuestionID     uint             `json:"question_id" gorm:"not null;uniqueIndex:idx_user_question"`
	Question       Question         `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CorrectCount   int              `json:"correct_count" gorm:"not null;default:0"`
	IncorrectCount int              `json:"incorrect_count" gorm:"not null;default:0"`
	LastAttempt    time.Time        `json:"last_attempt" gorm:"not null"`
	NextReview     *time.Time       `json:"next_review,omitempty" gorm:"index"`
	Difficulty     ReviewDifficulty `json:"difficulty" gorm:"not null;default:'NORMAL'"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
