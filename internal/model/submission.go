package model

import (
	"time"

	"gorm.io/gorm"
)

type QuizMode string

const (
	ModePractice  QuizMode = "PRACTICE"
	ModeExam      QuizMode = "EXAM"
	ModeReview    QuizMode = "REVIEW"
	ModeChallenge QuizMode = "CHALLENGE"
)

// Submission is the durable record of one quiz attempt. It is created exactly
// once, as a single atomic write together with its answers, and never mutated
// afterward. UserID is nil for anonymous submissions.
type Submission struct {
	ID             uint               `gorm:"primarykey" json:"id"`
	UserID         *string            `json:"user_id,omitempty" gorm:"index"`
	Score          int                `json:"score" gorm:"not null"`
	TotalQuestions int                `json:"total_questions" gorm:"not null"`
	ExamTag        *string            `json:"exam_tag,omitempty"`
	Category       *Category          `json:"category,omitempty"`
	Difficulty     *Difficulty        `json:"difficulty,omitempty"`
	Mode           QuizMode           `json:"mode" gorm:"not null;default:'PRACTICE'"`
	TimeSpent      *int               `json:"time_spent,omitempty"`
	Answers        []SubmissionAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`
}

// IsPerfect reports whether every question in the submission was answered
// correctly. Empty submissions are never perfect.
func (s *Submission) IsPerfect() bool {
	return s.TotalQuestions > 0 && s.Score == s.TotalQuestions
}
