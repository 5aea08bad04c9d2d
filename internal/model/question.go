package model

import (
	"time"

	"gorm.io/gorm"
)

type Category string

const (
	CategoryCriminal       Category = "CRIMINAL"
	CategoryCivil          Category = "CIVIL"
	CategoryCommercial     Category = "COMMERCIAL"
	CategoryFamily         Category = "FAMILY"
	CategoryAdministrative Category = "ADMINISTRATIVE"
	CategoryLabor          Category = "LABOR"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Question is a multiple-choice question. A valid question has at least two
// answers and at least one of them marked correct; it is immutable while a
// quiz session is in flight.
type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Explanation string         `json:"explanation,omitempty" gorm:"type:text"`
	Category    Category       `json:"category" gorm:"not null;index"`
	Difficulty  Difficulty     `json:"difficulty" gorm:"not null;index"`
	ExamTag     *string        `json:"exam_tag,omitempty" gorm:"index"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:true;index"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CorrectAnswerIDs returns the identifiers of all answers marked correct.
func (q *Question) CorrectAnswerIDs() []uint {
	var ids []uint
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
