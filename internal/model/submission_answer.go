package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// IDList stores a set of answer identifiers as a JSONB column.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for IDList", value)
	}
	return json.Unmarshal(raw, l)
}

// SubmissionAnswer records what a user selected for one question within a
// submission, plus the correctness verdict derived at scoring time. Position
// preserves the order of answers within the submitted batch.
type SubmissionAnswer struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	SubmissionID      uint           `json:"submission_id" gorm:"not null;index"`
	QuestionID        uint           `json:"question_id" gorm:"not null;index"`
	Question          Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedAnswerIDs IDList         `json:"selected_answer_ids" gorm:"type:jsonb;not null"`
	IsCorrect         bool           `json:"is_correct" gorm:"not null"`
	TimeSpent         *int           `json:"time_spent,omitempty"`
	Position          int            `json:"position" gorm:"not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
