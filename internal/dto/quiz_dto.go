package dto

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
)

// AnswerOptionDTO is an answer as shown while taking a quiz; correctness is
// withheld until the submission comes back scored.
type AnswerOptionDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionDTO is a question as served to a quiz session.
type QuestionDTO struct {
	ID         uint              `json:"id"`
	Text       string            `json:"text"`
	Category   model.Category    `json:"category"`
	Difficulty model.Difficulty  `json:"difficulty"`
	ExamTag    *string           `json:"exam_tag,omitempty"`
	Answers    []AnswerOptionDTO `json:"answers"`
}

// AnswerRevealDTO includes the correctness flag, used once a submission has
// been scored.
type AnswerRevealDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRevealDTO is the full question including explanation and answer
// key, shown on result pages.
type QuestionRevealDTO struct {
	ID          uint              `json:"id"`
	Text        string            `json:"text"`
	Explanation string            `json:"explanation,omitempty"`
	Category    model.Category    `json:"category"`
	Difficulty  model.Difficulty  `json:"difficulty"`
	ExamTag     *string           `json:"exam_tag,omitempty"`
	Answers     []AnswerRevealDTO `json:"answers"`
}

// ReviewQuestionDTO pairs a due question with its schedule state.
type ReviewQuestionDTO struct {
	Question       QuestionDTO            `json:"question"`
	CorrectCount   int                    `json:"correct_count"`
	IncorrectCount int                    `json:"incorrect_count"`
	NextReview     *time.Time             `json:"next_review,omitempty"`
	Difficulty     model.ReviewDifficulty `json:"difficulty"`
}
