package dto

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
)

// SubmittedAnswerDTO is one answered question within a quiz submission.
type SubmittedAnswerDTO struct {
	QuestionID        uint   `json:"question_id" binding:"required"`
	SelectedAnswerIDs []uint `json:"selected_answer_ids" binding:"required,min=1"`
	TimeSpent         *int   `json:"time_spent,omitempty"`
}

// SubmitQuizRequest carries a full quiz submission. UserID is optional;
// anonymous submissions are scored but not scheduled for review.
type SubmitQuizRequest struct {
	UserID     *string              `json:"user_id,omitempty"`
	Answers    []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
	ExamTag    *string              `json:"exam_tag,omitempty"`
	Category   *model.Category      `json:"category,omitempty"`
	Difficulty *model.Difficulty    `json:"difficulty,omitempty"`
	Mode       model.QuizMode       `json:"mode,omitempty"`
	TimeSpent  *int                 `json:"time_spent,omitempty"`
}

// ScoredAnswerDTO is a submitted answer with its derived verdict.
type ScoredAnswerDTO struct {
	QuestionID        uint              `json:"question_id"`
	Question          QuestionRevealDTO `json:"question,omitempty"`
	SelectedAnswerIDs []uint            `json:"selected_answer_ids"`
	IsCorrect         bool              `json:"is_correct"`
	TimeSpent         *int              `json:"time_spent,omitempty"`
}

// SubmissionDetailDTO is the persisted submission returned to the caller,
// including any achievements the submission just unlocked.
type SubmissionDetailDTO struct {
	ID                   uint              `json:"id"`
	UserID               *string           `json:"user_id,omitempty"`
	Score                int               `json:"score"`
	TotalQuestions       int               `json:"total_questions"`
	ExamTag              *string           `json:"exam_tag,omitempty"`
	Category             *model.Category   `json:"category,omitempty"`
	Difficulty           *model.Difficulty `json:"difficulty,omitempty"`
	Mode                 model.QuizMode    `json:"mode"`
	TimeSpent            *int              `json:"time_spent,omitempty"`
	Answers              []ScoredAnswerDTO `json:"answers,omitempty"`
	UnlockedAchievements []AchievementDTO  `json:"unlocked_achievements,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
}

// SubmissionSummaryDTO is a history row.
type SubmissionSummaryDTO struct {
	ID             uint              `json:"id"`
	UserID         *string           `json:"user_id,omitempty"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Category       *model.Category   `json:"category,omitempty"`
	Difficulty     *model.Difficulty `json:"difficulty,omitempty"`
	Mode           model.QuizMode    `json:"mode"`
	CreatedAt      time.Time         `json:"created_at"`
}
