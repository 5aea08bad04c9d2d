package dto

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
)

type CategoryStatDTO struct {
	Category     model.Category `json:"category"`
	AverageScore float64        `json:"average_score"`
	Submissions  int64          `json:"submissions"`
}

// UserStatsDTO is the dashboard aggregate for one user.
type UserStatsDTO struct {
	TotalSubmissions int64             `json:"total_submissions"`
	TotalQuestions   int64             `json:"total_questions"`
	CorrectAnswers   int64             `json:"correct_answers"`
	AverageScore     int               `json:"average_score"`
	CategoryStats    []CategoryStatDTO `json:"category_stats"`
}

type DailyChallengeDTO struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Score     *int      `json:"score,omitempty"`
}
