package service

import (
	"fmt"
	"math"

	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

// StatsService aggregates a user's cumulative quiz history for dashboards.
type StatsService interface {
	GetUserStats(userID string) (*dto.UserStatsDTO, error)
}

type statsService struct {
	submissionRepo repository.SubmissionRepository
}

func NewStatsService(submissionRepo repository.SubmissionRepository) StatsService {
	return &statsService{submissionRepo: submissionRepo}
}

func (s *statsService) GetUserStats(userID string) (*dto.UserStatsDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	totalSubmissions, err := s.submissionRepo.CountByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserStats: failed to count submissions")
		return nil, fmt.Errorf("error computing user stats: %w", err)
	}
	totalQuestions, err := s.submissionRepo.CountAnswersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error computing user stats: %w", err)
	}
	correctAnswers, err := s.submissionRepo.CountCorrectAnswersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error computing user stats: %w", err)
	}

	averageScore := 0
	if totalQuestions > 0 {
		averageScore = int(math.Round(float64(correctAnswers) / float64(totalQuestions) * 100))
	}

	categoryAverages, err := s.submissionRepo.CategoryAverages(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserStats: failed to compute category averages")
		return nil, fmt.Errorf("error computing category stats: %w", err)
	}
	categoryStats := make([]dto.CategoryStatDTO, 0, len(categoryAverages))
	for _, row := range categoryAverages {
		categoryStats = append(categoryStats, dto.CategoryStatDTO{
			Category:     row.Category,
			AverageScore: row.AverageScore,
			Submissions:  row.Submissions,
		})
	}

	return &dto.UserStatsDTO{
		TotalSubmissions: totalSubmissions,
		TotalQuestions:   totalQuestions,
		CorrectAnswers:   correctAnswers,
		AverageScore:     averageScore,
		CategoryStats:    categoryStats,
	}, nil
}
