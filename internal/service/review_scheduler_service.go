package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

// Fixed-interval review ladder. Intervals lengthen with consecutive correct
// answers and collapse back to one day on a miss; the accumulated correct
// count is kept so a later success resumes from where the ladder left off.
const (
	reviewIntervalFirst  = 24 * time.Hour
	reviewIntervalSecond = 3 * 24 * time.Hour
	reviewIntervalMature = 7 * 24 * time.Hour
)

// ReviewSchedulerService advances the spaced-repetition state of one
// (user, question) pair per recorded attempt, and lists what is due.
type ReviewSchedulerService interface {
	RecordAttempt(userID string, questionID uint, correct bool, now time.Time) (*model.UserProgress, error)
	GetDueQuestions(userID string, limit int) ([]dto.ReviewQuestionDTO, error)
}

type reviewSchedulerService struct {
	progressRepo repository.ProgressRepository
	questionRepo repository.QuestionRepository
}

func NewReviewSchedulerService(progressRepo repository.ProgressRepository, questionRepo repository.QuestionRepository) ReviewSchedulerService {
	return &reviewSchedulerService{progressRepo: progressRepo, questionRepo: questionRepo}
}

func (s *reviewSchedulerService) RecordAttempt(userID string, questionID uint, correct bool, now time.Time) (*model.UserProgress, error) {
	progress, err := s.progressRepo.Upsert(userID, questionID, func(p *model.UserProgress) {
		ApplyAttempt(p, correct, now)
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("questionID", questionID).Msg("RecordAttempt: failed to update review state")
		return nil, fmt.Errorf("failed to update review state for question %d: %w", questionID, err)
	}
	return progress, nil
}

// GetDueQuestions lists the questions whose next review is due, most
// overdue first, together with their schedule state.
func (s *reviewSchedulerService) GetDueQuestions(userID string, limit int) ([]dto.ReviewQuestionDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 20
	}

	due, err := s.questionRepo.FindDueForReview(userID, time.Now(), limit)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetDueQuestions: repository error")
		return nil, fmt.Errorf("error fetching due questions: %w", err)
	}

	dtos := make([]dto.ReviewQuestionDTO, 0, len(due))
	for _, progress := range due {
		var d dto.ReviewQuestionDTO
		if err := copier.Copy(&d, &progress); err != nil {
			return nil, fmt.Errorf("error preparing review response: %w", err)
		}
		copier.Copy(&d.Question, &progress.Question)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// ApplyAttempt is the pure state transition of the review ladder. Counts
// start at zero for a fresh pair; the increment below is the first attempt.
func ApplyAttempt(p *model.UserProgress, correct bool, now time.Time) {
	p.LastAttempt = now

	if correct {
		p.CorrectCount++
		var next time.Time
		switch {
		case p.CorrectCount == 1:
			next = now.Add(reviewIntervalFirst)
		case p.CorrectCount == 2:
			next = now.Add(reviewIntervalSecond)
		default:
			next = now.Add(reviewIntervalMature)
		}
		p.NextReview = &next
		p.Difficulty = model.ReviewEasy
		return
	}

	// Incorrect: see it again tomorrow. CorrectCount is deliberately left
	// alone so the ladder resumes rather than restarting after a miss.
	p.IncorrectCount++
	next := now.Add(reviewIntervalFirst)
	p.NextReview = &next
	p.Difficulty = model.ReviewHard
}
