package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizFilters is the full selection context for one quiz. Review mode needs
// UserID; the remaining fields are optional narrowing criteria.
type QuizFilters struct {
	ExamTag    *string
	Category   *model.Category
	Difficulty *model.Difficulty
	Mode       model.QuizMode
	UserID     *string
}

// QuestionSelectorService draws a bounded, randomized question set. The
// random source is injected so tests can seed it deterministically.
type QuestionSelectorService interface {
	SelectQuestions(count int, filters QuizFilters) ([]model.Question, error)
}

type questionSelectorService struct {
	questionRepo repository.QuestionRepository
	rng          *rand.Rand
}

func NewQuestionSelectorService(questionRepo repository.QuestionRepository, rng *rand.Rand) QuestionSelectorService {
	return &questionSelectorService{questionRepo: questionRepo, rng: rng}
}

func (s *questionSelectorService) SelectQuestions(count int, filters QuizFilters) ([]model.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidInput, count)
	}

	if filters.Mode == model.ModeReview {
		return s.selectDueForReview(count, filters)
	}
	return s.selectRandom(count, filters)
}

// selectDueForReview sources questions from the user's schedule: everything
// due at or before now, most overdue first, capped at count. The result is
// never padded with questions that are not yet due.
func (s *questionSelectorService) selectDueForReview(count int, filters QuizFilters) ([]model.Question, error) {
	if filters.UserID == nil || *filters.UserID == "" {
		return nil, fmt.Errorf("%w: review mode requires a user id", ErrInvalidInput)
	}

	due, err := s.questionRepo.FindDueForReview(*filters.UserID, time.Now(), count)
	if err != nil {
		log.Error().Err(err).Str("userID", *filters.UserID).Msg("SelectQuestions: failed to fetch due review questions")
		return nil, fmt.Errorf("error fetching review questions: %w", err)
	}

	questions := make([]model.Question, 0, len(due))
	for _, p := range due {
		questions = append(questions, p.Question)
	}
	return questions, nil
}

func (s *questionSelectorService) selectRandom(count int, filters QuizFilters) ([]model.Question, error) {
	eligible, err := s.questionRepo.FindActiveByFilters(repository.QuestionFilters{
		ExamTag:    filters.ExamTag,
		Category:   filters.Category,
		Difficulty: filters.Difficulty,
	})
	if err != nil {
		log.Error().Err(err).Msg("SelectQuestions: failed to fetch eligible questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	// An empty pool is a valid outcome, not an error.
	if len(eligible) == 0 {
		return []model.Question{}, nil
	}

	// Fisher-Yates so the draw is uniform regardless of storage order.
	s.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if count > len(eligible) {
		count = len(eligible)
	}
	return eligible[:count], nil
}
