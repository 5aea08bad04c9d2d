package service

import (
	"fmt"
	"time"

	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChallengeService interface {
	GetDailyChallenge(userID string) (*dto.DailyChallengeDTO, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo}
}

// GetDailyChallenge returns today's challenge for the user, creating it on
// first access. The date key is local midnight.
func (s *challengeService) GetDailyChallenge(userID string) (*dto.DailyChallengeDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	challenge, err := s.challengeRepo.GetOrCreate(userID, today)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetDailyChallenge: repository error")
		return nil, fmt.Errorf("error fetching daily challenge: %w", err)
	}

	return &dto.DailyChallengeDTO{
		Date:      challenge.Date,
		Completed: challenge.Completed,
		Score:     challenge.Score,
	}, nil
}
