package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

// AchievementService re-checks every achievement condition against the
// user's cumulative stats and grants whatever is newly satisfied. The
// achievement set is small and static, so the full re-evaluation per
// submission is cheap.
type AchievementService interface {
	EvaluateForUser(userID string) ([]model.Achievement, error)
	ListAchievements() ([]dto.AchievementDTO, error)
	ListUserAchievements(userID string) ([]dto.UserAchievementDTO, error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
	submissionRepo  repository.SubmissionRepository
}

func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	submissionRepo repository.SubmissionRepository,
) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		submissionRepo:  submissionRepo,
	}
}

func (s *achievementService) EvaluateForUser(userID string) ([]model.Achievement, error) {
	achievements, err := s.achievementRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}
	if len(achievements) == 0 {
		return nil, nil
	}

	totalSubmissions, err := s.submissionRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error counting submissions: %w", err)
	}
	totalCorrect, err := s.submissionRepo.CountCorrectAnswersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error counting correct answers: %w", err)
	}
	perfectCount, err := s.submissionRepo.CountPerfectByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error counting perfect submissions: %w", err)
	}

	var granted []model.Achievement
	for _, achievement := range achievements {
		if !conditionSatisfied(achievement, totalSubmissions, totalCorrect, perfectCount) {
			continue
		}
		created, err := s.achievementRepo.GrantIfAbsent(userID, achievement.ID)
		if err != nil {
			log.Error().Err(err).Str("userID", userID).Str("achievement", achievement.Name).Msg("EvaluateForUser: grant failed")
			return granted, fmt.Errorf("error granting achievement %q: %w", achievement.Name, err)
		}
		if created {
			log.Info().Str("userID", userID).Str("achievement", achievement.Name).Int("points", achievement.Points).Msg("Achievement unlocked")
			granted = append(granted, achievement)
		}
	}
	return granted, nil
}

// conditionSatisfied dispatches on the closed condition variant.
func conditionSatisfied(a model.Achievement, totalSubmissions, totalCorrect, perfectCount int64) bool {
	switch a.ConditionType {
	case model.ConditionQuizCount:
		return totalSubmissions >= int64(a.Threshold)
	case model.ConditionCorrectAnswers:
		return totalCorrect >= int64(a.Threshold)
	case model.ConditionPerfectScore:
		return perfectCount >= int64(a.Threshold)
	default:
		log.Warn().Str("condition", string(a.ConditionType)).Str("achievement", a.Name).Msg("Unknown achievement condition type")
		return false
	}
}

func (s *achievementService) ListAchievements() ([]dto.AchievementDTO, error) {
	achievements, err := s.achievementRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListAchievements: repository error")
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}

	dtos := make([]dto.AchievementDTO, 0, len(achievements))
	for _, a := range achievements {
		var d dto.AchievementDTO
		if err := copier.Copy(&d, &a); err != nil {
			return nil, fmt.Errorf("error preparing achievement response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *achievementService) ListUserAchievements(userID string) ([]dto.UserAchievementDTO, error) {
	grants, err := s.achievementRepo.FindGrantsByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListUserAchievements: repository error")
		return nil, fmt.Errorf("error fetching user achievements: %w", err)
	}

	dtos := make([]dto.UserAchievementDTO, 0, len(grants))
	for _, g := range grants {
		var d dto.UserAchievementDTO
		if err := copier.Copy(&d, &g); err != nil {
			return nil, fmt.Errorf("error preparing user achievement response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
