package repository

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	GetOrCreate(userID string, date time.Time) (*model.DailyChallenge, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) GetOrCreate(userID string, date time.Time) (*model.DailyChallenge, error) {
	challenge := model.DailyChallenge{
		UserID: userID,
		Date:   date,
	}
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		FirstOrCreate(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}
