package repository

import (
	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	Create(achievement *model.Achievement) error
	FindAll() ([]model.Achievement, error)
	FindByName(name string) (*model.Achievement, error)
	// GrantIfAbsent creates the (user, achievement) pair unless it already
	// exists. Returns true when a new grant was created. Safe under
	// concurrent evaluation: the unique index absorbs the race.
	GrantIfAbsent(userID string, achievementID uint) (bool, error)
	FindGrantsByUser(userID string) ([]model.UserAchievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(achievement *model.Achievement) error {
	return r.db.Create(achievement).Error
}

func (r *achievementRepository) FindAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.Order("points ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) FindByName(name string) (*model.Achievement, error) {
	var achievement model.Achievement
	if err := r.db.Where("name = ?", name).First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) GrantIfAbsent(userID string, achievementID uint) (bool, error) {
	grant := model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&grant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *achievementRepository) FindGrantsByUser(userID string) ([]model.UserAchievement, error) {
	var grants []model.UserAchievement
	err := r.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}
