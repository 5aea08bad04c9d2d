package repository

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Find(userID string, questionID uint) (*model.UserProgress, error)
	// Upsert applies a read-modify-write to the (user, question) progress
	// row under a row lock, creating the row first if it does not exist.
	// Concurrent updates to the same pair serialize on the lock; different
	// pairs do not contend.
	Upsert(userID string, questionID uint, apply func(*model.UserProgress)) (*model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Find(userID string, questionID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Upsert(userID string, questionID uint, apply func(*model.UserProgress)) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Ensure the row exists; a concurrent insert of the same pair is
		// absorbed by the unique index instead of failing.
		seed := model.UserProgress{
			UserID:      userID,
			QuestionID:  questionID,
			LastAttempt: time.Now(),
			Difficulty:  model.ReviewNormal,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND question_id = ?", userID, questionID).
			First(&progress).Error; err != nil {
			return err
		}

		apply(&progress)
		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
