package repository

import (
	"errors"

	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

type BookmarkRepository interface {
	// Toggle creates the bookmark if absent, removes it otherwise. Returns
	// true when the question is bookmarked after the call.
	Toggle(userID string, questionID uint) (bool, error)
	FindQuestionsByUser(userID string) ([]model.Question, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Toggle(userID string, questionID uint) (bool, error) {
	var bookmarked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Bookmark
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&existing).Error
		switch {
		case err == nil:
			// Hard delete so the unique index allows re-bookmarking later.
			bookmarked = false
			return tx.Unscoped().Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmarked = true
			return tx.Create(&model.Bookmark{UserID: userID, QuestionID: questionID}).Error
		default:
			return err
		}
	})
	return bookmarked, err
}

func (r *bookmarkRepository) FindQuestionsByUser(userID string) ([]model.Question, error) {
	var bookmarks []model.Bookmark
	err := r.db.Preload("Question.Answers").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(bookmarks))
	for _, b := range bookmarks {
		questions = append(questions, b.Question)
	}
	return questions, nil
}
