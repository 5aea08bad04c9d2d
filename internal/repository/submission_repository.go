package repository

import (
	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

// CategoryAverage is an aggregate row for per-category dashboard stats.
type CategoryAverage struct {
	Category     model.Category `json:"category"`
	AverageScore float64        `json:"average_score"`
	Submissions  int64          `json:"submissions"`
}

type SubmissionRepository interface {
	// Create persists the submission and all of its answers as one
	// transaction. Partial submissions are never observable.
	Create(submission *model.Submission) error
	FindByIDWithDetails(id uint) (*model.Submission, error)
	FindAllByUser(userID *string, limit int) ([]model.Submission, error)
	CountByUser(userID string) (int64, error)
	CountAnswersByUser(userID string) (int64, error)
	CountCorrectAnswersByUser(userID string) (int64, error)
	CountPerfectByUser(userID string) (int64, error)
	CategoryAverages(userID string) ([]CategoryAverage, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(submission).Error
	})
}

func (r *submissionRepository) FindByIDWithDetails(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("submission_answers.position ASC")
		}).
		Preload("Answers.Question.Answers").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByUser(userID *string, limit int) ([]model.Submission, error) {
	query := r.db.Order("created_at DESC").Limit(limit)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	var submissions []model.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *submissionRepository) CountAnswersByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubmissionAnswer{}).
		Joins("JOIN submissions ON submissions.id = submission_answers.submission_id").
		Where("submissions.user_id = ? AND submissions.deleted_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) CountCorrectAnswersByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubmissionAnswer{}).
		Joins("JOIN submissions ON submissions.id = submission_answers.submission_id").
		Where("submissions.user_id = ? AND submissions.deleted_at IS NULL AND submission_answers.is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) CountPerfectByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).
		Where("user_id = ? AND total_questions > 0 AND score = total_questions", userID).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) CategoryAverages(userID string) ([]CategoryAverage, error) {
	var rows []CategoryAverage
	err := r.db.Model(&model.Submission{}).
		Select("category, AVG(score) as average_score, COUNT(id) as submissions").
		Where("user_id = ? AND category IS NOT NULL", userID).
		Group("category").
		Scan(&rows).Error
	return rows, err
}
