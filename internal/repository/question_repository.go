package repository

import (
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"gorm.io/gorm"
)

// QuestionFilters narrows the eligible question pool. Every field is
// optional; zero values are ignored.
type QuestionFilters struct {
	ExamTag    *string
	Category   *model.Category
	Difficulty *model.Difficulty
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByIDWithAnswers(id uint) (*model.Question, error)
	FindActiveByFilters(filters QuestionFilters) ([]model.Question, error)
	// FindDueForReview returns progress rows (with their questions and
	// answers preloaded) whose next review is at or before now, most
	// overdue first, capped at limit.
	FindDueForReview(userID string, now time.Time, limit int) ([]model.UserProgress, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// GORM creates the associated Answers when question.Answers is populated.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Answers").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActiveByFilters(filters QuestionFilters) ([]model.Question, error) {
	query := r.db.Preload("Answers").Where("is_active = ?", true)
	if filters.ExamTag != nil {
		query = query.Where("exam_tag = ?", *filters.ExamTag)
	}
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}

	var questions []model.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindDueForReview(userID string, now time.Time, limit int) ([]model.UserProgress, error) {
	var due []model.UserProgress
	err := r.db.
		Preload("Question.Answers").
		Where("user_id = ? AND next_review IS NOT NULL AND next_review <= ?", userID, now).
		Order("next_review ASC").
		Limit(limit).
		Find(&due).Error
	if err != nil {
		return nil, err
	}
	return due, nil
}
