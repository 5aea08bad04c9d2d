package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
)

type BookmarkService interface {
	ToggleBookmark(userID string, questionID uint) (bool, error)
	GetBookmarkedQuestions(userID string) ([]dto.QuestionDTO, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) ToggleBookmark(userID string, questionID uint) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	bookmarked, err := s.bookmarkRepo.Toggle(userID, questionID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("questionID", questionID).Msg("ToggleBookmark: repository error")
		return false, fmt.Errorf("error toggling bookmark: %w", err)
	}
	return bookmarked, nil
}

func (s *bookmarkService) GetBookmarkedQuestions(userID string) ([]dto.QuestionDTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	questions, err := s.bookmarkRepo.FindQuestionsByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetBookmarkedQuestions: repository error")
		return nil, fmt.Errorf("error fetching bookmarks: %w", err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, question := range questions {
		var d dto.QuestionDTO
		if err := copier.Copy(&d, &question); err != nil {
			return nil, fmt.Errorf("error preparing bookmark response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
