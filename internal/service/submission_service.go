package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService orchestrates a quiz submission: it resolves and scores
// every answer, persists the submission as one atomic write, then applies the
// best-effort follow-ons (review scheduling and achievement evaluation).
type SubmissionService interface {
	SubmitQuiz(req dto.SubmitQuizRequest) (*dto.SubmissionDetailDTO, error)
	GetSubmissionDetails(submissionID uint) (*dto.SubmissionDetailDTO, error)
	GetRecentSubmissions(userID *string, limit int) ([]dto.SubmissionSummaryDTO, error)
}

type submissionService struct {
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	scheduler      ReviewSchedulerService
	achievements   AchievementService
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	scheduler ReviewSchedulerService,
	achievements AchievementService,
) SubmissionService {
	return &submissionService{
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		scheduler:      scheduler,
		achievements:   achievements,
	}
}

// scoringResult carries one resolved and scored answer out of the fan-out.
// question is nil when the question id did not resolve.
type scoringResult struct {
	index    int
	question *model.Question
	correct  bool
	err      error
}

func (s *submissionService) SubmitQuiz(req dto.SubmitQuizRequest) (*dto.SubmissionDetailDTO, error) {
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("%w: submission must contain at least one answer", ErrInvalidInput)
	}
	mode := req.Mode
	if mode == "" {
		mode = model.ModePractice
	}

	// 1. Resolve and score every answer in parallel. Scoring is pure; the
	// lookup is the expensive part.
	var wg sync.WaitGroup
	resultsChan := make(chan scoringResult, len(req.Answers))
	for i, answer := range req.Answers {
		wg.Add(1)
		go func(idx int, submitted dto.SubmittedAnswerDTO) {
			defer wg.Done()

			question, err := s.questionRepo.FindByIDWithAnswers(submitted.QuestionID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Stale client state: the answer still counts toward the
					// total but can never be correct.
					log.Warn().Uint("questionID", submitted.QuestionID).Msg("SubmitQuiz: unknown question in submission, counting as unscored")
					resultsChan <- scoringResult{index: idx}
					return
				}
				resultsChan <- scoringResult{index: idx, err: err}
				return
			}
			resultsChan <- scoringResult{
				index:    idx,
				question: question,
				correct:  ScoreSelection(question, submitted.SelectedAnswerIDs),
			}
		}(i, answer)
	}
	wg.Wait()
	close(resultsChan)

	questionsByIndex := make(map[int]*model.Question, len(req.Answers))
	verdicts := make([]bool, len(req.Answers))
	for result := range resultsChan {
		if result.err != nil {
			log.Error().Err(result.err).Msg("SubmitQuiz: question lookup failed")
			return nil, fmt.Errorf("error resolving submitted questions: %w", result.err)
		}
		questionsByIndex[result.index] = result.question
		verdicts[result.index] = result.correct
	}

	// 2. Assemble the submission in input order.
	score := 0
	submission := model.Submission{
		UserID:         req.UserID,
		TotalQuestions: len(req.Answers),
		ExamTag:        req.ExamTag,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Mode:           mode,
		TimeSpent:      req.TimeSpent,
	}
	for i, submitted := range req.Answers {
		if verdicts[i] {
			score++
		}
		submission.Answers = append(submission.Answers, model.SubmissionAnswer{
			QuestionID:        submitted.QuestionID,
			SelectedAnswerIDs: model.IDList(submitted.SelectedAnswerIDs),
			IsCorrect:         verdicts[i],
			TimeSpent:         submitted.TimeSpent,
			Position:          i,
		})
	}
	submission.Score = score

	// 3. Single durable write. Failure here surfaces to the caller and
	// leaves nothing behind.
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Msg("SubmitQuiz: failed to persist submission")
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	// 4. Follow-ons. The submission is already durable; a failure past this
	// point is logged but must not take the user's score with it.
	var unlocked []model.Achievement
	if req.UserID != nil && *req.UserID != "" {
		s.updateReviewStates(*req.UserID, req.Answers, questionsByIndex, verdicts)

		granted, err := s.achievements.EvaluateForUser(*req.UserID)
		if err != nil {
			log.Error().Err(err).Str("userID", *req.UserID).Uint("submissionID", submission.ID).Msg("SubmitQuiz: achievement evaluation failed")
		}
		unlocked = granted
	}

	return s.buildDetailDTO(&submission, questionsByIndex, unlocked)
}

// updateReviewStates advances the spaced-repetition schedule for every
// resolved answer. Updates for different questions are independent, so they
// fan out; the progress row lock serializes same-pair collisions.
func (s *submissionService) updateReviewStates(userID string, answers []dto.SubmittedAnswerDTO, questions map[int]*model.Question, verdicts []bool) {
	now := time.Now()
	var wg sync.WaitGroup
	for i := range answers {
		if questions[i] == nil {
			continue
		}
		wg.Add(1)
		go func(questionID uint, correct bool) {
			defer wg.Done()
			if _, err := s.scheduler.RecordAttempt(userID, questionID, correct, now); err != nil {
				log.Error().Err(err).Str("userID", userID).Uint("questionID", questionID).Msg("SubmitQuiz: review state update failed")
			}
		}(answers[i].QuestionID, verdicts[i])
	}
	wg.Wait()
}

func (s *submissionService) buildDetailDTO(submission *model.Submission, questions map[int]*model.Question, unlocked []model.Achievement) (*dto.SubmissionDetailDTO, error) {
	var resp dto.SubmissionDetailDTO
	if err := copier.Copy(&resp, submission); err != nil {
		log.Error().Err(err).Msg("SubmitQuiz: error copying submission to DTO")
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}

	resp.Answers = make([]dto.ScoredAnswerDTO, len(submission.Answers))
	for i, answer := range submission.Answers {
		var answerDTO dto.ScoredAnswerDTO
		copier.Copy(&answerDTO, &answer)
		if question := questions[answer.Position]; question != nil {
			copier.Copy(&answerDTO.Question, question)
		}
		resp.Answers[i] = answerDTO
	}

	for _, achievement := range unlocked {
		var achievementDTO dto.AchievementDTO
		copier.Copy(&achievementDTO, &achievement)
		resp.UnlockedAchievements = append(resp.UnlockedAchievements, achievementDTO)
	}
	return &resp, nil
}

// GetSubmissionDetails returns one persisted submission with its scored
// answers and full question key.
func (s *submissionService) GetSubmissionDetails(submissionID uint) (*dto.SubmissionDetailDTO, error) {
	submission, err := s.submissionRepo.FindByIDWithDetails(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %d", ErrNotFound, submissionID)
		}
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("GetSubmissionDetails: repository error")
		return nil, fmt.Errorf("error fetching submission %d: %w", submissionID, err)
	}

	var resp dto.SubmissionDetailDTO
	if err := copier.Copy(&resp, submission); err != nil {
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	resp.Answers = make([]dto.ScoredAnswerDTO, len(submission.Answers))
	for i, answer := range submission.Answers {
		var answerDTO dto.ScoredAnswerDTO
		copier.Copy(&answerDTO, &answer)
		copier.Copy(&answerDTO.Question, &answer.Question)
		resp.Answers[i] = answerDTO
	}
	return &resp, nil
}

func (s *submissionService) GetRecentSubmissions(userID *string, limit int) ([]dto.SubmissionSummaryDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	submissions, err := s.submissionRepo.FindAllByUser(userID, limit)
	if err != nil {
		log.Error().Err(err).Msg("GetRecentSubmissions: repository error")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}

	dtos := make([]dto.SubmissionSummaryDTO, 0, len(submissions))
	for _, submission := range submissions {
		var summary dto.SubmissionSummaryDTO
		if err := copier.Copy(&summary, &submission); err != nil {
			log.Error().Err(err).Uint("submissionID", submission.ID).Msg("GetRecentSubmissions: error copying submission to summary")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
