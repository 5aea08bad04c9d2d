package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	selector    service.QuestionSelectorService
	submissions service.SubmissionService
	scheduler   service.ReviewSchedulerService
}

func NewQuizController(
	selector service.QuestionSelectorService,
	submissions service.SubmissionService,
	scheduler service.ReviewSchedulerService,
) *QuizController {
	return &QuizController{
		selector:    selector,
		submissions: submissions,
		scheduler:   scheduler,
	}
}

// GetQuizQuestions godoc
// @Summary Draw a randomized question set for a quiz
// @Description Returns up to 'count' active questions matching the filters. With mode=REVIEW and a user_id, returns the user's due review questions instead (most overdue first, never padded).
// @Tags Quiz
// @Produce json
// @Param count query int false "Number of questions to draw" default(20)
// @Param exam_tag query string false "Exam tag filter"
// @Param category query string false "Category filter" Enums(CRIMINAL, CIVIL, COMMERCIAL, FAMILY, ADMINISTRATIVE, LABOR)
// @Param difficulty query string false "Difficulty filter" Enums(EASY, MEDIUM, HARD)
// @Param mode query string false "Quiz mode" Enums(PRACTICE, EXAM, REVIEW, CHALLENGE)
// @Param user_id query string false "User identity token (required for mode=REVIEW)"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/questions [get]
func (c *QuizController) GetQuizQuestions(ctx *gin.Context) {
	count := 20
	if countStr := ctx.Query("count"); countStr != "" {
		val, err := strconv.Atoi(countStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid count format"})
			return
		}
		count = val
	}

	filters := service.QuizFilters{
		Mode: model.QuizMode(ctx.Query("mode")),
	}
	if examTag := ctx.Query("exam_tag"); examTag != "" {
		filters.ExamTag = &examTag
	}
	if category := ctx.Query("category"); category != "" {
		cat := model.Category(category)
		filters.Category = &cat
	}
	if difficulty := ctx.Query("difficulty"); difficulty != "" {
		diff := model.Difficulty(difficulty)
		filters.Difficulty = &diff
	}
	if userID := ctx.Query("user_id"); userID != "" {
		filters.UserID = &userID
	}

	questions, err := c.selector.SelectQuestions(count, filters)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("GetQuizQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to select questions"})
		return
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, question := range questions {
		var d dto.QuestionDTO
		if err := copier.Copy(&d, &question); err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("GetQuizQuestions: error copying question to DTO")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to prepare questions"})
			return
		}
		dtos = append(dtos, d)
	}
	ctx.JSON(http.StatusOK, dtos)
}

// SubmitQuiz godoc
// @Summary Submit a completed quiz for scoring
// @Description Scores every answer with the exact-match rule, persists the submission atomically, updates the user's review schedule, and evaluates achievements.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizRequest true "Quiz submission payload"
// @Success 201 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/submissions [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission payload: " + err.Error()})
		return
	}

	result, err := c.submissions.SubmitQuiz(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("SubmitQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save submission"})
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetSubmission godoc
// @Summary Get one submission with its scored answers
// @Tags Quiz
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/submissions/{submission_id} [get]
func (c *QuizController) GetSubmission(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}

	result, err := c.submissions.GetSubmissionDetails(uint(submissionID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("submissionID", submissionID).Msg("GetSubmission: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch submission"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListSubmissions godoc
// @Summary List recent submissions
// @Tags Quiz
// @Produce json
// @Param user_id query string false "Limit to one user's history"
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/submissions [get]
func (c *QuizController) ListSubmissions(ctx *gin.Context) {
	var userID *string
	if id := ctx.Query("user_id"); id != "" {
		userID = &id
	}
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil {
			limit = val
		}
	}

	summaries, err := c.submissions.GetRecentSubmissions(userID, limit)
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch submissions"})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetDueReviews godoc
// @Summary List questions due for spaced-repetition review
// @Tags Quiz
// @Produce json
// @Param user_id query string true "User identity token"
// @Param limit query int false "Maximum questions" default(20)
// @Success 200 {array} dto.ReviewQuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/review/due [get]
func (c *QuizController) GetDueReviews(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	limit := 20
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil {
			limit = val
		}
	}

	due, err := c.scheduler.GetDueQuestions(userID, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Str("userID", userID).Msg("GetDueReviews: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch due reviews"})
		return
	}
	ctx.JSON(http.StatusOK, due)
}
