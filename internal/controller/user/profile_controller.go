package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolins/internal/dto"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	stats        service.StatsService
	achievements service.AchievementService
	bookmarks    service.BookmarkService
	challenges   service.ChallengeService
}

func NewProfileController(
	stats service.StatsService,
	achievements service.AchievementService,
	bookmarks service.BookmarkService,
	challenges service.ChallengeService,
) *ProfileController {
	return &ProfileController{
		stats:        stats,
		achievements: achievements,
		bookmarks:    bookmarks,
		challenges:   challenges,
	}
}

// GetUserStats godoc
// @Summary Get a user's cumulative quiz statistics
// @Tags Profile
// @Produce json
// @Param user_id path string true "User identity token"
// @Success 200 {object} dto.UserStatsDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/stats [get]
func (c *ProfileController) GetUserStats(ctx *gin.Context) {
	stats, err := c.stats.GetUserStats(ctx.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("GetUserStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListAchievements godoc
// @Summary List every achievement and its unlock condition
// @Tags Profile
// @Produce json
// @Success 200 {array} dto.AchievementDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /achievements [get]
func (c *ProfileController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.achievements.ListAchievements()
	if err != nil {
		log.Error().Err(err).Msg("ListAchievements: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch achievements"})
		return
	}
	ctx.JSON(http.StatusOK, achievements)
}

// ListUserAchievements godoc
// @Summary List the achievements a user has unlocked
// @Tags Profile
// @Produce json
// @Param user_id path string true "User identity token"
// @Success 200 {array} dto.UserAchievementDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/achievements [get]
func (c *ProfileController) ListUserAchievements(ctx *gin.Context) {
	grants, err := c.achievements.ListUserAchievements(ctx.Param("user_id"))
	if err != nil {
		log.Error().Err(err).Msg("ListUserAchievements: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch user achievements"})
		return
	}
	ctx.JSON(http.StatusOK, grants)
}

// ToggleBookmark godoc
// @Summary Toggle a bookmark on a question
// @Tags Profile
// @Produce json
// @Param user_id path string true "User identity token"
// @Param question_id path int true "Question ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/bookmarks/{question_id}/toggle [post]
func (c *ProfileController) ToggleBookmark(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}

	bookmarked, err := c.bookmarks.ToggleBookmark(ctx.Param("user_id"), uint(questionID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("ToggleBookmark: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to toggle bookmark"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// ListBookmarks godoc
// @Summary List a user's bookmarked questions
// @Tags Profile
// @Produce json
// @Param user_id path string true "User identity token"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/bookmarks [get]
func (c *ProfileController) ListBookmarks(ctx *gin.Context) {
	questions, err := c.bookmarks.GetBookmarkedQuestions(ctx.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("ListBookmarks: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch bookmarks"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetDailyChallenge godoc
// @Summary Get (or lazily create) today's challenge for a user
// @Tags Profile
// @Produce json
// @Param user_id path string true "User identity token"
// @Success 200 {object} dto.DailyChallengeDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{user_id}/daily-challenge [get]
func (c *ProfileController) GetDailyChallenge(ctx *gin.Context) {
	challenge, err := c.challenges.GetDailyChallenge(ctx.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("GetDailyChallenge: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch daily challenge"})
		return
	}
	ctx.JSON(http.StatusOK, challenge)
}
