package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolins/config"
	"github.com/lshigami/Pangolins/database"
	_ "github.com/lshigami/Pangolins/docs" // Swagger docs - auto-generated
	userctrl "github.com/lshigami/Pangolins/internal/controller/user"
	"github.com/lshigami/Pangolins/internal/logger"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Legal Exam Practice API
// @version 1.0
// @description Multiple-choice legal exam practice with exact-match scoring, spaced-repetition review scheduling, and achievements.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewRandSource,        // Fresh source in production, seeded in tests
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewProgressRepository,
			repository.NewAchievementRepository,
			repository.NewBookmarkRepository,
			repository.NewChallengeRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuestionSelectorService,
			service.NewReviewSchedulerService,
			service.NewAchievementService,
			service.NewSubmissionService,
			service.NewStatsService,
			service.NewBookmarkService,
			service.NewChallengeService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewProfileController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAchievements),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewRandSource provides the selector's random source.
func NewRandSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	profileCtrl *userctrl.ProfileController,
) {
	api := router.Group("/api/v1")
	{
		quizGroup := api.Group("/quiz")
		quizGroup.GET("/questions", quizCtrl.GetQuizQuestions)
		quizGroup.POST("/submissions", quizCtrl.SubmitQuiz)
		quizGroup.GET("/submissions", quizCtrl.ListSubmissions)
		quizGroup.GET("/submissions/:submission_id", quizCtrl.GetSubmission)
		quizGroup.GET("/review/due", quizCtrl.GetDueReviews)

		api.GET("/achievements", profileCtrl.ListAchievements)

		usersGroup := api.Group("/users/:user_id")
		usersGroup.GET("/stats", profileCtrl.GetUserStats)
		usersGroup.GET("/achievements", profileCtrl.ListUserAchievements)
		usersGroup.GET("/bookmarks", profileCtrl.ListBookmarks)
		usersGroup.POST("/bookmarks/:question_id/toggle", profileCtrl.ToggleBookmark)
		usersGroup.GET("/daily-challenge", profileCtrl.GetDailyChallenge)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Legal Exam Practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Answer{},
		&model.Submission{},
		&model.SubmissionAnswer{},
		&model.UserProgress{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.Bookmark{},
		&model.DailyChallenge{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedAchievements creates the static achievement set if it is not present.
// Conditions are a closed variant: quiz_count and correct_answers compare
// against Threshold, perfect_score needs a single flawless submission.
func SeedAchievements(achievementRepo repository.AchievementRepository) error {
	seed := []model.Achievement{
		{Name: "first_quiz", NameAr: "أول اختبار", Description: "Complete your first quiz", DescriptionAr: "أكمل اختبارك الأول", Icon: "trophy", ConditionType: model.ConditionQuizCount, Threshold: 1, Points: 10},
		{Name: "quiz_veteran", NameAr: "محارب الاختبارات", Description: "Complete 10 quizzes", DescriptionAr: "أكمل 10 اختبارات", Icon: "medal", ConditionType: model.ConditionQuizCount, Threshold: 10, Points: 50},
		{Name: "hundred_correct", NameAr: "مئة إجابة صحيحة", Description: "Answer 100 questions correctly", DescriptionAr: "أجب على 100 سؤال بشكل صحيح", Icon: "target", ConditionType: model.ConditionCorrectAnswers, Threshold: 100, Points: 100},
		{Name: "five_hundred_correct", NameAr: "خمسمئة إجابة صحيحة", Description: "Answer 500 questions correctly", DescriptionAr: "أجب على 500 سؤال بشكل صحيح", Icon: "star", ConditionType: model.ConditionCorrectAnswers, Threshold: 500, Points: 250},
		{Name: "perfect_score", NameAr: "النتيجة الكاملة", Description: "Get 100% score on a quiz", DescriptionAr: "احصل على نتيجة 100% في اختبار", Icon: "crown", ConditionType: model.ConditionPerfectScore, Threshold: 1, Points: 200},
	}

	for _, achievement := range seed {
		if _, err := achievementRepo.FindByName(achievement.Name); err == nil {
			continue
		}
		if err := achievementRepo.Create(&achievement); err != nil {
			log.Error().Err(err).Str("achievement", achievement.Name).Msg("Failed to seed achievement")
			return err
		}
		log.Info().Str("achievement", achievement.Name).Msg("Seeded achievement")
	}
	return nil
}
