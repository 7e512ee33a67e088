package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/config"
	"github.com/lshigami/auriter/database"
	_ "github.com/lshigami/auriter/docs" // Swagger docs
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/cache"
	interviewctrl "github.com/lshigami/auriter/internal/controller/interview"
	recruiterctrl "github.com/lshigami/auriter/internal/controller/recruiter"
	userctrl "github.com/lshigami/auriter/internal/controller/user"
	"github.com/lshigami/auriter/internal/logger"
	"github.com/lshigami/auriter/internal/middleware"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/lshigami/auriter/internal/service"
	"github.com/lshigami/auriter/internal/speech"
	"github.com/lshigami/auriter/internal/storage"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Auriter Job Platform API
// @version 1.0
// @description Job postings, applications with resume analysis, and AI mock interviews with live transcription.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewRedisClient,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewJobRepository,
			repository.NewApplicationRepository,
			repository.NewInterviewRepository,
			repository.NewInterviewResponseRepository,
		),

		// Infrastructure used by services
		fx.Provide(
			auth.NewJWTMaker,
			cache.NewLocker,
			storage.NewResumeStore,
			service.NewTextGenerator,
			service.NewMailer,
			speech.NewFactory,
			middleware.NewAuthMiddleware,
		),

		// Services
		fx.Provide(
			service.NewAuthService,
			service.NewJobService,
			service.NewApplicationService,
			service.NewQuestionService,
			service.NewInterviewService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewJobController,
			userctrl.NewApplicationController,
			recruiterctrl.NewJobController,
			recruiterctrl.NewApplicationController,
			recruiterctrl.NewInterviewController,
			interviewctrl.NewInterviewController,
			interviewctrl.NewStreamController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

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

	origins := []string{"*"}
	if cfg.FrontendURL != "" {
		origins = []string{cfg.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type routeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Router    *gin.Engine
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Auth      *middleware.AuthMiddleware

	AuthCtrl               *userctrl.AuthController
	JobCtrl                *userctrl.JobController
	ApplicationCtrl        *userctrl.ApplicationController
	RecruiterJobCtrl       *recruiterctrl.JobController
	RecruiterAppCtrl       *recruiterctrl.ApplicationController
	RecruiterInterviewCtrl *recruiterctrl.InterviewController
	InterviewCtrl          *interviewctrl.InterviewController
	StreamCtrl             *interviewctrl.StreamController
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(p routeParams) {
	router := p.Router
	protect := p.Auth.Protect()

	router.GET("/health", func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "redis": "ok"}
		status := http.StatusOK
		if sqlDB, err := p.DB.DB(); err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
			checks["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if err := cache.Ping(ctx.Request.Context(), p.Redis); err != nil {
			checks["redis"] = "unavailable"
		}
		ctx.JSON(status, checks)
	})

	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthCtrl.Register)
		authGroup.POST("/login", p.AuthCtrl.Login)
		authGroup.POST("/role", protect, p.AuthCtrl.SetRole)
		authGroup.GET("/me", protect, p.AuthCtrl.Me)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", p.JobCtrl.SearchJobs)
		jobs.GET("/:job_id", p.JobCtrl.GetJob)
		jobs.POST("/:job_id/applications", protect, p.Auth.RequireRole(model.RoleJobSeeker), p.ApplicationCtrl.SubmitApplication)
	}

	applications := api.Group("/applications", protect)
	{
		applications.GET("/mine", p.Auth.RequireRole(model.RoleJobSeeker), p.ApplicationCtrl.ListMyApplications)
		applications.GET("/:application_id/analysis", p.ApplicationCtrl.GetResumeAnalysis)
	}

	recruiter := api.Group("/recruiter", protect, p.Auth.RequireRole(model.RoleRecruiter))
	{
		recruiter.POST("/jobs", p.RecruiterJobCtrl.CreateJob)
		recruiter.GET("/jobs", p.RecruiterJobCtrl.ListMyJobs)
		recruiter.PATCH("/jobs/:job_id", p.RecruiterJobCtrl.UpdateJob)
		recruiter.DELETE("/jobs/:job_id", p.RecruiterJobCtrl.DeleteJob)
		recruiter.GET("/jobs/:job_id/applications", p.RecruiterAppCtrl.ListJobApplications)

		recruiter.GET("/applications", p.RecruiterAppCtrl.SearchApplications)
		recruiter.GET("/applications/export", p.RecruiterAppCtrl.ExportApplications)
		recruiter.PATCH("/applications/:application_id/status", p.RecruiterAppCtrl.UpdateApplicationStatus)

		recruiter.POST("/interviews", p.RecruiterInterviewCtrl.ScheduleInterview)
	}

	interviews := api.Group("/interviews")
	{
		interviews.POST("/analyze", p.InterviewCtrl.AnalyzeResponses)
		interviews.GET("/:roomId", p.InterviewCtrl.GetInterviewDetails)
		interviews.GET("/:roomId/questions", p.InterviewCtrl.GetInterviewQuestions)
		interviews.POST("/:roomId/responses", p.InterviewCtrl.SubmitResponse)
		interviews.GET("/:roomId/responses", p.InterviewCtrl.ListResponses)
		interviews.POST("/:roomId/token", protect, p.InterviewCtrl.CreateRoomToken)
		interviews.GET("/:roomId/stream", p.StreamCtrl.Stream)
	}

	server := &http.Server{
		Addr:    ":" + p.Config.Server.Port,
		Handler: router,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Auriter API server starting on port %s", p.Config.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", p.Config.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.JobApplication{},
		&model.ResumeAnalysis{},
		&model.Interview{},
		&model.InterviewResponse{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
