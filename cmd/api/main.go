package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-futurehire-backend/config"
	v1 "go-futurehire-backend/internal/delivery/http/v1"
	"go-futurehire-backend/internal/repository/postgres"
	"go-futurehire-backend/internal/usecase"
	"go-futurehire-backend/pkg/auth"
	"go-futurehire-backend/pkg/database"
	"go-futurehire-backend/pkg/logger"
	"go-futurehire-backend/pkg/redis"
	"go-futurehire-backend/pkg/resume"
	"go-futurehire-backend/pkg/storage"
	"go-futurehire-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           FutureHire Backend API
// @version         1.0
// @description     Career guidance backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config (fails fast when JWT_SECRET or DATABASE_URL is missing)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting FutureHire backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis not available, rate limiting uses in-memory fallback", "error", err)
	}

	// 5. Setup Token Manager and Password Hasher
	tokenManager, err := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	if err != nil {
		logger.Log.Error("Failed to set up token manager", "error", err)
		os.Exit(1)
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// 6. Setup Resume File Storage (S3-compatible when configured, else disk)
	var fileStore storage.FileStore
	if cfg.S3Provider != "" {
		fileStore, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
		})
		if err != nil {
			logger.Log.Error("Failed to set up S3 storage", "error", err)
			os.Exit(1)
		}
	} else {
		fileStore, err = storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			logger.Log.Error("Failed to set up local storage", "error", err)
			os.Exit(1)
		}
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	studyRepo := postgres.NewHigherStudyRepository(dbPool)
	testRepo := postgres.NewTestRepository(dbPool)
	mentorRepo := postgres.NewMentorRepository(dbPool)
	chatbotRepo := postgres.NewChatbotRepository(dbPool)

	// 8. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokenManager)
	userUC := usecase.NewUserUsecase(userRepo)
	testUC := usecase.NewTestUsecase(testRepo, userRepo)
	resumeUC := usecase.NewResumeUsecase(userRepo, fileStore, resume.NewCannedAnalyzer())
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	studyUC := usecase.NewHigherStudyUsecase(studyRepo)
	mentorUC := usecase.NewMentorUsecase(mentorRepo)
	chatbotUC := usecase.NewChatbotUsecase(chatbotRepo)
	seedUC := usecase.NewSeedUsecase(companyRepo, skillRepo, courseRepo, studyRepo, testRepo, mentorRepo, chatbotRepo)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		TestUC:        testUC,
		ResumeUC:      resumeUC,
		CompanyUC:     companyUC,
		SkillUC:       skillUC,
		CourseUC:      courseUC,
		HigherStudyUC: studyUC,
		MentorUC:      mentorUC,
		ChatbotUC:     chatbotUC,
		SeedUC:        seedUC,
		TokenManager:  tokenManager,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
