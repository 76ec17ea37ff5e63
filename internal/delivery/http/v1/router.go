package v1

import (
	"net/http"
	"time"

	"go-futurehire-backend/config"
	"go-futurehire-backend/internal/delivery/http/middleware"
	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	TestUC        domain.TestUsecase
	ResumeUC      domain.ResumeUsecase
	CompanyUC     domain.CompanyUsecase
	SkillUC       domain.SkillUsecase
	CourseUC      domain.CourseUsecase
	HigherStudyUC domain.HigherStudyUsecase
	MentorUC      domain.MentorUsecase
	ChatbotUC     domain.ChatbotUsecase
	SeedUC        domain.SeedUsecase
	TokenManager  *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	authGroup := v1.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(authGroup, deps.AuthUC)

	NewCompanyHandler(v1, deps.CompanyUC)
	NewSkillHandler(v1, deps.SkillUC)
	NewCourseHandler(v1, deps.CourseUC)
	NewHigherStudyHandler(v1, deps.HigherStudyUC)
	NewMentorHandler(v1, deps.MentorUC)
	NewChatbotHandler(v1, deps.ChatbotUC)
	NewSeedHandler(v1, deps.SeedUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager))
	{
		NewUserHandler(protected, deps.UserUC)
		NewTestHandler(protected, deps.TestUC)
		NewResumeHandler(protected, deps.ResumeUC, deps.Config.MaxUploadBytes)
	}

	return r
}
