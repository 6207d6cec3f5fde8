package v1

import (
	"log"

	"careerhub/internal/config"
	"careerhub/internal/database"
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/scoring"
	"careerhub/internal/infrastructure/ai"
	"careerhub/internal/infrastructure/persistence/postgres"
	"careerhub/internal/pkg/jwt"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure the route tree is built from.
type Deps struct {
	Config config.Config
	DB     database.DB
	JWT    jwt.Service
	Cache  usecase.SearchCache
	AI     *ai.Client
	Pusher usecase.Pusher
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	userRepo := postgres.NewUserRepository(d.DB)
	profileRepo := repository.NewPostgresProfileRepository(d.DB)
	alertRepo := repository.NewPostgresJobAlertRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(d.DB)
	cvRepo := repository.NewPostgresCVRepository(d.DB)
	companyRepo := repository.NewPostgresCompanyRepository(d.DB)
	memberRepo := repository.NewPostgresCompanyMemberRepository(d.DB)
	reviewRepo := repository.NewPostgresReviewRepository(d.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(d.DB)
	savedJobRepo := repository.NewPostgresSavedJobRepository(d.DB)
	recRepo := repository.NewPostgresRecommendationRepository(d.DB)

	notificationUC := usecase.NewNotificationUsecase(notificationRepo, d.Pusher)

	authUC := usecase.NewAuthUsecase(userRepo, d.JWT)
	userUC := usecase.NewUserUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, memberRepo, d.Cache)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, cvRepo, memberRepo, notificationUC)
	cvUC := usecase.NewCVUsecase(cvRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, memberRepo, userRepo, notificationUC)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, companyRepo)
	alertUC := usecase.NewJobAlertUsecase(alertRepo)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	recUC := usecase.NewRecommendationUsecase(
		userRepo, profileRepo, alertRepo, applicationRepo, jobRepo, recRepo, scoring.NewHeuristic())
	aiRecUC := usecase.NewAIRecommendationUsecase(d.AI, jobRepo, recRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC, profileUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	cvHandler := handler.NewCVHandler(cvUC)
	companyHandler := handler.NewCompanyHandler(companyUC, jobUC)
	reviewHandler := handler.NewReviewHandler(reviewUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)
	alertHandler := handler.NewJobAlertHandler(alertUC, savedJobUC)
	recHandler := handler.NewRecommendationHandler(recUC, aiRecUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	// Public browsing endpoints.
	jobHandler.RegisterPublicRoutes(r)
	companyHandler.RegisterPublicRoutes(r)
	reviewHandler.RegisterPublicRoutes(r)

	protected := r.Group("", authMw.Middleware())
	userHandler.RegisterRoutes(protected)
	jobHandler.RegisterRoutes(protected)
	applicationHandler.RegisterRoutes(protected)
	cvHandler.RegisterRoutes(protected)
	companyHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)
	notificationHandler.RegisterRoutes(protected)
	alertHandler.RegisterRoutes(protected)
	recHandler.RegisterRoutes(protected)
}
