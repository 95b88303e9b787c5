package v1

import (
	"career-map/internal/config"
	"career-map/internal/database"
	"career-map/internal/delivery/http/handler"
	"career-map/internal/delivery/http/middleware"
	"career-map/internal/form"
	"career-map/internal/infrastructure/cache"
	pgpersist "career-map/internal/infrastructure/persistence/postgres"
	"career-map/internal/pkg/jwt"
	"career-map/internal/repository"
	"career-map/internal/usecase"
	"career-map/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *logrus.Logger
}

func Register(r fiber.Router, deps Deps) error {
	if r == nil {
		return nil
	}

	schema, err := form.NewSchema()
	if err != nil {
		return err
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	reviewerRepo, err := pgpersist.NewReviewerRepository(deps.DB.SQLDB())
	if err != nil {
		return err
	}

	submissionRepo := repository.NewPostgresSubmissionRepository(deps.DB)
	suggestionRepo := repository.NewPostgresSkillSuggestionRepository(deps.DB)

	intakeUC := usecase.NewIntakeUsecase(schema, submissionRepo, deps.Logger, ws.SubmissionNotifier(deps.Hub))
	reviewUC := usecase.NewReviewUsecase(submissionRepo)
	suggestionUC := usecase.NewSuggestionUsecase(suggestionRepo, deps.Cache, deps.Config.Redis.TTL)
	authUC := usecase.NewAuthUsecase(reviewerRepo, jwtSvc)

	handler.NewIntakeHandler(intakeUC).RegisterRoutes(r)
	handler.NewSuggestionHandler(suggestionUC).RegisterRoutes(r)
	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("/review", authMw.Middleware())
	handler.NewReviewHandler(reviewUC).RegisterRoutes(protected)

	return nil
}
