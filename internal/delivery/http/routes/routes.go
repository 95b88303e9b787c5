package routes

import (
	"career-map/internal/config"
	"career-map/internal/database"
	"career-map/internal/delivery/http/handler"
	v1 "career-map/internal/delivery/http/routes/v1"
	"career-map/internal/infrastructure/cache"
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

func Register(app *fiber.App, deps Deps) error {
	if app == nil {
		return nil
	}

	handler.NewHealthHandler(deps.DB).RegisterRoutes(app)

	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
	app.Get("/ws/submissions", wsHandler.HandleSubmissionsWS)

	api := app.Group("/api")
	return v1.Register(api.Group("/v1"), v1.Deps{
		Config: deps.Config,
		DB:     deps.DB,
		Cache:  deps.Cache,
		Hub:    deps.Hub,
		Logger: deps.Logger,
	})
}
