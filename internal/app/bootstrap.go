package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-map/internal/config"
	"career-map/internal/database/migration"
	"career-map/internal/database/seeder"
	"career-map/internal/delivery/http/middleware"
	"career-map/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *logrus.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareDatabase(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	if err := routes.Register(f, routes.Deps{
		Config: cfg,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		Logger: logger,
	}); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func prepareDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: c.Config.App.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seeds := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seeds.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func registerGlobalMiddleware(app *fiber.App, logger *logrus.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
