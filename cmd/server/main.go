package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-map/internal/app"
	"career-map/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	application, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to bootstrap app")
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.WithError(err).Warn("cleanup error")
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.WithError(err).Fatal("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Fatal("server error")
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.WithError(err).Warn("shutdown error")
		}
	}
}
