package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-map")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_NAME", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("unexpected http port: %q", cfg.App.HTTPPort)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("unexpected redis ttl: %v", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access expiry: %v", cfg.JWT.AccessExpiresIn)
	}
}

func TestDurationEnv_SecondsAndDuration(t *testing.T) {
	t.Setenv("X_DURATION", "900")
	if got := durationEnv("X_DURATION", 0); got != 900*time.Second {
		t.Fatalf("expected 900s, got %v", got)
	}

	t.Setenv("X_DURATION", "15m")
	if got := durationEnv("X_DURATION", 0); got != 15*time.Minute {
		t.Fatalf("expected 15m, got %v", got)
	}

	t.Setenv("X_DURATION", "garbage")
	if got := durationEnv("X_DURATION", time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
}
