package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "HTTP_PORT", "WS_PORT", "UPLOAD_RATE_LIMIT", "CORS_ALLOW_ORIGINS",
		"DB_HOST", "DB_PORT", "DB_POOL_MAX_CONNS", "CACHE_ENABLED", "REDIS_TTL",
		"JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET", "JWT_ACCESS_EXPIRES_IN",
		"RECRUITER_EMAIL", "RECRUITER_PASSWORD_HASH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.AppName != "rerank" || cfg.App.Environment != "development" {
		t.Fatalf("unexpected app defaults %+v", cfg.App)
	}
	if cfg.App.UploadRateLimit != 20 {
		t.Fatalf("expected upload limit 20, got %d", cfg.App.UploadRateLimit)
	}
	if cfg.Database.Enabled() {
		t.Fatalf("database should be disabled without DB_HOST")
	}
	if !cfg.Redis.Enabled || cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unexpected redis defaults %+v", cfg.Redis)
	}
	if cfg.AuthEnabled() {
		t.Fatalf("auth should be disabled without secrets")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "5m")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("RECRUITER_EMAIL", "r@example.com")
	t.Setenv("RECRUITER_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_POOL_MAX_CONNS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.App.CORSOrigins)
	}
	if cfg.Redis.Enabled || cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("unexpected redis %+v", cfg.Redis)
	}
	if cfg.JWT.AccessExpiresIn != 5*time.Minute {
		t.Fatalf("unexpected access ttl %s", cfg.JWT.AccessExpiresIn)
	}
	if !cfg.AuthEnabled() || !cfg.Database.Enabled() || cfg.Database.PoolMaxConns != 4 {
		t.Fatalf("expected auth and database enabled: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("UPLOAD_RATE_LIMIT", "lots")
	if _, err := Load(); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}
