package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets vars the test asserts defaults for, so an ambient
// environment cannot leak in. t.Setenv first registers the restore.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t,
		"DB_HOST", "REDIS_HOST", "FF_CACHE_TTL",
		"PIPELINE_GOAL_TYPE", "PIPELINE_INTEGRATION_TYPE",
	)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("expected default DB host, got %s", cfg.Database.Host)
	}
	if cfg.Pipeline.GoalType != "objectives" {
		t.Errorf("expected default goal type, got %s", cfg.Pipeline.GoalType)
	}
	if cfg.Pipeline.IntegrationType != "fireflies" {
		t.Errorf("expected default integration type, got %s", cfg.Pipeline.IntegrationType)
	}
	if cfg.RedisEnabled() {
		t.Error("redis should be disabled without REDIS_HOST")
	}
	if cfg.Fireflies.CacheTTL != 15*time.Minute {
		t.Errorf("unexpected cache TTL %v", cfg.Fireflies.CacheTTL)
	}
}

func TestLoad_MissingOpenAIKeyIsFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	clearEnv(t, "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_SSLMODE")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "pulse_prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dsn := cfg.GetDatabaseDSN()
	want := "host=db.internal port=5432 user=postgres password=postgres dbname=pulse_prod sslmode=disable"
	if dsn != want {
		t.Errorf("dsn mismatch:\n got %s\nwant %s", dsn, want)
	}
}
