package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "")
		t.Setenv("SESSION_TTL", "")
		t.Setenv("LOG_LEVEL", "")

		cfg := FromEnv()
		assert.Equal(t, "http://localhost:8081", cfg.BackendBaseURL)
		assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, "Solo Parent Statistical Report", cfg.Report.Title)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "https://welfare.example.gov/api/")
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := FromEnv()
		assert.Equal(t, "https://welfare.example.gov/api", cfg.BackendBaseURL)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	})
}
