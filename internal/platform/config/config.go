package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures console process configuration.
type Server struct {
	Addr           string
	BackendBaseURL string
	Environment    string
	SigningKey     string
	SessionTTL     time.Duration
	Log            Log
	Report         Report
}

// Log configures the structured logger.
type Log struct {
	Level slog.Level
	// File enables a rotating file sink in addition to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Report carries the fixed letterhead printed on every export.
type Report struct {
	OrganizationName string
	DepartmentName   string
	Title            string
}

const defaultBackendBaseURL = "http://localhost:8081"

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Server {
	_ = godotenv.Load()

	sessionTTL := 8 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			sessionTTL = d
		}
	}

	signingKey := os.Getenv("SESSION_SIGNING_KEY")
	if signingKey == "" {
		// Use a default for development - should be overridden in production
		signingKey = "dev-console-key-change-in-production"
	}

	return Server{
		Addr:           getEnv("CONSOLE_ADDR", ":8080"),
		BackendBaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", defaultBackendBaseURL), "/"),
		Environment:    getEnv("CONSOLE_ENV", "dev"),
		SigningKey:     signingKey,
		SessionTTL:     sessionTTL,
		Log: Log{
			Level:      parseLevel(os.Getenv("LOG_LEVEL")),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  50,
			MaxBackups: 5,
		},
		Report: Report{
			OrganizationName: getEnv("REPORT_ORG_NAME", "Republic of the Philippines"),
			DepartmentName:   getEnv("REPORT_DEPARTMENT", "City Social Welfare and Development Office"),
			Title:            getEnv("REPORT_TITLE", "Solo Parent Statistical Report"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
