// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort   string
	LogLevel     slog.Level
	SnapshotPath string // Optional JSON snapshot imported at startup
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is honored when present.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // Missing .env is fine; the environment wins anyway

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	logLevel := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := logLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	return &AppConfig{
		ServerPort:   serverPort,
		LogLevel:     logLevel,
		SnapshotPath: os.Getenv("SNAPSHOT_PATH"),
	}, nil
}
