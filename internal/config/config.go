package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSessionTTL = 30 * time.Minute
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	BasicAuthUsername string
	BasicAuthPassword string

	// Seed seeds the random opponents. Zero means a time based seed.
	Seed uint64

	// SessionTTL is how long a game can be idle before it is removed.
	SessionTTL time.Duration
}

// LoadServerConfig loads configuration from environment variables.
// Values from a .env file in the working directory are loaded first, if present.
func LoadServerConfig() *ServerConfig {
	LoadDotEnv(".env")

	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		BasicAuthUsername: os.Getenv("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: os.Getenv("REVERSI_BASIC_AUTH_PASS"),
		Seed:              getEnvUint("REVERSI_SEED", 0),
		SessionTTL:        getEnvDuration("REVERSI_SESSION_TTL", DefaultSessionTTL),
	}
}

// BasicAuthEnabled returns whether both basic auth credentials are set.
func (cfg *ServerConfig) BasicAuthEnabled() bool {
	return cfg.BasicAuthUsername != "" && cfg.BasicAuthPassword != ""
}

// LoadDotEnv loads environment variables from filename without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(filename string) {
	err := godotenv.Load(filename)
	if err == nil {
		slog.Debug("Loaded environment file", "filename", filename)
		return
	}

	if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load environment file", "filename", filename, "error", err)
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvUint(key string, fallback uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an unsigned integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
