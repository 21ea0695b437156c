package config

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           string
	Env            string
	LogLevel       slog.Level
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment, after loading a local .env
// file if one exists. Variables already set in the environment win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file", "error", err)
	}

	return Config{
		Host:           getEnv("HOST", "127.0.0.1"),
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// Addr is the listen address for the HTTP API.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewLogger returns a JSON logger in production and a text logger otherwise.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.Env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		slog.Warn("ignoring invalid integer", "key", key, "value", v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		slog.Warn("ignoring invalid number", "key", key, "value", v)
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
