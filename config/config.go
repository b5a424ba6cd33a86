// Package config loads bot configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultUpdateInterval = 60
	defaultExecTimeout    = 5
)

// Config holds the static bot configuration. Immutable after Load.
type Config struct {
	Token          string        // Discord bot token, required
	ChannelID      string        // channel for the auto-updating status message, empty = unset
	UpdateInterval time.Duration // period of the status publisher
	ExecTimeout    time.Duration // bound on external tool calls (neofetch, uptime)
	Logger         *zap.SugaredLogger
}

// Load reads config from .env (if present) and environment variables.
func Load() *Config {
	logger := zap.Must(zap.NewProduction()).Sugar()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	return &Config{
		Token:          os.Getenv("DISCORD_TOKEN"),
		ChannelID:      channelID(os.Getenv("MONITOR_CHANNEL_ID")),
		UpdateInterval: secondsEnv(logger, "UPDATE_INTERVAL", defaultUpdateInterval),
		ExecTimeout:    secondsEnv(logger, "EXEC_TIMEOUT", defaultExecTimeout),
		Logger:         logger,
	}
}

// channelID normalizes the channel setting: it must be a positive integer
// snowflake, anything else (including the "0" placeholder) means unset.
func channelID(raw string) string {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return ""
	}
	return raw
}

// secondsEnv parses an integer-seconds env var with a fallback. Values
// below one second fall back too.
func secondsEnv(logger *zap.SugaredLogger, key string, fallback int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Second
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		logger.Warnf("invalid %s=%q, using default %ds", key, raw, fallback)
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(v) * time.Second
}
