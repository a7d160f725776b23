// Package config loads the interm demo settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config controls the interm CLI runtime.
type Config struct {
	Lines       int
	Steps       int
	Tick        time.Duration
	LogLevel    slog.Level
	ClearOnExit bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Lines:       10,
		Steps:       100,
		Tick:        40 * time.Millisecond,
		LogLevel:    slog.LevelWarn,
		ClearOnExit: true,
	}
}

// Load reads configuration from environment variables. When envFile is set
// it is loaded first; variables already present in the environment win.
func Load(envFile string) (Config, error) {
	if envFile = strings.TrimSpace(envFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	def := Default()
	lines, err := intEnvStrict("INTERM_LINES", def.Lines)
	if err != nil {
		return Config{}, err
	}
	steps, err := intEnvStrict("INTERM_STEPS", def.Steps)
	if err != nil {
		return Config{}, err
	}
	tick, err := durationEnvStrict("INTERM_TICK", def.Tick)
	if err != nil {
		return Config{}, err
	}
	level, err := levelEnvStrict("INTERM_LOG_LEVEL", def.LogLevel)
	if err != nil {
		return Config{}, err
	}
	clearOnExit, err := boolEnvStrict("INTERM_CLEAR_ON_EXIT", def.ClearOnExit)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Lines:       lines,
		Steps:       steps,
		Tick:        tick,
		LogLevel:    level,
		ClearOnExit: clearOnExit,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Lines <= 0 || c.Lines > 255 {
		return errors.New("config: lines must be between 1 and 255")
	}
	if c.Steps <= 0 {
		return errors.New("config: steps must be greater than 0")
	}
	if c.Tick < 0 {
		return errors.New("config: tick must be zero or greater")
	}
	return nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("config: invalid log level %q", value)
	}
	return level, nil
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func intEnvStrict(key string, fallback int) (int, error) {
	value := trimmedEnv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return parsed, nil
}

func durationEnvStrict(key string, fallback time.Duration) (time.Duration, error) {
	value := trimmedEnv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return parsed, nil
}

func levelEnvStrict(key string, fallback slog.Level) (slog.Level, error) {
	value := trimmedEnv(key)
	if value == "" {
		return fallback, nil
	}
	level, err := ParseLevel(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return level, nil
}

func boolEnvStrict(key string, fallback bool) (bool, error) {
	value := strings.ToLower(trimmedEnv(key))
	if value == "" {
		return fallback, nil
	}
	switch value {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("config: invalid %s: expected true/false", key)
	}
}
