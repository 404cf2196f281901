package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger configuration populated from the environment.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Service     string `env:"APP_NAME" envDefault:"kvsessiond"`
	Level       string `env:"LOG_LEVEL" envDefault:""`  // debug, info, warn, error; empty keeps the environment default
	Format      string `env:"LOG_FORMAT" envDefault:""` // json or text; empty keeps the environment default
}

// NewFromConfig creates a logger from the provided Config.
// Environment defaults are applied first, then non-empty Level and Format.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Environment, cfg.Service)}

	if cfg.Level != "" {
		configOpts = append(configOpts, WithLevel(ParseLevel(cfg.Level)))
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// ParseLevel converts a level name to slog.Level, falling back to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
