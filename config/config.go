// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Defaults used when the environment is silent or malformed.
const (
	DefaultSymprec  = 1e-5
	DefaultNDim     = 3
	DefaultLogLevel = "warn"
)

var (
	// ErrInvalidSymprec is returned by Validate for symprec <= 0.
	ErrInvalidSymprec = errors.New("config: symprec must be > 0")

	// ErrInvalidNDim is returned by Validate for ndim < 1.
	ErrInvalidNDim = errors.New("config: ndim must be >= 1")

	// ErrInvalidLogLevel is returned by Validate for unknown level names.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Settings are the environment-tunable knobs of a projector.
type Settings struct {
	Symprec  float64 `env:"UNFOLD_SYMPREC"   envDefault:"1e-5"`
	NDim     int     `env:"UNFOLD_NDIM"      envDefault:"3"`
	LogLevel string  `env:"UNFOLD_LOG_LEVEL" envDefault:"warn"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Symprec:  DefaultSymprec,
		NDim:     DefaultNDim,
		LogLevel: DefaultLogLevel,
	}
}

// ParseEnv loads settings from environment variables and validates them.
func ParseEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Load returns ParseEnv's result, falling back to Default on any error.
func Load() Settings {
	s, err := ParseEnv()
	if err != nil {
		return Default()
	}

	return s
}

// Validate checks every field.
func (s Settings) Validate() error {
	if !(s.Symprec > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidSymprec, s.Symprec)
	}
	if s.NDim < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNDim, s.NDim)
	}
	if _, err := s.Level(); err != nil {
		return err
	}

	return nil
}

// Level maps LogLevel onto slog.
func (s Settings) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}
}

// Logger returns a text logger writing to w at the configured level. An
// unknown level falls back to warn.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	lvl, err := s.Level()
	if err != nil {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
