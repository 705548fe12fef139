package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name such as "debug" or "warn".
	Level string

	// Pretty switches to human readable console output.
	Pretty bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: zerolog.LevelWarnValue}
}

// ParsedLevel returns the zerolog level for Level.
func (l *LogConfig) ParsedLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks the log settings.
func (l *LogConfig) Validate() error {
	_, err := l.ParsedLevel()
	return err
}
