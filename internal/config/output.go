package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how the final game is rendered.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // board diagram and position summary
	FENFormat                      // final position only
	PGNFormat                      // tags and move text
	JSONFormat                     // game summary
	SVGFormat                      // board image
)

var formatNames = map[OutputFormat]string{
	TextFormat: "text",
	FENFormat:  "fen",
	PGNFormat:  "pgn",
	JSONFormat: "json",
	SVGFormat:  "svg",
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a flag value to a format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// MinLineLength is the narrowest PGN move text accepted.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the renderer.
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN move text.
	MaxLineLength uint

	// SquareSize is the edge of one square in SVG output, in pixels.
	SquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		MaxLineLength: 80,
		SquareSize:    45,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d is below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("square size %d: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
