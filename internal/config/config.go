// Package config holds the settings of a chess-rules run.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Starting position; empty means the standard initial position.
	FEN string

	// Moves to apply in order, coordinate or algebraic.
	Moves []string

	// Piece a pawn becomes when a move names none.
	Promotion chess.Piece

	// Header tags merged over the seven tag roster defaults.
	Tags chess.Tags

	Output OutputConfig
	Perft  PerftConfig
	Log    LogConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Promotion:  chess.Queen,
		Tags:       chess.Tags{},
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		Log:        *NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the destination of rendered output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if !chess.IsPromotionPiece(c.Promotion) {
		return fmt.Errorf("promotion piece %v: %w", c.Promotion, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// ParsePromotion reads a promotion piece letter, either case.
func ParsePromotion(s string) (chess.Piece, error) {
	if len(s) == 1 {
		if p, ok := chess.PieceFromSymbol(strings.ToLower(s)[0]); ok {
			if piece := chess.ExtractPiece(p); chess.IsPromotionPiece(piece) {
				return piece, nil
			}
		}
	}
	return chess.Empty, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidConfig)
}

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	// Depth in plies; 0 disables perft.
	Depth int

	// Divide reports the node count below each root move.
	Divide bool

	// Workers used by divide.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks the perft settings.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
