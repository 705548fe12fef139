package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithMoves appends moves to play.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append(b.cfg.Moves, moves...)
	return b
}

// WithPromotion sets the default promotion piece.
func (b *ConfigBuilder) WithPromotion(piece chess.Piece) *ConfigBuilder {
	b.cfg.Promotion = piece
	return b
}

// WithTag sets one header tag.
func (b *ConfigBuilder) WithTag(name, value string) *ConfigBuilder {
	b.cfg.Tags[name] = value
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithPerftDepth requests a perft run of depth plies.
func (b *ConfigBuilder) WithPerftDepth(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of divide workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
