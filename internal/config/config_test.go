package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.SquareSize != 45 {
		t.Errorf("SquareSize = %d, want 45", cfg.SquareSize)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.FEN != "" {
		t.Errorf("FEN = %q, want empty", cfg.FEN)
	}
	if cfg.Promotion != chess.Queen {
		t.Errorf("Promotion = %v, want queen", cfg.Promotion)
	}
	if cfg.Perft.Enabled() {
		t.Error("perft should be disabled by default")
	}
	if cfg.Perft.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Perft.Workers)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "rook promotion", modify: func(c *Config) { c.Promotion = chess.Rook }},
		{name: "king promotion", modify: func(c *Config) { c.Promotion = chess.King }, wantErr: true},
		{name: "unknown format", modify: func(c *Config) { c.Output.Format = OutputFormat(42) }, wantErr: true},
		{name: "narrow lines", modify: func(c *Config) { c.Output.MaxLineLength = 10 }, wantErr: true},
		{name: "zero square size", modify: func(c *Config) { c.Output.SquareSize = 0 }, wantErr: true},
		{name: "negative depth", modify: func(c *Config) { c.Perft.Depth = -1 }, wantErr: true},
		{name: "no workers", modify: func(c *Config) { c.Perft.Workers = 0 }, wantErr: true},
		{name: "bad log level", modify: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "trace level", modify: func(c *Config) { c.Log.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, want := range []OutputFormat{TextFormat, FENFormat, PGNFormat, JSONFormat, SVGFormat} {
		got, err := ParseOutputFormat(want.String())
		if err != nil {
			t.Fatalf("ParseOutputFormat(%q): %v", want.String(), err)
		}
		if got != want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", want.String(), got, want)
		}
	}

	if _, err := ParseOutputFormat("png"); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("ParseOutputFormat(png) error = %v, want ErrInvalidConfig", err)
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Piece
		wantErr bool
	}{
		{in: "q", want: chess.Queen},
		{in: "R", want: chess.Rook},
		{in: "b", want: chess.Bishop},
		{in: "n", want: chess.Knight},
		{in: "k", wantErr: true},
		{in: "p", wantErr: true},
		{in: "", wantErr: true},
		{in: "qq", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePromotion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePromotion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePromotion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogConfig_ParsedLevel(t *testing.T) {
	l := LogConfig{Level: "debug"}
	level, err := l.ParsedLevel()
	if err != nil {
		t.Fatalf("ParsedLevel: %v", err)
	}
	if level != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", level)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithMoves("a1a2", "h1h2").
		WithMoves("a2a3").
		WithPromotion(chess.Knight).
		WithTag("White", "Alice").
		WithFormat(PGNFormat).
		WithMaxLineLength(120).
		WithPerftDepth(3, true).
		WithWorkers(4).
		WithLogLevel("debug").
		WithOutput(buf).
		Build()

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if len(cfg.Moves) != 3 || cfg.Moves[2] != "a2a3" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if cfg.Promotion != chess.Knight {
		t.Errorf("Promotion = %v, want knight", cfg.Promotion)
	}
	if cfg.Tags["White"] != "Alice" {
		t.Errorf("Tags = %v", cfg.Tags)
	}
	if cfg.Output.Format != PGNFormat {
		t.Errorf("Format = %v, want pgn", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || cfg.Perft.Workers != 4 {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
