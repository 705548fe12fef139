package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for cfg.Output.Format.
func NewGameWriter(w io.Writer, cfg *config.Config) (GameWriter, error) {
	switch cfg.Output.Format {
	case config.TextFormat:
		return &TextWriter{w: w}, nil
	case config.FENFormat:
		return &FENWriter{w: w}, nil
	case config.PGNFormat:
		return NewPGNWriter(w, cfg), nil
	case config.JSONFormat:
		return NewJSONWriterSingle(w), nil
	case config.SVGFormat:
		return &SVGWriter{w: w, squareSize: cfg.Output.SquareSize}, nil
	default:
		return nil, fmt.Errorf("output format %v: %w", cfg.Output.Format, errors.ErrInvalidConfig)
	}
}

func lastMoveText(g *game.Game) string {
	moves := g.Moves()
	if len(moves) == 0 {
		return ""
	}
	return moves[len(moves)-1].UCI()
}

// TextWriter writes the final board diagram and the game status.
type TextWriter struct {
	w io.Writer
}

// WriteGame writes the board, the move history and the status.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	if err := WriteBoard(tw.w, g.Position(), lastMoveText(g)); err != nil {
		return err
	}
	if text := g.Notation(); text != "" {
		if _, err := fmt.Fprintf(tw.w, "Moves: %s\n", text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "%s\n", StatusMessage(g.Status()))
	return err
}

// Flush is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes the final position as a FEN line.
type FENWriter struct {
	w io.Writer
}

// WriteGame writes the FEN of the current position.
func (fw *FENWriter) WriteGame(g *game.Game) error {
	_, err := fmt.Fprintln(fw.w, g.FEN())
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (fw *FENWriter) Close() error {
	return nil
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:             w,
		maxLineLength: int(cfg.Output.MaxLineLength),
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(g *game.Game) error {
	return WritePGN(pw.w, g, pw.maxLineLength)
}

// Flush is a no-op; PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games and writes them as
// an array on Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	if jw.single {
		return WriteJSON(jw.w, g)
	}
	jw.games = append(jw.games, GameToJSON(g))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// SVGWriter draws the final position of each game.
type SVGWriter struct {
	w          io.Writer
	squareSize int
}

// WriteGame draws the current position, highlighting the last move.
func (sw *SVGWriter) WriteGame(g *game.Game) error {
	var last *chess.Move
	if moves := g.Moves(); len(moves) > 0 {
		last = &moves[len(moves)-1].Move
	}
	return WriteSVG(sw.w, g.Position(), last, sw.squareSize)
}

// Flush is a no-op.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (sw *SVGWriter) Close() error {
	return nil
}
