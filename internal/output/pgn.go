package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// LineWriter writes space separated tokens, starting a new line before
// any token that would overrun the maximum line length. The first write
// error is kept and later writes are dropped.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a new line writer. A non-positive length means 80.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *LineWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

// WritePGN writes g as a PGN game: the seven tag roster, any other tags in
// name order, SetUp and FEN when the game did not start from the initial
// position, a blank line, the wrapped move text ending with the result,
// and a closing blank line.
func WritePGN(w io.Writer, g *game.Game, maxLineLength int) error {
	if err := writeTags(w, pgnTags(g)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	lw := NewLineWriter(w, maxLineLength)
	for i, m := range g.Moves() {
		number := strconv.FormatUint(uint64(m.Number), 10)
		switch {
		case m.Side == chess.White:
			lw.Write(number + ".")
		case i == 0:
			lw.Write(number + "...")
		}
		lw.Write(m.SAN)
	}
	lw.Write(g.Result())
	lw.NewLine()
	lw.NewLine()
	return lw.Err()
}

func pgnTags(g *game.Game) chess.Tags {
	tags := g.Tags()
	if start := g.StartFEN(); start != engine.InitialFEN {
		tags["SetUp"] = "1"
		tags["FEN"] = start
	}
	return tags
}

func writeTags(w io.Writer, tags chess.Tags) error {
	var sb strings.Builder
	for _, tag := range chess.SevenTagRoster {
		value := tags[tag]
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}
	for _, tag := range tags.ExtraTags() {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
