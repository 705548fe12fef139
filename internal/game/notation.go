package game

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Notation accumulates the move history as text: "N. " before each White
// move and a single space after every token. When the game ends the
// trailing space is replaced by the result, e.g. "1. f3 e5 2. g4 Qh4# 0-1".
type Notation struct {
	sb       strings.Builder
	finished bool
}

// Add appends a move token. number is the fullmove number of the position
// the move was played from.
func (n *Notation) Add(number uint, side chess.Colour, san string) {
	if n.finished {
		return
	}
	if side == chess.White {
		n.sb.WriteString(strconv.FormatUint(uint64(number), 10))
		n.sb.WriteString(". ")
	}
	n.sb.WriteString(san)
	n.sb.WriteByte(' ')
}

// Finish closes the record with the result token of status. It does nothing
// for an ongoing game or one already finished.
func (n *Notation) Finish(status chess.Status) {
	if n.finished || !status.IsTerminal() {
		return
	}
	text := strings.TrimSuffix(n.sb.String(), " ")
	n.sb.Reset()
	if text != "" {
		n.sb.WriteString(text)
		n.sb.WriteByte(' ')
	}
	n.sb.WriteString(status.Result())
	n.finished = true
}

// Finished reports whether a result has been written.
func (n *Notation) Finished() bool {
	return n.finished
}

// String returns the accumulated text.
func (n *Notation) String() string {
	return n.sb.String()
}
