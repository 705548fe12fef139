// Package output renders positions and games as text, PGN, JSON and SVG.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// StatusMessage returns a one-line description of how the game stands.
func StatusMessage(status chess.Status) string {
	switch status {
	case chess.WhiteWins:
		return "Checkmate, white wins"
	case chess.BlackWins:
		return "Checkmate, black wins"
	case chess.Stalemate:
		return "Draw by stalemate"
	case chess.InsufficientMaterial:
		return "Draw by insufficient material"
	case chess.FiftyMoveRule:
		return "Draw by 50-move rule"
	case chess.ThreefoldRepetition:
		return "Draw by threefold repetition"
	default:
		return "Game in progress"
	}
}

// WriteBoard writes a diagram of pos followed by its state, one field per
// line. lastMove may be empty.
func WriteBoard(w io.Writer, pos *chess.Position, lastMove string) error {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		sb.WriteByte(byte('8' - rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(chess.Symbol(pos.Board.At(chess.NewSquare(file, rank))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	if lastMove == "" {
		lastMove = "-"
	}
	ep := "-"
	if pos.EnPassant {
		ep = pos.EPSquare.String()
	}

	fmt.Fprintf(&sb, "Last move: %s\n", lastMove)
	fmt.Fprintf(&sb, "Turn: %s\n", pos.ToMove)
	fmt.Fprintf(&sb, "Legal moves: %d\n", len(engine.LegalMoves(pos)))
	fmt.Fprintf(&sb, "En passant: %s\n", ep)
	fmt.Fprintf(&sb, "Castling: %s\n", pos.Castling)
	fmt.Fprintf(&sb, "Halfmove: %d\n", pos.HalfmoveClock)
	fmt.Fprintf(&sb, "Fullmove: %d\n", pos.MoveNumber)
	fmt.Fprintf(&sb, "%s\n", engine.FEN(pos))

	_, err := io.WriteString(w, sb.String())
	return err
}

// WritePerft writes the total node count of a perft run.
func WritePerft(w io.Writer, depth int, nodes uint64) error {
	_, err := fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes)
	return err
}

// WriteDivide writes one "move: nodes" line per root move followed by the
// total.
func WriteDivide(w io.Writer, entries []engine.DivideEntry) error {
	var sb strings.Builder
	var total uint64
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s: %d\n", e.UCI(), e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(&sb, "\nMoves: %d\nNodes: %d\n", len(entries), total)
	_, err := io.WriteString(w, sb.String())
	return err
}
