package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Positions used across packages.
const (
	// KiwipeteFEN exercises castling, en passant, promotion and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// FoolsMateFEN is the position after 1. f3 e5 2. g4; Black mates with Qh4.
	FoolsMateFEN = "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2"

	// StalemateFEN has Black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// MustParseFEN parses fen and calls t.Fatal if it is rejected.
func MustParseFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MustMove parses a coordinate move such as "e2e4" or "e7e8n".
func MustMove(t testing.TB, text string) (chess.Move, chess.Piece) {
	t.Helper()
	m, promo, ok := chess.ParseCoordinateMove(text)
	if !ok {
		t.Fatalf("bad coordinate move %q", text)
	}
	return m, promo
}

// MustPlayUCI plays coordinate moves on pos in order and calls t.Fatal on
// the first illegal one. A promotion without a suffix becomes a queen.
// It returns pos for chaining.
func MustPlayUCI(t testing.TB, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	for _, text := range moves {
		m, promo := MustMove(t, text)
		var chooser engine.PromotionChooser
		if promo != chess.Empty {
			chooser = engine.PromoteTo(promo)
		}
		if _, err := engine.PlayMove(pos, m, chooser); err != nil {
			t.Fatalf("play %s in %s: %v", text, engine.FEN(pos), err)
		}
	}
	return pos
}

// FENAfter parses fen, plays moves and returns the resulting FEN.
func FENAfter(t testing.TB, fen string, moves ...string) string {
	t.Helper()
	return engine.FEN(MustPlayUCI(t, MustParseFEN(t, fen), moves...))
}
