package engine_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// moveStrings returns the coordinate form of each legal move, in generator order.
func moveStrings(pos *chess.Position) []string {
	moves := engine.LegalMoves(pos)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func hasMove(pos *chess.Position, text string) bool {
	return slices.Contains(moveStrings(pos), text)
}

func TestLegalMoves_StartingPosition(t *testing.T) {
	pos := engine.NewInitialPosition()
	moves := moveStrings(pos)

	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, moves[0], "a2a4")
	testutil.AssertEqual(t, moves[len(moves)-1], "g1h3")
	testutil.AssertTrue(t, slices.Contains(moves, "b1c3"))
	testutil.AssertFalse(t, slices.Contains(moves, "e1e2"))

	testutil.MustPlayUCI(t, pos, "e2e4")
	testutil.AssertEqual(t, len(engine.LegalMoves(pos)), 20)
}

func TestLegalMoves_Count(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"kiwipete", testutil.KiwipeteFEN, 48},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
		{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 15},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", 4},
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", 0},
		{"stalemated", testutil.StalemateFEN, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			testutil.AssertEqual(t, len(engine.LegalMoves(pos)), tt.want)
			testutil.AssertEqual(t, engine.HasLegalMoves(pos), tt.want > 0)
		})
	}
}

func TestLegalMoves_Sorted(t *testing.T) {
	pos := testutil.MustParseFEN(t, testutil.KiwipeteFEN)
	moves := engine.LegalMoves(pos)
	index := func(s chess.Square) int { return s.Rank*chess.BoardSize + s.File }
	for i := 1; i < len(moves); i++ {
		a, b := moves[i-1], moves[i]
		if index(a.From) > index(b.From) || (a.From == b.From && index(a.To) >= index(b.To)) {
			t.Errorf("moves out of order at %d: %v before %v", i, a, b)
		}
	}
}

func TestLegalMoves_PinnedPiece(t *testing.T) {
	pos := testutil.MustParseFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	for _, m := range engine.LegalMoves(pos) {
		if m.From == sq(t, "e2") {
			t.Errorf("pinned bishop moved: %v", m)
		}
	}
}

func TestLegalMoves_EnPassantWindow(t *testing.T) {
	pos := testutil.MustPlayUCI(t, engine.NewInitialPosition(), "e2e4", "a7a6", "e4e5", "d7d5")

	testutil.AssertTrue(t, pos.EnPassant)
	testutil.AssertEqual(t, pos.EPSquare, sq(t, "d6"))

	var epMoves []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if m.EnPassant {
			epMoves = append(epMoves, m)
		}
	}
	testutil.AssertEqual(t, len(epMoves), 1)
	testutil.AssertEqual(t, epMoves[0].String(), "e5d6")

	resolved, ok := engine.ResolveMove(pos, chess.Move{From: sq(t, "e5"), To: sq(t, "d6")})
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, resolved.EnPassant)

	// Any other move closes the window.
	testutil.MustPlayUCI(t, pos, "g1f3")
	testutil.AssertFalse(t, pos.EnPassant)
	testutil.MustPlayUCI(t, pos, "a6a5")
	testutil.AssertFalse(t, hasMove(pos, "e5d6"))
}

func TestLegalMoves_EnPassantCapture(t *testing.T) {
	pos := testutil.MustPlayUCI(t, engine.NewInitialPosition(), "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")
	testutil.AssertEqual(t, pos.Board.At(sq(t, "d5")), chess.Empty)
	testutil.AssertEqual(t, pos.Board.At(sq(t, "d6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, pos.Material.Count(chess.Black, chess.PawnClass), 7)
	testutil.AssertEqual(t, pos.HalfmoveClock, uint(0))
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"kingside transit attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", false, true},
		{"destination attacked", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1", false, true},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", false, false},
		{"b-file attack allowed", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, true},
		{"queenside blocked on b1", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"kingside blocked on g1", "r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			testutil.AssertEqual(t, hasMove(pos, "e1g1"), tt.kingside, "kingside")
			testutil.AssertEqual(t, hasMove(pos, "e1c1"), tt.queenside, "queenside")
		})
	}
}

func TestLegalMoves_CastlingRightsArePermanent(t *testing.T) {
	const start = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	t.Run("rook returns", func(t *testing.T) {
		pos := testutil.MustPlayUCI(t, testutil.MustParseFEN(t, start), "h1h2", "a8a7", "h2h1", "a7a8")
		testutil.AssertEqual(t, pos.Castling, chess.CastlingRights{WhiteQueenside: true, BlackKingside: true})
		testutil.AssertFalse(t, hasMove(pos, "e1g1"))
		testutil.AssertTrue(t, hasMove(pos, "e1c1"))
	})

	t.Run("king returns", func(t *testing.T) {
		pos := testutil.MustPlayUCI(t, testutil.MustParseFEN(t, start), "e1e2", "e8e7", "e2e1", "e7e8")
		testutil.AssertFalse(t, pos.Castling.Any())
		testutil.AssertFalse(t, hasMove(pos, "e1g1"))
		testutil.AssertFalse(t, hasMove(pos, "e1c1"))
	})

	t.Run("rook captured on its corner", func(t *testing.T) {
		pos := testutil.MustPlayUCI(t, testutil.MustParseFEN(t, start), "a1a8")
		testutil.AssertEqual(t, pos.Castling, chess.CastlingRights{WhiteKingside: true, BlackKingside: true})
	})
}

func TestLegalMoves_NeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		testutil.KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/2n5/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, fen)
			mover := pos.ToMove
			for _, m := range engine.LegalMoves(pos) {
				after := pos.Copy()
				engine.ApplyMove(after, m, nil)
				testutil.AssertFalse(t, engine.InCheck(after, mover), "%v leaves the king attacked", m)
				testutil.AssertFalse(t, engine.KingsAdjacent(&after.Board), "%v puts kings side by side", m)
			}
		})
	}
}

func TestIsLegal(t *testing.T) {
	pos := engine.NewInitialPosition()
	tests := []struct {
		move string
		want bool
	}{
		{"e2e4", true},
		{"g1f3", true},
		{"e2e5", false},
		{"e1e2", false},
		{"e7e5", false},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			m, _ := testutil.MustMove(t, tt.move)
			testutil.AssertEqual(t, engine.IsLegal(pos, m), tt.want)
		})
	}
	testutil.AssertEqual(t, engine.FEN(pos), engine.InitialFEN, "generation must not change the position")
}
