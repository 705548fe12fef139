package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	s, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return s
}

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *chess.Position)
	}{
		{
			name: "initial position",
			fen:  engine.InitialFEN,
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertEqual(t, p.Board.At(sq(t, "e1")), chess.W(chess.King))
				testutil.AssertEqual(t, p.Board.At(sq(t, "e8")), chess.B(chess.King))
				testutil.AssertEqual(t, p.Board.At(sq(t, "e2")), chess.W(chess.Pawn))
				testutil.AssertEqual(t, p.Board.At(sq(t, "e4")), chess.Empty)
				testutil.AssertEqual(t, p.ToMove, chess.White)
				testutil.AssertEqual(t, p.Castling, chess.CastlingRights{
					WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true,
				})
				testutil.AssertFalse(t, p.EnPassant)
				testutil.AssertEqual(t, p.HalfmoveClock, uint(0))
				testutil.AssertEqual(t, p.MoveNumber, uint(1))
				testutil.AssertEqual(t, p.Material.Count(chess.White, chess.PawnClass), 8)
				testutil.AssertEqual(t, p.Material.Count(chess.Black, chess.LightBishopClass), 1)
				testutil.AssertEqual(t, p.Material.Count(chess.Black, chess.DarkBishopClass), 1)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertEqual(t, p.Board.At(sq(t, "e4")), chess.W(chess.Pawn))
				testutil.AssertEqual(t, p.ToMove, chess.Black)
				testutil.AssertTrue(t, p.EnPassant)
				testutil.AssertEqual(t, p.EPSquare, sq(t, "e3"))
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertEqual(t, p.Castling, chess.CastlingRights{WhiteKingside: true, BlackQueenside: true})
				testutil.AssertEqual(t, p.HalfmoveClock, uint(12))
				testutil.AssertEqual(t, p.MoveNumber, uint(40))
			},
		},
		{
			name: "side to move may be in check",
			fen:  "4k3/8/8/8/8/8/8/4RK2 b - - 0 1",
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertTrue(t, engine.InCheck(p, chess.Black))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			tt.checkFn(t, pos)
		})
	}
}

func TestParseFEN_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "fields"},
		{"double space", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w  KQkq - 0 1", "fields"},
		{"empty", "", "fields"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"consecutive digits", "rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"rank too short", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", "board"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1", "board"},
		{"adjacent kings", "8/8/8/3kK3/8/8/8/8 w - - 0 1", "board"},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", "board"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side"},
		{"unknown castling token", "r3k2r/8/8/8/8/8/8/R3K2R w KQkqK - 0 1", "castling"},
		{"castling out of order", "r3k2r/8/8/8/8/8/8/R3K2R w qk - 0 1", "castling"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "castling"},
		{"castling with displaced king", "r3k2r/8/8/8/8/8/8/R4K1R w Q - 0 1", "castling"},
		{"en passant not a square", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", "en passant"},
		{"en passant wrong rank", "4k3/8/8/8/4P3/8/8/4K3 b - e4 0 1", "en passant"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", "en passant"},
		{"en passant square occupied", "4k3/8/4p3/4p3/8/8/8/4K3 w - e6 0 1", "en passant"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove"},
		{"leading zero halfmove", "4k3/8/8/8/8/8/8/4K3 w - - 01 1", "halfmove"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove"},
		{"text fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 x", "fullmove"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4RK2 w - - 0 1", "side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.ParseFEN(tt.fen)
			testutil.AssertNil(t, pos)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			var fenErr *errors.FENError
			if !stderrors.As(err, &fenErr) {
				t.Fatalf("error %v is not a *FENError", err)
			}
			testutil.AssertEqual(t, fenErr.Field, tt.wantField, "field for %q", tt.fen)
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		testutil.KiwipeteFEN,
		testutil.StalemateFEN,
		"4k3/8/8/8/8/8/8/4K3 w - - 99 1000",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, fen)
			testutil.AssertEqual(t, engine.FEN(pos), fen)
		})
	}
}

func TestFEN_TracksPlayedMoves(t *testing.T) {
	tests := []struct {
		name  string
		start string
		moves []string
		want  string
	}{
		{
			name:  "open game",
			start: engine.InitialFEN,
			moves: []string{"e2e4", "e7e5", "g1f3"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:  "castling clears both rights",
			start: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "en passant capture",
			start: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			moves: []string{"e5d6"},
			want:  "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "underpromotion",
			start: "4k3/1P6/8/8/8/8/8/4K3 w - - 5 9",
			moves: []string{"b7b8n"},
			want:  "1N2k3/8/8/8/8/8/8/4K3 b - - 0 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, testutil.FENAfter(t, tt.start, tt.moves...), tt.want)
		})
	}
}

func TestNewInitialPosition(t *testing.T) {
	pos := engine.NewInitialPosition()
	testutil.AssertNotNil(t, pos)
	testutil.AssertEqual(t, engine.FEN(pos), engine.InitialFEN)
}
