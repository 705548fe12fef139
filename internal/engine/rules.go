package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Thresholds for the draw rules.
const (
	FiftyMoveHalfmoves  = 100
	RepetitionDrawCount = 3
)

// Repetitions reports how often the most repeated position of a game has
// occurred. A nil Repetitions means no history is known.
type Repetitions interface {
	MaxRepetitions() int
}

// GameStatus evaluates pos for the end of the game. Conditions are checked
// in order of precedence: threefold repetition, the fifty-move rule,
// insufficient material, stalemate, checkmate.
func GameStatus(pos *chess.Position, reps Repetitions) chess.Status {
	if reps != nil && reps.MaxRepetitions() >= RepetitionDrawCount {
		return chess.ThreefoldRepetition
	}
	if pos.HalfmoveClock >= FiftyMoveHalfmoves {
		return chess.FiftyMoveRule
	}
	if HasInsufficientMaterial(pos.Material) {
		return chess.InsufficientMaterial
	}
	if HasLegalMoves(pos) {
		return chess.Ongoing
	}
	if InCheck(pos, pos.ToMove) {
		return chess.WinFor(pos.ToMove.Opposite())
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(pos *chess.Position) bool {
	return InCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the side to move has no legal move but is not
// in check.
func IsStalemate(pos *chess.Position) bool {
	return !InCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// HasInsufficientMaterial returns true if the material table matches one of
// the drawn patterns:
// - K vs K
// - K+N vs K
// - K + bishops all on one square colour vs K
// - K + bishops vs K + bishops, every bishop on the same square colour
//
// Opposite-coloured bishops and any other balance are not treated as drawn.
func HasInsufficientMaterial(m chess.Material) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if m.Count(colour, chess.PawnClass) > 0 ||
			m.Count(colour, chess.RookClass) > 0 ||
			m.Count(colour, chess.QueenClass) > 0 {
			return false
		}
	}

	wMinor := m.Count(chess.White, chess.KnightClass) + m.Bishops(chess.White)
	bMinor := m.Count(chess.Black, chess.KnightClass) + m.Bishops(chess.Black)

	switch {
	case wMinor == 0 && bMinor == 0:
		return true
	case bMinor == 0:
		return loneMinorsDraw(m, chess.White)
	case wMinor == 0:
		return loneMinorsDraw(m, chess.Black)
	}

	if m.Count(chess.White, chess.KnightClass) > 0 || m.Count(chess.Black, chess.KnightClass) > 0 {
		return false
	}
	allLight := m.Count(chess.White, chess.DarkBishopClass) == 0 && m.Count(chess.Black, chess.DarkBishopClass) == 0
	allDark := m.Count(chess.White, chess.LightBishopClass) == 0 && m.Count(chess.Black, chess.LightBishopClass) == 0
	return allLight || allDark
}

// loneMinorsDraw handles colour having minor pieces against a bare king:
// a single knight, or bishops confined to one square colour.
func loneMinorsDraw(m chess.Material, colour chess.Colour) bool {
	knights := m.Count(colour, chess.KnightClass)
	if knights > 0 {
		return knights == 1 && m.Bishops(colour) == 0
	}
	return m.Count(colour, chess.LightBishopClass) == 0 || m.Count(colour, chess.DarkBishopClass) == 0
}
