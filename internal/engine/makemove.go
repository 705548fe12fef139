package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Undo is the minimal record needed to revert a move made with MakeMove.
type Undo struct {
	Moved          chess.Piece
	Captured       chess.Piece
	CapturedSquare chess.Square
	Promoted       chess.Piece

	Castled  bool
	RookFrom chess.Square
	RookTo   chess.Square

	Castling      chess.CastlingRights
	EnPassant     bool
	EPSquare      chess.Square
	HalfmoveClock uint
	MoveNumber    uint
	Material      chess.Material
}

// ApplyMove plays m on pos in place. m must come from LegalMoves(pos);
// anything else leaves pos in an unspecified state. Use PlayMove for a
// checked variant.
func ApplyMove(pos *chess.Position, m chess.Move, promo PromotionChooser) {
	MakeMove(pos, m, promo)
}

// PlayMove validates m against the legal moves of pos and applies it.
// The en passant flag of m is resolved from the legal move list.
func PlayMove(pos *chess.Position, m chess.Move, promo PromotionChooser) (chess.Move, error) {
	legal, ok := ResolveMove(pos, m)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%v in %s", m, FEN(pos))
	}
	if IsPromotion(pos, legal) && promo != nil {
		piece := promo.Choose(pos, legal)
		if !chess.IsPromotionPiece(piece) {
			return chess.Move{}, errors.Wrapf(errors.ErrInvalidPromotion, "%v", piece)
		}
		promo = PromoteTo(piece)
	}
	MakeMove(pos, legal, promo)
	return legal, nil
}

// MakeMove applies m to pos and returns what UnmakeMove needs to revert it.
// The side effects happen in this order: the piece moves and any captured
// piece leaves the material table; a castling rook is relocated and castling
// rights are revoked; an en passant victim is removed; the en passant target
// is recomputed; the clocks advance; a promoted pawn is replaced; the side to
// move changes.
func MakeMove(pos *chess.Position, m chess.Move, promo PromotionChooser) Undo {
	board := &pos.Board
	mover := pos.ToMove
	piece := board.At(m.From)
	kind := chess.ExtractPiece(piece)

	promoted := chess.Empty
	if kind == chess.Pawn && m.To.Rank == chess.PromotionRank(mover) {
		promoted = choosePromotion(promo, pos, m)
	}

	undo := Undo{
		Moved:          piece,
		Captured:       board.At(m.To),
		CapturedSquare: m.To,
		Promoted:       promoted,
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		EPSquare:       pos.EPSquare,
		HalfmoveClock:  pos.HalfmoveClock,
		MoveNumber:     pos.MoveNumber,
		Material:       pos.Material,
	}

	// Relocate the piece.
	board.Set(m.From, chess.Empty)
	board.Set(m.To, piece)
	pos.Material.Add(undo.Captured, m.To, -1)

	// Castling and castling rights.
	if kind == chess.King {
		if isCastlingGeometry(mover, m) {
			undo.Castled = true
			undo.RookFrom, undo.RookTo = castlingRookSquares(m.To)
			board.Set(undo.RookTo, board.At(undo.RookFrom))
			board.Set(undo.RookFrom, chess.Empty)
		}
		pos.Castling.Revoke(mover)
	}
	revokeCornerRights(&pos.Castling, m.From)
	revokeCornerRights(&pos.Castling, m.To)

	// En passant capture.
	if m.EnPassant {
		victim := m.To.Offset(0, -chess.PawnDirection(mover))
		undo.Captured = board.At(victim)
		undo.CapturedSquare = victim
		board.Set(victim, chess.Empty)
		pos.Material.Add(undo.Captured, victim, -1)
	}

	// En passant target.
	pos.EnPassant = false
	pos.EPSquare = chess.NoSquare
	if kind == chess.Pawn && m.From.Rank == chess.PawnRank(mover) && abs(m.To.Rank-m.From.Rank) == 2 {
		pos.EnPassant = true
		pos.EPSquare = m.From.Offset(0, chess.PawnDirection(mover))
	}

	// Clocks.
	if kind == chess.Pawn || undo.Captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if mover == chess.Black {
		pos.MoveNumber++
	}

	// Promotion.
	if promoted != chess.Empty {
		newPiece := chess.MakeColouredPiece(mover, promoted)
		board.Set(m.To, newPiece)
		pos.Material.Add(piece, m.To, -1)
		pos.Material.Add(newPiece, m.To, 1)
	}

	pos.ToMove = mover.Opposite()
	return undo
}

// UnmakeMove reverts a move made with MakeMove.
func UnmakeMove(pos *chess.Position, m chess.Move, undo Undo) {
	board := &pos.Board

	board.Set(m.To, chess.Empty)
	board.Set(m.From, undo.Moved)
	if undo.Captured != chess.Empty {
		board.Set(undo.CapturedSquare, undo.Captured)
	}
	if undo.Castled {
		board.Set(undo.RookFrom, board.At(undo.RookTo))
		board.Set(undo.RookTo, chess.Empty)
	}

	pos.Castling = undo.Castling
	pos.EnPassant = undo.EnPassant
	pos.EPSquare = undo.EPSquare
	pos.HalfmoveClock = undo.HalfmoveClock
	pos.MoveNumber = undo.MoveNumber
	pos.Material = undo.Material
	pos.ToMove = chess.ExtractColour(undo.Moved)
}
