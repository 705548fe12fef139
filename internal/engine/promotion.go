package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PromotionChooser decides which piece a pawn becomes when it reaches the
// farthest rank. It is consulted before the move is applied, with the
// position still in its pre-move state.
type PromotionChooser interface {
	Choose(pos *chess.Position, m chess.Move) chess.Piece
}

// PromotionFunc adapts a function to PromotionChooser.
type PromotionFunc func(pos *chess.Position, m chess.Move) chess.Piece

// Choose calls f.
func (f PromotionFunc) Choose(pos *chess.Position, m chess.Move) chess.Piece {
	return f(pos, m)
}

// PromoteTo returns a chooser that always picks piece.
func PromoteTo(piece chess.Piece) PromotionChooser {
	return PromotionFunc(func(*chess.Position, chess.Move) chess.Piece {
		return piece
	})
}

// choosePromotion asks promo for a piece type; a nil chooser or an
// unusable answer yields a queen.
func choosePromotion(promo PromotionChooser, pos *chess.Position, m chess.Move) chess.Piece {
	if promo == nil {
		return chess.Queen
	}
	if piece := promo.Choose(pos, m); chess.IsPromotionPiece(piece) {
		return piece
	}
	return chess.Queen
}
