package chess

// Move is a from/to pair plus the en passant flag. The promotion piece is
// chosen when the move is applied and is not part of its identity.
type Move struct {
	From      Square
	To        Square
	EnPassant bool
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseCoordinateMove parses "e2e4" or "e7e8q". The promotion piece type is
// Empty when no suffix is present. The en passant flag is never set; callers
// resolve it against the legal move list.
func ParseCoordinateMove(s string) (Move, Piece, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Empty, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, Empty, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, Empty, false
	}
	promo := Empty
	if len(s) == 5 {
		p, ok := PieceFromSymbol(s[4])
		if !ok || !IsPromotionPiece(ExtractPiece(p)) {
			return Move{}, Empty, false
		}
		promo = ExtractPiece(p)
	}
	return Move{From: from, To: to}, promo, true
}

// SameSquares reports whether two moves share origin and destination.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}
