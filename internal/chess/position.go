package chess

import "strings"

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports whether colour may still castle kingside.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports whether colour may still castle queenside.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// RevokeKingside removes colour's kingside right.
func (c *CastlingRights) RevokeKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// RevokeQueenside removes colour's queenside right.
func (c *CastlingRights) RevokeQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// Revoke removes both of colour's rights.
func (c *CastlingRights) Revoke(colour Colour) {
	c.RevokeKingside(colour)
	c.RevokeQueenside(colour)
}

// Any reports whether at least one right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// String returns the FEN castling field, "-" when no rights remain.
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// MaterialClass is a bucket of the piece-count table. Bishops are split by
// the colour of the square they stand on.
type MaterialClass int

const (
	PawnClass MaterialClass = iota
	KnightClass
	LightBishopClass
	DarkBishopClass
	RookClass
	QueenClass
	KingClass
	NumMaterialClasses
)

// ClassOf returns the material bucket for a piece type standing on sq.
func ClassOf(piece Piece, sq Square) MaterialClass {
	switch piece {
	case Pawn:
		return PawnClass
	case Knight:
		return KnightClass
	case Bishop:
		if sq.IsLight() {
			return LightBishopClass
		}
		return DarkBishopClass
	case Rook:
		return RookClass
	case Queen:
		return QueenClass
	default:
		return KingClass
	}
}

// Material is the piece-count table, indexed by colour then class.
type Material [2][NumMaterialClasses]int

// Add adjusts the count of a coloured piece standing on sq by delta.
func (m *Material) Add(colouredPiece Piece, sq Square, delta int) {
	if colouredPiece == Empty {
		return
	}
	colour := ExtractColour(colouredPiece)
	m[colour][ClassOf(ExtractPiece(colouredPiece), sq)] += delta
}

// Count returns the number of colour's pieces in class.
func (m Material) Count(colour Colour, class MaterialClass) int {
	return m[colour][class]
}

// Bishops returns colour's total bishop count.
func (m Material) Bishops(colour Colour) int {
	return m[colour][LightBishopClass] + m[colour][DarkBishopClass]
}

// CountMaterial builds the piece-count table from a board.
func CountMaterial(b *Board) Material {
	var m Material
	b.Squares(func(sq Square, piece Piece) {
		m.Add(piece, sq, 1)
	})
	return m
}

// Position is the complete state of a game at one moment.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is an en passant capture possible? If so EPSquare holds the
	// square passed over by the pawn that has just advanced two ranks.
	EnPassant bool
	EPSquare  Square

	// Plies since the last capture or pawn move.
	HalfmoveClock uint

	// The fullmove number, incremented after Black moves.
	MoveNumber uint

	Material Material
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// SamePosition reports whether two positions are identical for repetition
// purposes: board, side to move, castling rights and en passant target.
// The clocks are ignored.
func (p *Position) SamePosition(other *Position) bool {
	if p.Board != other.Board || p.ToMove != other.ToMove || p.Castling != other.Castling {
		return false
	}
	if p.EnPassant != other.EnPassant {
		return false
	}
	return !p.EnPassant || p.EPSquare == other.EPSquare
}

// KingSquare returns the square of colour's king.
func (p *Position) KingSquare(colour Colour) Square {
	return p.Board.KingSquare(colour)
}
