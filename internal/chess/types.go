// Package chess provides core chess types for the rules engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// Symbol returns the FEN letter of a coloured piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func Symbol(colouredPiece Piece) byte {
	if colouredPiece == Empty {
		return '.'
	}
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromSymbol converts a FEN letter into a coloured piece.
func PieceFromSymbol(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var piece Piece
	switch c {
	case 'P':
		piece = Pawn
	case 'N':
		piece = Knight
	case 'B':
		piece = Bishop
	case 'R':
		piece = Rook
	case 'Q':
		piece = Queen
	case 'K':
		piece = King
	default:
		return Empty, false
	}
	return MakeColouredPiece(colour, piece), true
}

// PromotionPieces are the piece types a pawn may promote to.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// IsPromotionPiece reports whether piece is a legal promotion choice.
func IsPromotionPiece(piece Piece) bool {
	switch piece {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Board dimensions and the rank indices that matter to the rules.
// Rank index 0 is the eighth rank, index 7 the first.
const (
	BoardSize = 8

	WhiteBackRank = 7
	BlackBackRank = 0
	WhitePawnRank = 6
	BlackPawnRank = 1
)

// PawnDirection returns the rank step of a pawn advance for colour.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// BackRank returns the rank index holding colour's king and rooks at the start.
func BackRank(colour Colour) int {
	if colour == White {
		return WhiteBackRank
	}
	return BlackBackRank
}

// PawnRank returns the rank index colour's pawns start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}

// PromotionRank returns the farthest rank index for colour's pawns.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}
