package chess

// Board holds the 64 squares in rank-major order: Board[rank][file].
type Board [BoardSize][BoardSize]Piece

// At returns the piece on sq, or Empty when sq is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b[sq.Rank][sq.File]
}

// Set places a piece on sq.
func (b *Board) Set(sq Square, piece Piece) {
	b[sq.Rank][sq.File] = piece
}

// KingSquare returns the square of colour's king, or NoSquare if absent.
func (b *Board) KingSquare(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file] == king {
				return Square{File: file, Rank: rank}
			}
		}
	}
	return NoSquare
}

// Squares calls fn for every occupied square, rank 8 first.
func (b *Board) Squares(fn func(sq Square, piece Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b[rank][file]; p != Empty {
				fn(Square{File: file, Rank: rank}, p)
			}
		}
	}
}
