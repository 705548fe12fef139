package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys for pieces, castling, en passant and side to move.
var (
	zobristPiece     [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for colour := range zobristPiece {
		for piece := range zobristPiece[colour] {
			for sq := range zobristPiece[colour][piece] {
				zobristPiece[colour][piece][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Key returns the Zobrist key of pos. Positions that are equal under
// SamePosition share a key; the clocks do not contribute.
func Key(pos *chess.Position) uint64 {
	var key uint64

	pos.Board.Squares(func(sq chess.Square, piece chess.Piece) {
		colour := chess.ExtractColour(piece)
		key ^= zobristPiece[colour][chess.ExtractPiece(piece)][sq.Rank*chess.BoardSize+sq.File]
	})

	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[castlingIndex(pos.Castling)]

	if pos.EnPassant {
		key ^= zobristEnPassant[pos.EPSquare.File]
	}

	return key
}

// castlingIndex packs the four rights into 0-15.
func castlingIndex(c chess.CastlingRights) int {
	index := 0
	for i, right := range []bool{c.WhiteKingside, c.WhiteQueenside, c.BlackKingside, c.BlackQueenside} {
		if right {
			index |= 1 << i
		}
	}
	return index
}
