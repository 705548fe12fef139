package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Files involved in castling. Only the standard arrangement is supported.
const (
	kingHomeFile      = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
	kingsideKingFile  = 6
	queensideKingFile = 2
	kingsideRookDest  = 5
	queensideRookDest = 3
)

// castlingMoves adds the castling moves available to the king on from.
// The king's square, every square it crosses and its destination must be
// free of attack, and every square between king and rook must be empty.
func castlingMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	colour := pos.ToMove
	rank := chess.BackRank(colour)
	if from != chess.NewSquare(kingHomeFile, rank) {
		return moves
	}
	opponent := colour.Opposite()
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	board := &pos.Board

	empty := func(files ...int) bool {
		for _, f := range files {
			if board.At(chess.NewSquare(f, rank)) != chess.Empty {
				return false
			}
		}
		return true
	}
	safe := func(files ...int) bool {
		for _, f := range files {
			if isSquareAttacked(board, chess.NewSquare(f, rank), opponent) {
				return false
			}
		}
		return true
	}

	if pos.Castling.Kingside(colour) &&
		board.At(chess.NewSquare(kingsideRookFile, rank)) == rook &&
		empty(kingsideRookDest, kingsideKingFile) &&
		safe(kingHomeFile, kingsideRookDest, kingsideKingFile) {
		moves = append(moves, chess.Move{From: from, To: chess.NewSquare(kingsideKingFile, rank)})
	}
	if pos.Castling.Queenside(colour) &&
		board.At(chess.NewSquare(queensideRookFile, rank)) == rook &&
		empty(queensideRookFile+1, queensideKingFile, queensideRookDest) &&
		safe(kingHomeFile, queensideRookDest, queensideKingFile) {
		moves = append(moves, chess.Move{From: from, To: chess.NewSquare(queensideKingFile, rank)})
	}
	return moves
}

// IsCastling reports whether m is a castling move: a king moving two files
// from its home square.
func IsCastling(pos *chess.Position, m chess.Move) bool {
	piece := pos.Board.At(m.From)
	if chess.ExtractPiece(piece) != chess.King {
		return false
	}
	return isCastlingGeometry(chess.ExtractColour(piece), m)
}

func isCastlingGeometry(colour chess.Colour, m chess.Move) bool {
	rank := chess.BackRank(colour)
	return m.From == chess.NewSquare(kingHomeFile, rank) &&
		m.To.Rank == rank &&
		(m.To.File == kingsideKingFile || m.To.File == queensideKingFile)
}

// castlingRookSquares returns where the rook starts and ends for a castling
// king move landing on kingTo.
func castlingRookSquares(kingTo chess.Square) (from, to chess.Square) {
	if kingTo.File == kingsideKingFile {
		return chess.NewSquare(kingsideRookFile, kingTo.Rank), chess.NewSquare(kingsideRookDest, kingTo.Rank)
	}
	return chess.NewSquare(queensideRookFile, kingTo.Rank), chess.NewSquare(queensideRookDest, kingTo.Rank)
}

// revokeCornerRights clears the castling right tied to a rook corner when a
// piece leaves it or is captured on it.
func revokeCornerRights(rights *chess.CastlingRights, sq chess.Square) {
	switch sq {
	case chess.NewSquare(kingsideRookFile, chess.WhiteBackRank):
		rights.WhiteKingside = false
	case chess.NewSquare(queensideRookFile, chess.WhiteBackRank):
		rights.WhiteQueenside = false
	case chess.NewSquare(kingsideRookFile, chess.BlackBackRank):
		rights.BlackKingside = false
	case chess.NewSquare(queensideRookFile, chess.BlackBackRank):
		rights.BlackQueenside = false
	}
}
