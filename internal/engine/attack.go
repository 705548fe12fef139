package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Step patterns shared by attack detection, move generation and notation.
var (
	orthogonalDirs = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalDirs   = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	knightJumps    = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps      = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// IsAttacked reports whether sq is attacked by a piece of colour by.
// Kings are not considered attackers; KingsAdjacent covers king contact.
func IsAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	return isSquareAttacked(&pos.Board, sq, by)
}

// InCheck returns true if the given colour's king is attacked.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return isSquareAttacked(&pos.Board, king, colour.Opposite())
}

// KingsAdjacent reports whether the two kings stand on neighbouring squares.
func KingsAdjacent(board *chess.Board) bool {
	w := board.KingSquare(chess.White)
	b := board.KingSquare(chess.Black)
	if w == chess.NoSquare || b == chess.NoSquare {
		return false
	}
	return abs(w.File-b.File) <= 1 && abs(w.Rank-b.Rank) <= 1
}

func isSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	return orthogonalAttack(board, sq, by) ||
		diagonalAttack(board, sq, by) ||
		knightAttack(board, sq, by) ||
		pawnAttack(board, sq, by)
}

// orthogonalAttack scans the four files and ranks for a rook or queen.
func orthogonalAttack(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	rook := chess.MakeColouredPiece(by, chess.Rook)
	queen := chess.MakeColouredPiece(by, chess.Queen)
	for _, dir := range orthogonalDirs {
		_, piece := firstPieceOnRay(board, sq, dir)
		if piece == rook || piece == queen {
			return true
		}
	}
	return false
}

// diagonalAttack scans the four diagonals for a bishop or queen.
func diagonalAttack(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	bishop := chess.MakeColouredPiece(by, chess.Bishop)
	queen := chess.MakeColouredPiece(by, chess.Queen)
	for _, dir := range diagonalDirs {
		_, piece := firstPieceOnRay(board, sq, dir)
		if piece == bishop || piece == queen {
			return true
		}
	}
	return false
}

func knightAttack(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	knight := chess.MakeColouredPiece(by, chess.Knight)
	for _, jump := range knightJumps {
		if board.At(sq.Offset(jump[0], jump[1])) == knight {
			return true
		}
	}
	return false
}

// pawnAttack looks for an attacking pawn on the two squares diagonally
// behind sq, seen from that pawn's direction of travel.
func pawnAttack(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	pawn := chess.MakeColouredPiece(by, chess.Pawn)
	behind := -chess.PawnDirection(by)
	return board.At(sq.Offset(-1, behind)) == pawn || board.At(sq.Offset(1, behind)) == pawn
}

// firstPieceOnRay walks from sq (exclusive) in direction dir and returns the
// first occupied square, or NoSquare and Empty when the edge is reached.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir [2]int) (chess.Square, chess.Piece) {
	for cur := sq.Offset(dir[0], dir[1]); cur.OnBoard(); cur = cur.Offset(dir[0], dir[1]) {
		if piece := board.At(cur); piece != chess.Empty {
			return cur, piece
		}
	}
	return chess.NoSquare, chess.Empty
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
