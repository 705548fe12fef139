package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LegalMoves returns every legal move for the side to move, ordered by
// origin square then destination square (a8 first, h1 last).
//
// Each pseudo-legal candidate is tried on pos with MakeMove and reverted with
// UnmakeMove, so pos must not be shared with another goroutine during the call.
func LegalMoves(pos *chess.Position) []chess.Move {
	candidates := pseudoLegalMoves(pos)
	legal := candidates[:0]
	for _, m := range candidates {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	slices.SortFunc(legal, compareMoves)
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range pseudoLegalMoves(pos) {
		if leavesKingSafe(pos, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of the legal moves in pos. The en passant
// flag of m is ignored; see ResolveMove.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	_, ok := ResolveMove(pos, m)
	return ok
}

// ResolveMove finds the legal move with the same origin and destination as
// m, filling in the en passant flag.
func ResolveMove(pos *chess.Position, m chess.Move) (chess.Move, bool) {
	for _, legal := range LegalMoves(pos) {
		if legal.SameSquares(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// leavesKingSafe tries m and reports whether the mover's king is not
// attacked afterwards and the kings are not adjacent.
func leavesKingSafe(pos *chess.Position, m chess.Move) bool {
	mover := pos.ToMove
	undo := MakeMove(pos, m, nil)
	safe := !InCheck(pos, mover) && !KingsAdjacent(&pos.Board)
	UnmakeMove(pos, m, undo)
	return safe
}

// pseudoLegalMoves enumerates moves that obey piece geometry, ignoring the
// safety of the mover's king. Castling preconditions are checked in full.
func pseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	mover := pos.ToMove
	pos.Board.Squares(func(from chess.Square, piece chess.Piece) {
		if chess.ExtractColour(piece) != mover {
			return
		}
		switch chess.ExtractPiece(piece) {
		case chess.Pawn:
			moves = pawnMoves(pos, from, moves)
		case chess.Knight:
			moves = stepMoves(pos, from, knightJumps[:], moves)
		case chess.Bishop:
			moves = slidingMoves(pos, from, diagonalDirs[:], moves)
		case chess.Rook:
			moves = slidingMoves(pos, from, orthogonalDirs[:], moves)
		case chess.Queen:
			moves = slidingMoves(pos, from, diagonalDirs[:], moves)
			moves = slidingMoves(pos, from, orthogonalDirs[:], moves)
		case chess.King:
			moves = stepMoves(pos, from, kingSteps[:], moves)
			moves = castlingMoves(pos, from, moves)
		}
	})
	return moves
}

// canLandOn reports whether a piece of colour mover may end on sq.
func canLandOn(board *chess.Board, sq chess.Square, mover chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	target := board.At(sq)
	return target == chess.Empty || chess.ExtractColour(target) != mover
}

// stepMoves generates single jumps (knight and king).
func stepMoves(pos *chess.Position, from chess.Square, steps [][2]int, moves []chess.Move) []chess.Move {
	for _, step := range steps {
		to := from.Offset(step[0], step[1])
		if canLandOn(&pos.Board, to, pos.ToMove) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slidingMoves walks each ray until it leaves the board or meets a piece,
// which ends the ray and is included when it can be captured.
func slidingMoves(pos *chess.Position, from chess.Square, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := pos.Board.At(to)
			if target == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to})
				continue
			}
			if chess.ExtractColour(target) != pos.ToMove {
				moves = append(moves, chess.Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// pawnMoves generates advances, captures and the en passant capture.
func pawnMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	mover := pos.ToMove
	dir := chess.PawnDirection(mover)

	one := from.Offset(0, dir)
	if one.OnBoard() && pos.Board.At(one) == chess.Empty {
		moves = append(moves, chess.Move{From: from, To: one})
		two := one.Offset(0, dir)
		if from.Rank == chess.PawnRank(mover) && pos.Board.At(two) == chess.Empty {
			moves = append(moves, chess.Move{From: from, To: two})
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := pos.Board.At(to)
		switch {
		case target != chess.Empty && chess.ExtractColour(target) != mover:
			moves = append(moves, chess.Move{From: from, To: to})
		case target == chess.Empty && pos.EnPassant && to == pos.EPSquare:
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

// IsPromotion reports whether m moves a pawn onto its farthest rank.
func IsPromotion(pos *chess.Position, m chess.Move) bool {
	piece := pos.Board.At(m.From)
	if chess.ExtractPiece(piece) != chess.Pawn {
		return false
	}
	return m.To.Rank == chess.PromotionRank(chess.ExtractColour(piece))
}

// IsCapture reports whether m removes an enemy piece.
func IsCapture(pos *chess.Position, m chess.Move) bool {
	return m.EnPassant || pos.Board.At(m.To) != chess.Empty
}

func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

func compareMoves(a, b chess.Move) int {
	if d := squareIndex(a.From) - squareIndex(b.From); d != 0 {
		return d
	}
	return squareIndex(a.To) - squareIndex(b.To)
}
