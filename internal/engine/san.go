package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Castling tokens.
const (
	KingsideCastleSAN  = "O-O"
	QueensideCastleSAN = "O-O-O"
)

// FormatMove writes m, played from before, in algebraic notation. promo is
// the piece type a promoting pawn becomes (Empty means queen) and is ignored
// for other moves. A "+" is appended when the move gives check and a "#"
// when it also leaves the opponent without a legal move.
//
// before is not modified.
func FormatMove(before *chess.Position, m chess.Move, promo chess.Piece) string {
	var sb strings.Builder

	piece := before.Board.At(m.From)
	kind := chess.ExtractPiece(piece)
	capture := IsCapture(before, m)

	switch {
	case kind == chess.King && IsCastling(before, m):
		if m.To.File == kingsideKingFile {
			sb.WriteString(KingsideCastleSAN)
		} else {
			sb.WriteString(QueensideCastleSAN)
		}
	case kind == chess.Pawn:
		if capture {
			sb.WriteByte(m.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if IsPromotion(before, m) {
			if !chess.IsPromotionPiece(promo) {
				promo = chess.Queen
			}
			sb.WriteByte('=')
			sb.WriteByte(promo.Letter())
		}
	default:
		sb.WriteByte(kind.Letter())
		if kind != chess.King {
			sb.WriteString(disambiguation(&before.Board, m, piece))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	sb.WriteString(checkSuffix(before, m, promo))
	return sb.String()
}

// checkSuffix plays m on a copy of before and reports "+", "#" or "".
func checkSuffix(before *chess.Position, m chess.Move, promo chess.Piece) string {
	after := before.Copy()
	MakeMove(after, m, PromoteTo(promo))
	if !InCheck(after, after.ToMove) {
		return ""
	}
	if HasLegalMoves(after) {
		return "+"
	}
	return "#"
}

// disambiguation returns the origin qualifier for a piece move. Other pieces
// of the same kind and colour that reach the destination by the attack
// geometry are candidates, whether or not moving them would be legal.
// A candidate on the mover's file selects the rank, one on the mover's rank
// selects the file, and any other arrangement uses both.
func disambiguation(board *chess.Board, m chess.Move, piece chess.Piece) string {
	var sameFile, sameRank, others bool
	for _, sq := range attackersOfKind(board, m.To, piece) {
		if sq == m.From {
			continue
		}
		others = true
		switch {
		case sq.File == m.From.File:
			sameFile = true
		case sq.Rank == m.From.Rank:
			sameRank = true
		}
	}

	switch {
	case !others:
		return ""
	case sameFile && !sameRank:
		return string(m.From.RankDigit())
	case sameRank && !sameFile:
		return string(m.From.FileLetter())
	default:
		return m.From.String()
	}
}

// attackersOfKind lists the squares holding piece that attack sq, using the
// same ray and jump scans as attack detection.
func attackersOfKind(board *chess.Board, sq chess.Square, piece chess.Piece) []chess.Square {
	var squares []chess.Square
	scanRays := func(dirs [4][2]int) {
		for _, dir := range dirs {
			if from, p := firstPieceOnRay(board, sq, dir); p == piece {
				squares = append(squares, from)
			}
		}
	}

	switch chess.ExtractPiece(piece) {
	case chess.Knight:
		for _, jump := range knightJumps {
			if from := sq.Offset(jump[0], jump[1]); board.At(from) == piece {
				squares = append(squares, from)
			}
		}
	case chess.Bishop:
		scanRays(diagonalDirs)
	case chess.Rook:
		scanRays(orthogonalDirs)
	case chess.Queen:
		scanRays(diagonalDirs)
		scanRays(orthogonalDirs)
	}
	return squares
}

// ParseSAN finds the legal move whose algebraic token matches text. Check
// and mate markers are optional in text. The promotion piece type is
// returned alongside the move (Empty when not a promotion).
func ParseSAN(pos *chess.Position, text string) (chess.Move, chess.Piece, bool) {
	want := trimCheckMarkers(text)
	for _, m := range LegalMoves(pos) {
		if IsPromotion(pos, m) {
			for _, promo := range chess.PromotionPieces {
				if trimCheckMarkers(FormatMove(pos, m, promo)) == want {
					return m, promo, true
				}
			}
			continue
		}
		if trimCheckMarkers(FormatMove(pos, m, chess.Empty)) == want {
			return m, chess.Empty, true
		}
	}
	return chess.Move{}, chess.Empty, false
}

func trimCheckMarkers(s string) string {
	return strings.TrimRight(s, "+#!?")
}
