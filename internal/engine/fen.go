// Package engine implements the chess rules: FEN parsing and writing, attack
// detection, legal move generation, move application, game status and
// algebraic move notation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingTokens lists every castling field a FEN string may carry.
var castlingTokens = []string{
	"-",
	"K", "Q", "k", "q",
	"KQ", "Kk", "Kq", "Qk", "Qq", "kq",
	"KQk", "KQq", "Kkq", "Qkq",
	"KQkq",
}

// ParseFEN parses and validates a FEN string. No Position is returned unless
// every field is well formed and the side that just moved is not in check.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 6 {
		return nil, &errors.FENError{
			Field:  "fields",
			Value:  fen,
			Reason: fmt.Sprintf("expected 6 space-separated fields, got %d", len(parts)),
		}
	}

	pos := &chess.Position{}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(&pos.Board); err != nil {
		return nil, err
	}
	if err := checkPawnRanks(&pos.Board); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4], parts[5]); err != nil {
		return nil, err
	}

	pos.Material = chess.CountMaterial(&pos.Board)

	if InCheck(pos, pos.ToMove.Opposite()) {
		return nil, &errors.FENError{
			Field:  "side",
			Value:  parts[1],
			Reason: fmt.Sprintf("%v is in check but it is not their move", pos.ToMove.Opposite()),
		}
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{
			Field:  "board",
			Value:  positions,
			Reason: fmt.Sprintf("expected 8 ranks, got %d", len(ranks)),
		}
	}

	for rank, text := range ranks {
		file := 0
		lastWasDigit := false
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case c >= '1' && c <= '8':
				if lastWasDigit {
					return &errors.FENError{Field: "board", Value: text, Reason: "consecutive digits"}
				}
				lastWasDigit = true
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromSymbol(c)
				if !ok {
					return &errors.FENError{Field: "board", Value: text, Reason: fmt.Sprintf("invalid character %q", c)}
				}
				lastWasDigit = false
				if file >= chess.BoardSize {
					return &errors.FENError{Field: "board", Value: text, Reason: "rank describes more than 8 squares"}
				}
				board.Set(chess.NewSquare(file, rank), piece)
				file++
			}
		}
		if file != chess.BoardSize {
			return &errors.FENError{
				Field:  "board",
				Value:  text,
				Reason: fmt.Sprintf("rank describes %d squares, want 8", file),
			}
		}
	}
	return nil
}

// checkKings requires one king per side, not standing next to each other.
func checkKings(board *chess.Board) error {
	counts := map[chess.Piece]int{}
	board.Squares(func(_ chess.Square, piece chess.Piece) {
		if chess.ExtractPiece(piece) == chess.King {
			counts[piece]++
		}
	})
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := counts[chess.MakeColouredPiece(colour, chess.King)]; n != 1 {
			return &errors.FENError{
				Field:  "board",
				Reason: fmt.Sprintf("%v has %d kings, want exactly 1", colour, n),
			}
		}
	}
	if KingsAdjacent(board) {
		return &errors.FENError{Field: "board", Reason: "kings are adjacent"}
	}
	return nil
}

// checkPawnRanks rejects pawns standing on the first or eighth rank.
func checkPawnRanks(board *chess.Board) error {
	for _, rank := range []int{chess.BlackBackRank, chess.WhiteBackRank} {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			if chess.ExtractPiece(board.At(sq)) == chess.Pawn {
				return &errors.FENError{Field: "board", Value: sq.String(), Reason: "pawn on a back rank"}
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.FENError{Field: "side", Value: side, Reason: "must be w or b"}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Each right
// requires the king and the matching rook on their home squares.
func parseCastlingRights(pos *chess.Position, field string) error {
	if !slices.Contains(castlingTokens, field) {
		return &errors.FENError{Field: "castling", Value: field, Reason: "not a valid combination"}
	}

	for _, c := range field {
		var colour chess.Colour
		var rookFile int
		switch c {
		case '-':
			return nil
		case 'K':
			colour, rookFile = chess.White, 7
			pos.Castling.WhiteKingside = true
		case 'Q':
			colour, rookFile = chess.White, 0
			pos.Castling.WhiteQueenside = true
		case 'k':
			colour, rookFile = chess.Black, 7
			pos.Castling.BlackKingside = true
		case 'q':
			colour, rookFile = chess.Black, 0
			pos.Castling.BlackQueenside = true
		}

		rank := chess.BackRank(colour)
		if pos.Board.At(chess.NewSquare(kingHomeFile, rank)) != chess.MakeColouredPiece(colour, chess.King) {
			return &errors.FENError{Field: "castling", Value: field, Reason: fmt.Sprintf("%v king is not on its home square", colour)}
		}
		rookSq := chess.NewSquare(rookFile, rank)
		if pos.Board.At(rookSq) != chess.MakeColouredPiece(colour, chess.Rook) {
			return &errors.FENError{Field: "castling", Value: field, Reason: fmt.Sprintf("no %v rook on %v", colour, rookSq)}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// sit on the third rank of the side that just moved, be empty, and have that
// side's pawn directly in front of it.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = false
	pos.EPSquare = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(field)
	if !ok {
		return &errors.FENError{Field: "en passant", Value: field, Reason: "not a square"}
	}

	mover := pos.ToMove.Opposite()
	dir := chess.PawnDirection(mover)
	if sq.Rank != chess.PawnRank(mover)+dir {
		return &errors.FENError{Field: "en passant", Value: field, Reason: "wrong rank for the side to move"}
	}
	if pos.Board.At(sq) != chess.Empty {
		return &errors.FENError{Field: "en passant", Value: field, Reason: "target square is occupied"}
	}
	if pos.Board.At(sq.Offset(0, dir)) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return &errors.FENError{Field: "en passant", Value: field, Reason: "no pawn in front of the target square"}
	}

	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	h, err := parseCounter(halfmove)
	if err != nil {
		return &errors.FENError{Field: "halfmove", Value: halfmove, Reason: "must be a non-negative integer"}
	}
	f, err := parseCounter(fullmove)
	if err != nil || f == 0 {
		return &errors.FENError{Field: "fullmove", Value: fullmove, Reason: "must be a positive integer"}
	}
	pos.HalfmoveClock = uint(h)
	pos.MoveNumber = uint(f)
	return nil
}

// parseCounter accepts plain decimal digits without sign or leading zeros,
// so that writing the value back reproduces the input.
func parseCounter(s string) (uint64, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, errors.ErrInvalidFEN
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.ErrInvalidFEN
		}
	}
	return strconv.ParseUint(s, 10, 32)
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.Symbol(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.EnPassant {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *chess.Position {
	pos, _ := ParseFEN(InitialFEN)
	return pos
}
