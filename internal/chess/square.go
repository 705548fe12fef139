package chess

// Square is a board coordinate. File 0 is the a-file; Rank 0 is the
// eighth rank, so rank indices grow towards White's side of the board.
type Square struct {
	File int
	Rank int
}

// NoSquare is the zero-information square used when none applies.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare returns the square at the given file and rank indices.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return Square{File: int(s[0] - 'a'), Rank: int('8' - s[1])}, true
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr rank indices away.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// IsLight reports whether the square is a light square (a8 and h1 are light).
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 0
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte('a' + s.File)
}

// RankDigit returns '1'..'8'.
func (s Square) RankDigit() byte {
	return byte('8' - s.Rank)
}

// String returns the algebraic name of the square, or "-" when off board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}
