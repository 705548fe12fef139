package chess

// Status is the outcome of evaluating a position for the end of the game.
// The numeric values double as process exit codes.
type Status int

const (
	Ongoing Status = iota
	WhiteWins
	BlackWins
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// Exit codes used by callers for failures that never reach the rules.
const (
	ExitInvalidFEN       = 7
	ExitInvalidArguments = 8
)

var statusNames = []string{
	"ongoing",
	"white wins",
	"black wins",
	"stalemate",
	"insufficient material",
	"fifty-move rule",
	"threefold repetition",
}

// String returns a human readable status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s != Ongoing
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, InsufficientMaterial, FiftyMoveRule, ThreefoldRepetition:
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status for s.
func (s Status) ExitCode() int {
	return int(s)
}

// Result returns the PGN result token.
func (s Status) Result() string {
	switch {
	case s == WhiteWins:
		return "1-0"
	case s == BlackWins:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinFor returns the winning status when colour has delivered mate.
func WinFor(colour Colour) Status {
	if colour == White {
		return WhiteWins
	}
	return BlackWins
}
