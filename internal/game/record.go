package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Entry is one position of a game and the number of times that position
// had occurred, this time included, when it was reached.
type Entry struct {
	Position *chess.Position
	Count    int
}

// Record is the ordered history of positions at the start of each ply.
// It satisfies engine.Repetitions.
type Record struct {
	entries []Entry
	table   *hashing.PositionTable
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{table: hashing.NewPositionTable()}
}

// Observe appends pos, which must be the position at the start of a ply,
// and returns how many times it has now occurred. pos is copied.
func (r *Record) Observe(pos *chess.Position) int {
	count := r.table.Observe(pos)
	r.entries = append(r.entries, Entry{Position: pos.Copy(), Count: count})
	return count
}

// Count returns how many times pos has occurred so far.
func (r *Record) Count(pos *chess.Position) int {
	return r.table.Count(pos)
}

// MaxRepetitions returns the highest occurrence count of any position.
func (r *Record) MaxRepetitions() int {
	return r.table.MaxRepetitions()
}

// Len returns the number of recorded plies.
func (r *Record) Len() int {
	return len(r.entries)
}

// Entries returns the recorded positions in order. The slice must not be
// modified.
func (r *Record) Entries() []Entry {
	return r.entries
}
