// Package hashing provides position keys and a repetition table for
// detecting recurring positions.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PositionTable counts how often each position has been seen. Positions are
// bucketed by Zobrist key and confirmed with SamePosition, so key collisions
// never merge distinct positions.
type PositionTable struct {
	// buckets stores the positions seen under each key
	buckets map[uint64][]*Occurrence
	// maxCount is the highest count of any position
	maxCount int
	// size is the number of distinct positions
	size int
}

// Occurrence is one distinct position and the number of times it was seen.
type Occurrence struct {
	// Position is a private copy taken when the position was first seen
	Position *chess.Position
	// Key is the Zobrist key of Position
	Key uint64
	// Count is the number of times the position has been observed
	Count int
}

// NewPositionTable creates an empty table.
func NewPositionTable() *PositionTable {
	return &PositionTable{
		buckets: make(map[uint64][]*Occurrence),
	}
}

// Observe records one more occurrence of pos and returns its updated count.
func (t *PositionTable) Observe(pos *chess.Position) int {
	key := Key(pos)
	if occ := t.find(key, pos); occ != nil {
		occ.Count++
		t.maxCount = max(t.maxCount, occ.Count)
		return occ.Count
	}

	t.buckets[key] = append(t.buckets[key], &Occurrence{
		Position: pos.Copy(),
		Key:      key,
		Count:    1,
	})
	t.size++
	t.maxCount = max(t.maxCount, 1)
	return 1
}

// Count returns how many times pos has been observed.
func (t *PositionTable) Count(pos *chess.Position) int {
	if occ := t.find(Key(pos), pos); occ != nil {
		return occ.Count
	}
	return 0
}

// MaxRepetitions returns the highest count of any observed position.
func (t *PositionTable) MaxRepetitions() int {
	return t.maxCount
}

// Len returns the number of distinct positions.
func (t *PositionTable) Len() int {
	return t.size
}

// Reset clears the table.
func (t *PositionTable) Reset() {
	t.buckets = make(map[uint64][]*Occurrence)
	t.maxCount = 0
	t.size = 0
}

// find returns the occurrence equal to pos in the bucket for key.
func (t *PositionTable) find(key uint64, pos *chess.Position) *Occurrence {
	for _, occ := range t.buckets[key] {
		if occ.Position.SamePosition(pos) {
			return occ
		}
	}
	return nil
}
