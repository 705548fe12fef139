// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMove indicates move text that could not be read at all.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrInvalidPromotion indicates a promotion choice other than N, B, R or Q.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move was offered after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError describes which FEN field failed validation and why.
// It always unwraps to ErrInvalidFEN.
type FENError struct {
	Field  string // "board", "side", "castling", "en passant", "halfmove", "fullmove", "fields"
	Value  string // The offending text (may be empty)
	Reason string
}

// Error returns the formatted message.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		return ErrInvalidFEN.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidFEN, strings.Join(parts, ": "))
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// MoveError wraps a move failure with the ply and text at which it happened.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
