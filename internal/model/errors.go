package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Input errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidGameType = errors.New("invalid game type")
	ErrMismatchedCount = errors.New("mismatched counts")
	ErrDuplicatePlayer = errors.New("duplicate player in game")

	// Ledger errors
	ErrGameNotFound       = errors.New("game not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")

	// Storage errors. Retryable: the store guarantees no half-applied write
	// is left behind when it surfaces this.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidInputError reports an unusable user token (empty name, non-numeric
// rank or points). It carries the offending raw text for the user message.
type InvalidInputError struct {
	Raw string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %q", e.Raw)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidGameTypeError reports an unrecognized game type token. Unknown types
// are rejected here rather than silently scoring to zero.
type InvalidGameTypeError struct {
	Value string
}

func (e *InvalidGameTypeError) Error() string {
	return fmt.Sprintf("invalid game type %q: must be 'solo', 'team', or 'pair'", e.Value)
}

func (e *InvalidGameTypeError) Unwrap() error {
	return ErrInvalidGameType
}

// MismatchedCountError reports a players/ranks (or players/points) length
// mismatch. The message states both counts; it is a user error, not a crash.
type MismatchedCountError struct {
	Players int
	Values  int
	// What names the mismatched sequence, e.g. "ranks" or "points".
	What string
}

func (e *MismatchedCountError) Error() string {
	return fmt.Sprintf("got %d %s for %d players", e.Values, e.What, e.Players)
}

func (e *MismatchedCountError) Unwrap() error {
	return ErrMismatchedCount
}
