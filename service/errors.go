package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoFields is returned when a partial update carries no fields
	ErrNoFields = errors.New("at least one field must be set")

	// ErrInvalidField is returned when a rename targets an unknown field
	// or an argument value fails validation
	ErrInvalidField = errors.New("invalid field")

	// ErrPermission is returned when the caller lacks the capability or
	// ownership required for an operation
	ErrPermission = errors.New("permission denied")

	// ErrNotFound is returned when a referenced message or channel no
	// longer exists
	ErrNotFound = errors.New("not found")

	// ErrAlreadyPinned is returned when pinning a message that is pinned
	ErrAlreadyPinned = errors.New("message is already pinned")

	// ErrNotPinned is returned when unpinning a message that is not pinned
	ErrNotPinned = errors.New("message is not pinned")
)

// StorageError wraps a durable-store failure so callers can tell store
// faults apart from domain errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a storage failure of the named operation
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// FieldTooLongError is returned when a rename text exceeds the field's
// character limit. Checked before the rate window so an oversized edit
// never consumes the rate budget.
type FieldTooLongError struct {
	Field string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("a room %s is limited to %d characters", e.Field, e.Max)
}

// RateLimitedError is returned when a rename is blocked by the rate window.
// RetryAfter is the remaining wait, truncated to whole seconds for user
// display.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	minutes, seconds := e.MinutesSeconds()
	return fmt.Sprintf("rate limited, retry in %d minutes and %d seconds", minutes, seconds)
}

// MinutesSeconds splits the remaining wait into whole minutes and leftover
// seconds for user display
func (e *RateLimitedError) MinutesSeconds() (minutes, seconds int) {
	return int(e.RetryAfter.Minutes()), int(e.RetryAfter.Seconds()) % 60
}
