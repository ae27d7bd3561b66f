package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrClosedWindow is returned when a write is attempted outside the
	// configured closing-time window.
	ErrClosedWindow = errors.New("entries can only be recorded during closing time")

	// ErrStaleSession is returned when the store already holds an entry from
	// a previous day. A new closing session has to be started first.
	ErrStaleSession = errors.New("cannot add entries for previous dates, start a new closing session")

	// ErrNotFound is returned when an id does not exist in a category.
	ErrNotFound = errors.New("entry not found")

	// ErrUnknownCategory is returned for table names outside the six categories.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("invalid entry")
)

// ValidationError reports a malformed or missing field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid entry: " + e.Reason
	}
	return fmt.Sprintf("invalid entry: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError wraps a failure of the underlying record store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
