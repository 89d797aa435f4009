package store

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure so callers never have to match on raw
// error message text themselves.
type Kind int

const (
	// KindInternal is any failure not covered by a more specific kind.
	KindInternal Kind = iota
	// KindConflict means the record violated a uniqueness constraint.
	KindConflict
	// KindUnavailable means the store could not be reached.
	KindUnavailable
)

// Error is returned when a store operation fails.
type Error struct {
	Kind Kind
	Msg  string
	Code string // backend error code when the response carried one
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s", e.Msg)
}

// KindOf returns the classification of err. Errors that did not
// originate from this package classify as KindInternal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
