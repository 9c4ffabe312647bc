package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation that requires an existing
	// document targets an id that does not exist. GetByID does not use it;
	// absence there is a nil return, not an error.
	ErrNotFound = errors.New("document not found")

	// ErrNotFoundAfterUpdate signals a race: the document vanished between
	// the caller's intent and the conditional write (a concurrent delete).
	ErrNotFoundAfterUpdate = errors.New("document not found after update")

	// ErrConditionFailed signals a guarded write whose server-side condition
	// did not hold: an arithmetic update that would cross its floor, or the
	// document (or the targeted attribute) being gone.
	ErrConditionFailed = errors.New("condition failed")
)

// StoreError wraps an underlying transport/store failure with the collection
// and operation for diagnosability.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrapStore(op, collection string, err error) error {
	return &StoreError{Op: op, Collection: collection, Err: err}
}
