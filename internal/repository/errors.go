package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a single-row read matches nothing.
var ErrNotFound = errors.New("record not found")

// StoreError wraps a failure of the underlying store: an unreachable
// database or a rejected query.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
