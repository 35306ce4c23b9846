package tasks

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no stored task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrBackendNil is returned by New when no backend is given.
	ErrBackendNil = errors.New("task backend is nil")
)

// StorageError wraps any failure to read, decode, encode or write the stored collection.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s tasks: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
