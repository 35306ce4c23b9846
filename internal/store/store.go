package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store is closed")

// Backend defines a minimal key-value persistence medium.
// Values are opaque bytes; a missing key is reported with found == false, not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error

	// Lifecycle
	Close() error
}
