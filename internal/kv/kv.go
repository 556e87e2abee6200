// Package kv abstracts the shared key-addressed store the registry is built
// on. The contract is deliberately thin: byte-oriented get/set by string key,
// no transactions, no listing, no compare-and-swap. Every read reflects some
// prior committed write, not necessarily the most recent one from another
// session.
package kv

import (
	"context"
	"errors"
)

// ErrStoreUnreachable is returned by backends when the underlying store
// cannot be reached. The registry maps it to its own taxonomy.
var ErrStoreUnreachable = errors.New("store unreachable")

// Store is the adapter every backend implements.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent. Absence is not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Available probes the backend. A non-nil error means the store is
	// unreachable and a synchronization pass should abort early.
	Available(ctx context.Context) error

	Close() error
}
