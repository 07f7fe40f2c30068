// Package database provides key-value blob persistence for client state.
//
// Each record is a single serialized blob written with full-overwrite
// semantics: the last Save for a key wins.
package database

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// BlobStore defines the interface for persisting named blobs.
type BlobStore interface {
	// Load returns the blob stored under key. found is false when nothing
	// has been stored yet.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Close releases the underlying resources
	Close() error
}
