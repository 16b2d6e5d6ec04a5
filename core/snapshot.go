package core

import (
	"context"
	"errors"
)

// Durable slot keys, one per persisted collection. The names predate this
// server; browser clients that migrated from localStorage keep working
// against the same layout.
const (
	KeyGallery  = "lashStoreGallery"
	KeyBlog     = "lashStoreBlog"
	KeyBookings = "lashStoreBookings"
)

// ErrKeyNotFound is returned by SnapshotStore.Get when the slot has never
// been written.
var ErrKeyNotFound = errors.New("snapshot key not found")

// SnapshotStore is the durable key-value slot behind the persistence
// gateway. Each key holds one JSON-serialized collection; keys are written
// independently with no transactionality across them.
type SnapshotStore interface {
	// Get returns the payload stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the payload stored under key.
	Put(ctx context.Context, key string, data []byte) error

	// Close releases any resources held by the backend.
	Close() error
}
