package storage

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/moviez/pkg/storage Storage

var ErrNotFound = errors.New("not found in storage")

// Storage is durable key/value storage for client state such as the wishlist.
// Values are opaque documents; writers to the same key are not coordinated,
// the last write wins.
type Storage interface {
	// Get returns ErrNotFound when no value is stored under key
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by the storage configuration
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)
