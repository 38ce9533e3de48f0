// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"growguard/internal/errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for a key that was never set or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// Keys of the durable client state. Nothing else is persisted.
const (
	KeyAuthToken   = "authToken"
	KeyUserData    = "userData"
	KeyAppLanguage = "appLanguage"
)

// KeyValueStore is the durable storage behind the session and language stores.
// Writes are synchronous: a successful Set or Delete survives a restart.
type KeyValueStore interface {
	// Get returns the stored value or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value of key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}
