// Package kv provides the durable key-value storage behind session snapshots.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("kv: not found")

// Store is a minimal key-value storage abstraction. Values are opaque
// byte slices; callers own serialization.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
