// Package storage provides a namespaced key-value capability with string-only
// values. Callers that can tolerate data loss use Namespace, which logs
// storage failures instead of propagating them.
package storage

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the raw key-value capability.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Namespace prefixes every key and converts storage errors into logged
// zero-value results, mirroring a browser localStorage contract.
type Namespace struct {
	store  Store
	prefix string
}

// NewNamespace wraps a store under the given key prefix.
func NewNamespace(store Store, prefix string) *Namespace {
	return &Namespace{store: store, prefix: prefix}
}

// Get returns the stored value and true, or "" and false when the key is
// absent or the store failed. Failures are logged, never raised.
func (n *Namespace) Get(ctx context.Context, key string) (string, bool) {
	v, err := n.store.GetItem(ctx, n.prefix+key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("storage read failed", "key", n.prefix+key, "error", err)
		}
		return "", false
	}
	return v, true
}

// Set stores a value, logging failures instead of raising them.
func (n *Namespace) Set(ctx context.Context, key, value string) {
	if err := n.store.SetItem(ctx, n.prefix+key, value); err != nil {
		slog.Warn("storage write failed", "key", n.prefix+key, "error", err)
	}
}

// Remove deletes a key, logging failures instead of raising them.
func (n *Namespace) Remove(ctx context.Context, key string) {
	if err := n.store.RemoveItem(ctx, n.prefix+key); err != nil {
		slog.Warn("storage delete failed", "key", n.prefix+key, "error", err)
	}
}
