// Package state provides the key-value persistence layer behind the
// sale contract's configuration and counters. Stores hold opaque bytes;
// callers enforce all invariants. Typed access goes through Item and
// BoolMap.
package state

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound reports a key that was never written. For the contract
// this means mis-instantiation: required configuration is missing.
var ErrNotFound = errors.New("state: key not found")

// Store is a durable key-value store. Set is an idempotent overwrite;
// Get fails with ErrNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Has(ctx context.Context, key string) (bool, error)
	Close() error
}

// MemoryStore is an in-memory Store, used in tests and dry runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryStore) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.data[key]
	return ok, nil
}

func (m *MemoryStore) Close() error { return nil }
