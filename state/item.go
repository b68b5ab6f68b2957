package state

import (
	"context"
	"encoding/json"
	"fmt"
)

// Item is a typed accessor for a single record. Values are stored as
// JSON; the store itself never interprets them.
type Item[T any] struct {
	key string
}

// NewItem creates an accessor for the given record key.
func NewItem[T any](key string) Item[T] {
	return Item[T]{key: key}
}

// Key returns the record key.
func (i Item[T]) Key() string { return i.key }

// Load reads the record. Absent records fail with ErrNotFound.
func (i Item[T]) Load(ctx context.Context, s Store) (T, error) {
	var v T
	b, err := s.Get(ctx, i.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode %q: %w", i.key, err)
	}
	return v, nil
}

// Save overwrites the record.
func (i Item[T]) Save(ctx context.Context, s Store, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", i.key, err)
	}
	return s.Set(ctx, i.key, b)
}

// BoolMap is a typed accessor for a keyed family of boolean flags, one
// record per key ever written.
type BoolMap struct {
	prefix string
}

// NewBoolMap creates an accessor with the given record key prefix.
func NewBoolMap(prefix string) BoolMap {
	return BoolMap{prefix: prefix}
}

func (m BoolMap) record(key string) string {
	return m.prefix + "/" + key
}

// Load reads one flag. A key never written fails with ErrNotFound;
// callers must not treat that as permission.
func (m BoolMap) Load(ctx context.Context, s Store, key string) (bool, error) {
	b, err := s.Get(ctx, m.record(key))
	if err != nil {
		return false, err
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return false, fmt.Errorf("decode %q: %w", m.record(key), err)
	}
	return v, nil
}

// Save overwrites one flag.
func (m BoolMap) Save(ctx context.Context, s Store, key string, v bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", m.record(key), err)
	}
	return s.Set(ctx, m.record(key), b)
}
