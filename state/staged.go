package state

import (
	"context"
	"sync"
)

// StagedStore buffers writes over a base store until Commit. Reads see
// staged writes first and fall through to the base; Discard drops the
// staged writes without touching the base. This gives callers a
// transaction boundary over a store that has none: stage the writes of
// one call, then commit or discard depending on whether the call's
// side effects landed.
type StagedStore struct {
	mu     sync.Mutex
	base   Store
	writes map[string][]byte
	order  []string
}

// NewStagedStore creates an empty staging layer over base. The base
// store stays owned by the caller; Close here never closes it.
func NewStagedStore(base Store) *StagedStore {
	return &StagedStore{base: base, writes: make(map[string][]byte)}
}

func (s *StagedStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	if v, ok := s.writes[key]; ok {
		out := make([]byte, len(v))
		copy(out, v)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()
	return s.base.Get(ctx, key)
}

func (s *StagedStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.writes[key]; !ok {
		s.order = append(s.order, key)
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.writes[key] = v
	return nil
}

func (s *StagedStore) Has(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.writes[key]; ok {
		s.mu.Unlock()
		return true, nil
	}
	s.mu.Unlock()
	return s.base.Has(ctx, key)
}

func (s *StagedStore) Close() error { return nil }

// Commit flushes the staged writes to the base in first-write order and
// clears the stage.
func (s *StagedStore) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.order {
		if err := s.base.Set(ctx, key, s.writes[key]); err != nil {
			return err
		}
	}
	s.reset()
	return nil
}

// Discard drops the staged writes.
func (s *StagedStore) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *StagedStore) reset() {
	s.writes = make(map[string][]byte)
	s.order = nil
}
