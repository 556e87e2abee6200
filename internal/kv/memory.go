package kv

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store used in tests and offline demos.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// Down simulates an unreachable backend when set.
	Down bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.Down {
		return nil, ErrStoreUnreachable
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if s.Down {
		return ErrStoreUnreachable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Available(ctx context.Context) error {
	if s.Down {
		return ErrStoreUnreachable
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Len reports the number of stored keys. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
