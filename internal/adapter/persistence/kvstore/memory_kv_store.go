package kvstore

import (
	"context"
	"sync"

	"counter_billing/internal/usecase/interfaces"
)

// MemoryKeyValueStore is a process-local store. Data does not survive a
// restart; it backs tests and the default local run.
type MemoryKeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ interfaces.IKeyValueStore = (*MemoryKeyValueStore)(nil)

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{data: map[string]string{}}
}

func (s *MemoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryKeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryKeyValueStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
