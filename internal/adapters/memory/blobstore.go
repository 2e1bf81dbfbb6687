// Package memory is a process-local BlobStore, used for tests and for
// running the server without any persistence.
package memory

import (
	"context"
	"sync"

	"github.com/csg33k/employee-register/internal/domain"
)

type BlobStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *BlobStore {
	return &BlobStore{data: make(map[string]string)}
}

func (s *BlobStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *BlobStore) Put(_ context.Context, entries ...domain.BlobEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.data[e.Key] = e.Value
	}
	return nil
}

func (s *BlobStore) Close() error { return nil }
