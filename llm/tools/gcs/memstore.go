package gcs

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory ObjectStore used by tests.
type MemStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

func memKey(bucket, object string) string {
	return bucket + "/" + object
}

func (s *MemStore) ReadObject(_ context.Context, bucket, object string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[memKey(bucket, object)]
	if !ok {
		return nil, fmt.Errorf("object %s/%s: %w", bucket, object, ErrNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemStore) WriteObject(_ context.Context, bucket, object string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[memKey(bucket, object)] = stored
	return nil
}
