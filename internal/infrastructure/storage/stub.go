package storage

import (
	"context"
	"sync"
)

// Ensure StubObjectStorage implements ObjectStorage
var _ ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage keeps objects in memory. Used in development when no
// S3 credentials are configured, and in tests.
type StubObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// NewStubObjectStorage creates an empty in-memory store
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		objects: make(map[string][]byte),
		baseURL: "http://localhost/media",
	}
}

// Upload stores a copy of the data under the storage key
func (s *StubObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[storageKey] = buf
	return nil
}

// Delete removes the object; deleting a missing key is not an error
func (s *StubObjectStorage) Delete(ctx context.Context, storageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// PublicURL returns a fake public URL for the key
func (s *StubObjectStorage) PublicURL(storageKey string) string {
	return s.baseURL + "/" + storageKey
}

// Object returns the stored bytes for a key, for assertions in tests
func (s *StubObjectStorage) Object(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}
