package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MockBlobStore is an in-memory implementation of BlobStore.
type MockBlobStore struct {
	blobs map[string][]byte
	mu    sync.RWMutex

	// SaveErr, when set, is returned by every Save call. Used by tests
	// to exercise the persistence-failure path.
	SaveErr error
}

// NewMockBlobStore creates a new instance of MockBlobStore.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		blobs: make(map[string][]byte),
	}
}

// Load reads the blob under key and unmarshals it into out.
func (s *MockBlobStore) Load(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

// Save marshals value and stores it under key.
func (s *MockBlobStore) Save(key string, value any) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode blob %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = data
	return nil
}

// Delete removes the blob under key.
func (s *MockBlobStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
