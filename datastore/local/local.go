// Package local provides an in-memory datastore, mainly for testing purposes.
package local

import "sync"

type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), b...), true, nil
}

func (s *Store) Set(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so later changes to blob by the caller are not visible here
	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}
