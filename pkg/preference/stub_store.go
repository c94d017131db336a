package preference

import (
	"context"
	"sync"
)

type StubStore struct {
	mu     sync.Mutex
	values map[string]string
	// Err, when set, is returned by every call.
	Err error
}

func NewStubStore() *StubStore {
	return &StubStore{values: map[string]string{}}
}

func (s *StubStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.Err != nil {
		return "", false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.values[key]
	return value, found, nil
}

func (s *StubStore) Set(_ context.Context, key string, value string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *StubStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
	s.Err = nil
}
