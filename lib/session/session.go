// Package session persists the credentials of a logged in dashboard user
// between runs.
package session

import (
	"context"
	"sync"
	"time"
)

type Credentials struct {
	Token    string
	Username string
	SavedAt  time.Time
}

// Store is where the bearer token and username live between runs.
// Get reports found=false (and no error) when nothing is stored.
type Store interface {
	Get(ctx context.Context) (creds Credentials, found bool, err error)
	Set(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps credentials for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	creds *Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return Credentials{}, false, nil
	}
	return *s.creds, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}
