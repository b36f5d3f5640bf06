// Package store keeps recent run results in memory for the HTTP API.
package store

import (
	"context"
	"sync"
	"time"

	"energy-sim/internal/model"

	"github.com/google/uuid"
)

// DefaultTTL is how long a run stays retrievable after it is stored.
const DefaultTTL = time.Hour

type entry struct {
	result    *model.RunResult
	expiresAt time.Time
}

// RunStore is an in-memory TTL map of run results keyed by ID.
// Results are treated as immutable once stored.
type RunStore struct {
	mu    sync.RWMutex
	store map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

func New(ttl time.Duration) *RunStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RunStore{
		store: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores res and returns its new ID.
func (s *RunStore) Put(res *model.RunResult) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &entry{
		result:    res,
		expiresAt: s.now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *RunStore) Get(id string) (*model.RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.store[id]
	if !ok || s.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Len counts entries, including expired ones not yet swept.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *RunStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.store {
		if now.After(e.expiresAt) {
			delete(s.store, id)
			n++
		}
	}
	return n
}

// Cleanup sweeps every interval until ctx is done.
func (s *RunStore) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
