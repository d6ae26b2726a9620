package cart

import (
	"context"
	"sync"
	"time"
)

// Store keeps one cart per session in memory. Entries expire after the
// configured TTL measured from the last access.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

// NewStore builds a session store with the given idle TTL. A zero or
// negative TTL keeps carts until the process exits.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// With runs fn against the cart for the session, creating an empty cart on
// first use. The store lock is held for the duration of fn, so callers must
// not block inside it.
func (s *Store) With(sessionID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		e = &entry{cart: NewCart()}
		s.sessions[sessionID] = e
	}
	e.lastSeen = s.now()
	return fn(e.cart)
}

// Drop removes the session and its cart.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle longer than the TTL and returns how many were
// removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired sessions on the given interval until the
// context is cancelled.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	go func() {
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
	}()
}
