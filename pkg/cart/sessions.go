package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sessions keeps one hydrated store per owner, all mirrored to the same storage.
type Sessions struct {
	mu       sync.Mutex
	storage  Storage
	log      *zap.Logger
	stores   map[string]*Store
	lastUsed map[string]time.Time
	now      func() time.Time
}

func NewSessions(storage Storage, log *zap.Logger) *Sessions {
	return &Sessions{
		storage:  storage,
		log:      orNop(log),
		stores:   map[string]*Store{},
		lastUsed: map[string]time.Time{},
		now:      time.Now,
	}
}

// For returns the cart of owner, loading it from storage on first use.
func (s *Sessions) For(owner string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed[owner] = s.now()
	if st, ok := s.stores[owner]; ok {
		return st
	}
	st := Open(s.storage, Key(owner), s.log)
	s.stores[owner] = st
	return st
}

// Forget drops the in-memory cart of owner once it is empty. A non-empty
// cart stays until Sweep finds it idle.
func (s *Sessions) Forget(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[owner]; ok && st.IsEmpty() {
		s.evict(owner)
	}
}

// Sweep drops every cart not used since idle ago and returns how many went.
// Storage keeps their lines, the next For hydrates them again.
func (s *Sessions) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for owner, at := range s.lastUsed {
		if at.Before(cutoff) {
			s.evict(owner)
			n++
		}
	}
	return n
}

// Run sweeps idle carts every interval until ctx ends.
func (s *Sessions) Run(ctx context.Context, interval, idle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(idle); n > 0 {
				s.log.Debug("idle carts dropped", zap.Int("count", n))
			}
		}
	}
}

// Len reports how many carts are held in memory.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}

func (s *Sessions) evict(owner string) {
	delete(s.stores, owner)
	delete(s.lastUsed, owner)
}
