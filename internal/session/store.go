package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	state   State
	touched time.Time
}

// Store is an in-memory session map keyed by Telegram user ID. Sessions are
// lost on restart; an idle timeout of zero disables eviction.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]entry

	idleTimeout time.Duration
	cancel      context.CancelFunc
	done        chan struct{}

	// now is swapped in tests.
	now func() time.Time
}

// NewStore builds a Store and, when idleTimeout is positive, starts a sweeper
// that drops sessions untouched for longer than the timeout.
func NewStore(idleTimeout time.Duration) *Store {
	s := &Store{
		sessions:    make(map[int64]entry),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
	if idleTimeout > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.done = make(chan struct{})
		go s.sweep(ctx)
	}
	return s
}

// Get returns the user's current dialogue state, or nil when no dialogue is
// active. Reading refreshes the idle clock.
func (s *Store) Get(userID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	e.touched = s.now()
	s.sessions[userID] = e
	return e.state
}

// Set stores the user's dialogue state, replacing any previous one.
func (s *Store) Set(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = entry{state: state, touched: s.now()}
}

// Delete ends the user's dialogue. Deleting an absent session is a no-op.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Active reports whether the user has a dialogue in progress.
func (s *Store) Active(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[userID]
	return ok
}

// Len returns the number of active dialogues.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the eviction sweeper, if one is running.
func (s *Store) Close() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Store) sweep(ctx context.Context) {
	defer close(s.done)
	interval := s.idleTimeout / 4
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.evictIdle()
		}
	}
}

func (s *Store) evictIdle() {
	cutoff := s.now().Add(-s.idleTimeout)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if e.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
