package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// userLock carries a mutex plus a waiter count so idle entries can be dropped.
type userLock struct {
	mu      sync.Mutex
	waiters int
}

// Sequencer serializes update handling per user. Telebot dispatches every
// update in its own goroutine, so without this a fast double-tap on an inline
// button could interleave two handlers against the same dialogue session.
type Sequencer struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

// NewSequencer returns an empty per-user sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{locks: make(map[int64]*userLock)}
}

func (s *Sequencer) acquire(userID int64) *userLock {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.waiters++
	s.mu.Unlock()

	l.mu.Lock()
	return l
}

func (s *Sequencer) release(userID int64, l *userLock) {
	l.mu.Unlock()

	s.mu.Lock()
	l.waiters--
	if l.waiters == 0 {
		delete(s.locks, userID)
	}
	s.mu.Unlock()
}

// Do runs fn while holding the lock for userID.
func (s *Sequencer) Do(userID int64, fn func() error) error {
	l := s.acquire(userID)
	defer s.release(userID, l)
	return fn()
}

// Middleware wraps handlers so that updates for one user run strictly one at
// a time, in arrival order. Updates for different users proceed concurrently.
func (s *Sequencer) Middleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}
			return s.Do(user.ID, func() error {
				return next(c)
			})
		}
	}
}
