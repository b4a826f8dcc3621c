package middleware

import (
	"sync"
	"testing"
)

func TestSequencerSerializesSameUser(t *testing.T) {
	s := NewSequencer()

	const rounds = 200
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(7, func() error {
				// Unsynchronized increment; the sequencer is the only guard.
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != rounds {
		t.Fatalf("counter = %d, want %d", counter, rounds)
	}
}

func TestSequencerIndependentUsers(t *testing.T) {
	s := NewSequencer()

	blockerEntered := make(chan struct{})
	releaseBlocker := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = s.Do(1, func() error {
			close(blockerEntered)
			<-releaseBlocker
			return nil
		})
	}()
	<-blockerEntered

	go func() {
		_ = s.Do(2, func() error { return nil })
		close(done)
	}()

	// User 2 must not wait behind user 1.
	<-done
	close(releaseBlocker)
}

func TestSequencerDropsIdleLocks(t *testing.T) {
	s := NewSequencer()
	_ = s.Do(5, func() error { return nil })

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.locks) != 0 {
		t.Fatalf("expected empty lock table, got %d entries", len(s.locks))
	}
}
