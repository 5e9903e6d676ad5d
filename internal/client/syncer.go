package client

import (
	"context"
	"log"
	"sync"
	"time"
)

// Syncer debounces profile sync requests: bursts of local updates coalesce
// into one outbound call shortly after the last change. A request arriving
// while a sync is in flight sets a pending flag that triggers exactly one
// more run after the current one completes; failures are absorbed and local
// state stays authoritative until the next successful sync.
type Syncer struct {
	delay time.Duration
	run   func(ctx context.Context) error

	mu       sync.Mutex
	timer    *time.Timer
	inFlight bool
	pending  bool
}

func NewSyncer(delay time.Duration, run func(ctx context.Context) error) *Syncer {
	return &Syncer{delay: delay, run: run}
}

// Schedule requests a sync after the debounce delay, resetting any timer
// already pending.
func (s *Syncer) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush runs a sync immediately, bypassing the debounce. Used on shutdown
// and in tests.
func (s *Syncer) Flush() {
	s.fire()
}

// Stop cancels any pending timer. In-flight syncs finish on their own.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Syncer) fire() {
	s.mu.Lock()
	if s.inFlight {
		s.pending = true
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	if err := s.run(context.Background()); err != nil {
		// Local state remains the source of truth; the next change retries.
		log.Printf("profile sync failed, keeping local state: %v", err)
	}

	s.mu.Lock()
	s.inFlight = false
	rerun := s.pending
	s.pending = false
	s.mu.Unlock()

	if rerun {
		s.fire()
	}
}
