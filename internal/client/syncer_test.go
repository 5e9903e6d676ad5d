package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSyncerCoalescesBursts(t *testing.T) {
	var runs atomic.Int32
	syncer := NewSyncer(30*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		syncer.Schedule()
		time.Sleep(5 * time.Millisecond)
	}

	deadline := time.Now().Add(time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// Allow a late duplicate to show up if the debounce were broken.
	time.Sleep(60 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Fatalf("expected one coalesced sync, got %d", got)
	}
}

func TestSyncerPendingTriggersExactlyOneRerun(t *testing.T) {
	var runs atomic.Int32
	release := make(chan struct{})
	syncer := NewSyncer(time.Hour, func(context.Context) error {
		if runs.Add(1) == 1 {
			<-release
		}
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		syncer.Flush()
	}()

	deadline := time.Now().Add(time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if runs.Load() != 1 {
		t.Fatal("first sync never started")
	}

	// Requests while in flight collapse into a single follow-up run.
	syncer.Flush()
	syncer.Flush()
	syncer.Flush()
	close(release)
	wg.Wait()

	time.Sleep(20 * time.Millisecond)
	if got := runs.Load(); got != 2 {
		t.Fatalf("expected exactly one rerun, got %d total runs", got)
	}
}

func TestSyncerStopCancelsPendingTimer(t *testing.T) {
	var runs atomic.Int32
	syncer := NewSyncer(20*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	syncer.Schedule()
	syncer.Stop()
	time.Sleep(60 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("expected no sync after Stop, got %d", got)
	}
}
