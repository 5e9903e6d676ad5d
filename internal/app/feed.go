package app

import (
	"context"
	"log"
	"sync"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// Feed pushes leaderboard snapshots to subscribers after each accepted
// submission. Subscribers pick a period; only periods somebody watches are
// recomputed. Slow subscribers have their stale snapshot dropped rather
// than blocking the broadcast.
type Feed struct {
	source LeaderboardSource

	mu          sync.Mutex
	subscribers map[string]map[chan []domain.LeaderboardEntry]struct{}
}

func NewFeed(source LeaderboardSource) *Feed {
	return &Feed{
		source:      source,
		subscribers: make(map[string]map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// Subscribe registers a listener for a period and delivers the current
// snapshot first. An unknown period fails with ErrInvalidPeriod from the
// source. The caller must invoke the returned cancel function to avoid leaks.
func (f *Feed) Subscribe(ctx context.Context, period string) (<-chan []domain.LeaderboardEntry, func(), error) {
	initial, err := f.source.Get(ctx, period)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []domain.LeaderboardEntry, 8)
	f.mu.Lock()
	if f.subscribers[period] == nil {
		f.subscribers[period] = make(map[chan []domain.LeaderboardEntry]struct{})
	}
	f.subscribers[period][ch] = struct{}{}
	f.mu.Unlock()

	ch <- initial

	cancel := func() {
		f.mu.Lock()
		if set, ok := f.subscribers[period]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(f.subscribers, period)
			}
		}
		f.mu.Unlock()
	}
	return ch, cancel, nil
}

// Notify recomputes the snapshot for every watched period and fans it out.
// A failed recompute is logged and skipped; subscribers keep their last
// snapshot.
func (f *Feed) Notify(ctx context.Context) {
	f.mu.Lock()
	periods := make([]string, 0, len(f.subscribers))
	for period := range f.subscribers {
		periods = append(periods, period)
	}
	f.mu.Unlock()

	for _, period := range periods {
		entries, err := f.source.Get(ctx, period)
		if err != nil {
			log.Printf("leaderboard feed refresh failed for %s: %v", period, err)
			continue
		}

		f.mu.Lock()
		for ch := range f.subscribers[period] {
			select {
			case ch <- entries:
			default:
				select {
				case <-ch:
				default:
				}
				ch <- entries
			}
		}
		f.mu.Unlock()
	}
}
