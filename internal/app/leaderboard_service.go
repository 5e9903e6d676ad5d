package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

const leaderboardCap = 50

// LeaderboardService aggregates stored rounds into ranked entries per period.
type LeaderboardService struct {
	rounds RoundStore
	now    func() time.Time
}

func NewLeaderboardService(rounds RoundStore) *LeaderboardService {
	return &LeaderboardService{rounds: rounds, now: time.Now}
}

// NewLeaderboardServiceWithClock is test-only for deterministic windows.
func NewLeaderboardServiceWithClock(rounds RoundStore, now func() time.Time) *LeaderboardService {
	return &LeaderboardService{rounds: rounds, now: now}
}

// Get sums scores per user over the period's window, ranks by total score
// descending with ties broken by ascending user ID, and caps at 50 entries.
func (s *LeaderboardService) Get(ctx context.Context, period string) ([]domain.LeaderboardEntry, error) {
	since, err := s.windowStart(period)
	if err != nil {
		return nil, err
	}

	rounds, err := s.rounds.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		userID string
		score  int
		games  int
	}
	totals := make(map[string]*bucket)
	for _, r := range rounds {
		b, ok := totals[r.UserID]
		if !ok {
			b = &bucket{userID: r.UserID}
			totals[r.UserID] = b
		}
		b.score += r.Score
		b.games++
	}

	buckets := make([]*bucket, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].score != buckets[j].score {
			return buckets[i].score > buckets[j].score
		}
		return buckets[i].userID < buckets[j].userID
	})
	if len(buckets) > leaderboardCap {
		buckets = buckets[:leaderboardCap]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(buckets))
	for i, b := range buckets {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      b.userID,
			TotalScore:  b.score,
			GamesPlayed: b.games,
		})
	}
	return entries, nil
}

// windowStart maps a period to the inclusive lower bound on StartedAt.
// A zero time means no filter.
func (s *LeaderboardService) windowStart(period string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "daily":
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	case "weekly":
		return s.now().UTC().AddDate(0, 0, -7), nil
	case "alltime":
		return time.Time{}, nil
	default:
		return time.Time{}, domain.ErrInvalidPeriod
	}
}
