package app

import (
	"context"
	"strings"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/google/uuid"
)

// RoundService validates and stores submitted round results.
type RoundService struct {
	rounds RoundStore
	feed   *Feed
	cache  LeaderboardInvalidator
	now    func() time.Time
	newID  func() string
}

func NewRoundService(rounds RoundStore, feed *Feed) *RoundService {
	return &RoundService{
		rounds: rounds,
		feed:   feed,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithCache registers a cache whose snapshots are dropped after each
// accepted submission.
func (s *RoundService) WithCache(cache LeaderboardInvalidator) *RoundService {
	s.cache = cache
	return s
}

// NewRoundServiceWithClock is test-only for deterministic timestamps and IDs.
func NewRoundServiceWithClock(rounds RoundStore, feed *Feed, now func() time.Time, newID func() string) *RoundService {
	return &RoundService{rounds: rounds, feed: feed, now: now, newID: newID}
}

// Submit re-validates a client-scored round and appends it. Bounds violations
// are rejected, never clamped.
func (s *RoundService) Submit(ctx context.Context, userID, mode string, score, correctCount int) (domain.Round, error) {
	normalizedMode := strings.ToLower(strings.TrimSpace(mode))
	if normalizedMode != "classic" && normalizedMode != "daily" {
		return domain.Round{}, domain.ErrInvalidMode
	}
	if correctCount < 0 || correctCount > domain.QuestionsPerRound {
		return domain.Round{}, domain.ErrCorrectCountOutOfRange
	}
	if score < 0 || score > domain.MaxRoundScore {
		return domain.Round{}, domain.ErrScoreOutOfRange
	}
	if score > correctCount*domain.MaxScorePerQuestion {
		return domain.Round{}, domain.ErrImpossibleScore
	}

	now := s.now().UTC()
	round := domain.Round{
		ID:           s.newID(),
		UserID:       userID,
		Mode:         normalizedMode,
		Score:        score,
		CorrectCount: correctCount,
		StartedAt:    now,
		EndedAt:      now,
	}
	if err := s.rounds.Insert(ctx, round); err != nil {
		return domain.Round{}, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.feed != nil {
		s.feed.Notify(ctx)
	}
	return round, nil
}
