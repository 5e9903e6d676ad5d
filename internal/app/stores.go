package app

import (
	"context"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// QuestionStore abstracts how the question bank is persisted (in-memory, Postgres).
type QuestionStore interface {
	All(ctx context.Context) ([]domain.Question, error)
	Seed(ctx context.Context, questions []domain.Question) error
	Empty(ctx context.Context) (bool, error)
}

// RoundStore persists append-only round results.
type RoundStore interface {
	Insert(ctx context.Context, round domain.Round) error
	// ListSince returns rounds with StartedAt >= since. A zero since means no filter.
	ListSince(ctx context.Context, since time.Time) ([]domain.Round, error)
}

// ProfileStore persists user profiles keyed by the auth subject.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (domain.UserProfile, bool, error)
	Put(ctx context.Context, profile domain.UserProfile) error
}

// LeaderboardSource produces ranked entries for a period. The aggregator
// implements it directly; the Redis cache wraps another source.
type LeaderboardSource interface {
	Get(ctx context.Context, period string) ([]domain.LeaderboardEntry, error)
}

// LeaderboardInvalidator drops cached snapshots after a submission.
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context)
}
