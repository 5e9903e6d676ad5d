package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// RoundStore is an in-memory implementation of app.RoundStore.
type RoundStore struct {
	mu     sync.RWMutex
	rounds []domain.Round
}

func NewRoundStore() *RoundStore {
	return &RoundStore{}
}

func (s *RoundStore) Insert(_ context.Context, round domain.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = append(s.rounds, round)
	return nil
}

func (s *RoundStore) ListSince(_ context.Context, since time.Time) ([]domain.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Round, 0, len(s.rounds))
	for _, r := range s.rounds {
		if since.IsZero() || !r.StartedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}
