package memory

import (
	"context"
	"sync"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// ProfileStore is an in-memory implementation of app.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]domain.UserProfile)}
}

func (s *ProfileStore) Get(_ context.Context, userID string) (domain.UserProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	return profile, ok, nil
}

func (s *ProfileStore) Put(_ context.Context, profile domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
	return nil
}

// AdEventStore records ad impressions in memory, oldest first.
type AdEventStore struct {
	mu     sync.Mutex
	events []domain.AdEvent
}

func NewAdEventStore() *AdEventStore {
	return &AdEventStore{}
}

func (s *AdEventStore) Insert(_ context.Context, event domain.AdEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of the recorded events, oldest first.
func (s *AdEventStore) Events() []domain.AdEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AdEvent, len(s.events))
	copy(out, s.events)
	return out
}
