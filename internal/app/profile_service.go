package app

import (
	"context"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

const defaultProfileLocale = "en-US"

// SyncRequest is the partial profile a client submits on sync.
type SyncRequest struct {
	StreakCurrent int `json:"streakCurrent"`
	StreakBest    int `json:"streakBest"`
	TotalGames    int `json:"totalGames"`
	AccuracyPct   int `json:"accuracyPct"`
	Coins         int `json:"coins"`
}

// ProfileService owns server-side profile state: lazy creation on first
// contact and reconciliation against client-cached copies.
type ProfileService struct {
	profiles ProfileStore
	now      func() time.Time
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

// NewProfileServiceWithClock is test-only for deterministic creation times.
func NewProfileServiceWithClock(profiles ProfileStore, now func() time.Time) *ProfileService {
	return &ProfileService{profiles: profiles, now: now}
}

// GetOrCreate fetches the stored profile, creating a default one on first contact.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID string) (domain.UserProfile, error) {
	profile, ok, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if ok {
		return profile, nil
	}
	profile = domain.UserProfile{
		ID:        userID,
		CreatedAt: s.now().UTC(),
		Locale:    defaultProfileLocale,
	}
	if err := s.profiles.Put(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// Sync merges a client-submitted partial profile into the stored one and
// persists the result as a single write.
func (s *ProfileService) Sync(ctx context.Context, userID string, req SyncRequest) (domain.UserProfile, error) {
	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	merged := Merge(profile, req)
	if err := s.profiles.Put(ctx, merged); err != nil {
		return domain.UserProfile{}, err
	}
	return merged, nil
}

// Merge applies the reconciliation policy: field-wise maximum for the
// monotonically tracked fields, last-write-wins for streakCurrent (the
// server does not know live session state) and accuracyPct.
func Merge(server domain.UserProfile, client SyncRequest) domain.UserProfile {
	server.StreakCurrent = client.StreakCurrent
	server.StreakBest = maxInt(server.StreakBest, client.StreakBest)
	server.TotalGames = maxInt(server.TotalGames, client.TotalGames)
	server.AccuracyPct = client.AccuracyPct
	server.Coins = maxInt(server.Coins, client.Coins)
	return server
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
