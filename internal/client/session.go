package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/SWiseG/QuizLoop/internal/play"
)

const syncDebounce = 250 * time.Millisecond

// Session is the single-user play loop: it owns the local profile, the life
// meter, and the debounced sync to the backend. The local profile is the
// source of truth; server calls that fail are absorbed.
type Session struct {
	client *Client
	lives  *play.LifeMeter
	gate   *play.AdGate
	syncer *Syncer

	mu      sync.Mutex
	profile domain.UserProfile
}

func NewSession(c *Client, userID string, adSink play.EventSink) *Session {
	s := &Session{
		client: c,
		lives:  play.NewLifeMeter(),
		gate:   play.NewAdGate(userID, adSink),
		profile: play.NormalizeProfile(domain.UserProfile{
			ID:        userID,
			CreatedAt: time.Now().UTC(),
			Locale:    "en-US",
		}),
	}
	s.syncer = NewSyncer(syncDebounce, s.syncOnce)
	return s
}

// Profile returns a copy of the local profile.
func (s *Session) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Lives exposes the life meter for UI countdowns.
func (s *Session) Lives() *play.LifeMeter {
	return s.lives
}

// AdGate exposes the interstitial cadence rules.
func (s *Session) AdGate() *play.AdGate {
	return s.gate
}

// StartRound consumes a life and fetches a fresh question set. Fetch
// failures are surfaced here: without questions there is no round to play.
func (s *Session) StartRound(ctx context.Context, mode string) (*play.Round, error) {
	if !s.lives.Use() {
		return nil, play.ErrNoLives
	}
	questions, err := s.client.Questions(ctx, mode, s.Profile().Locale, domain.QuestionsPerRound)
	if err != nil {
		s.lives.Add(1) // round never started
		return nil, err
	}
	return play.NewRound(questions)
}

// CompleteRound commits the outcome to the local ledger, submits the score,
// and schedules a profile sync. Submission failures are swallowed.
func (s *Session) CompleteRound(ctx context.Context, mode string, outcome play.Outcome) domain.UserProfile {
	s.mu.Lock()
	s.profile = play.ApplyRound(s.profile, outcome)
	updated := s.profile
	s.mu.Unlock()

	s.gate.RoundPlayed()

	if _, err := s.client.SubmitRound(ctx, mode, outcome.Score, outcome.CorrectCount); err != nil {
		log.Printf("score submit failed, keeping local state: %v", err)
	}
	s.syncer.Schedule()
	return updated
}

// Sync forces an immediate reconciliation, bypassing the debounce.
func (s *Session) Sync() {
	s.syncer.Flush()
}

// Close flushes outstanding work.
func (s *Session) Close() {
	s.syncer.Stop()
	s.syncer.Flush()
}

func (s *Session) syncOnce(ctx context.Context) error {
	local := s.Profile()
	merged, err := s.client.SyncProfile(ctx, app.SyncRequest{
		StreakCurrent: local.StreakCurrent,
		StreakBest:    local.StreakBest,
		TotalGames:    local.TotalGames,
		AccuracyPct:   local.AccuracyPct,
		Coins:         local.Coins,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Keep local totals when the server copy predates total tracking.
	if merged.TotalAnswered == 0 {
		merged.TotalAnswered = s.profile.TotalAnswered
		merged.TotalCorrect = s.profile.TotalCorrect
	}
	s.profile = play.NormalizeProfile(merged)
	return nil
}
