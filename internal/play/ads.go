package play

import (
	"context"
	"sync"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/google/uuid"
)

const (
	interstitialCooldown     = 90 * time.Second
	maxInterstitialsPerRun   = 2
	minRoundsBeforeFirstShow = 1
)

// EventSink records ad impressions; failures are best-effort.
type EventSink interface {
	Insert(ctx context.Context, event domain.AdEvent) error
}

// AdGate decides when an interstitial may be shown: a kill switch, a
// minimum number of rounds before the first one, a per-session cap, and a
// cooldown between impressions. It carries no ad-network integration.
type AdGate struct {
	mu        sync.Mutex
	enabled   bool
	rounds    int
	shown     int
	lastShown time.Time
	now       func() time.Time

	userID string
	sink   EventSink
	newID  func() string
}

func NewAdGate(userID string, sink EventSink) *AdGate {
	return &AdGate{
		enabled: true,
		now:     time.Now,
		userID:  userID,
		sink:    sink,
		newID:   uuid.NewString,
	}
}

// SetEnabled is the remote kill switch.
func (g *AdGate) SetEnabled(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = enabled
}

// RoundPlayed counts a completed round toward the first-interstitial threshold.
func (g *AdGate) RoundPlayed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rounds++
}

// CanShowInterstitial reports whether the cadence rules allow one now.
func (g *AdGate) CanShowInterstitial() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canShow()
}

func (g *AdGate) canShow() bool {
	if !g.enabled {
		return false
	}
	if g.rounds < minRoundsBeforeFirstShow {
		return false
	}
	if g.shown >= maxInterstitialsPerRun {
		return false
	}
	if !g.lastShown.IsZero() && g.now().Sub(g.lastShown) < interstitialCooldown {
		return false
	}
	return true
}

// RecordInterstitial claims an impression slot if the rules allow and
// records the event. The sink write is best-effort.
func (g *AdGate) RecordInterstitial(ctx context.Context, placement string) bool {
	g.mu.Lock()
	if !g.canShow() {
		g.mu.Unlock()
		return false
	}
	g.shown++
	g.lastShown = g.now()
	g.mu.Unlock()

	if g.sink != nil {
		_ = g.sink.Insert(ctx, domain.AdEvent{
			ID:        g.newID(),
			UserID:    g.userID,
			Type:      "interstitial",
			Placement: placement,
			Timestamp: g.now().UTC(),
		})
	}
	return true
}
