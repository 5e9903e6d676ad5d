package play

import (
	"context"
	"testing"
	"time"

	"github.com/SWiseG/QuizLoop/internal/infra/memory"
)

func newTestAdGate(sink EventSink, now func() time.Time) *AdGate {
	gate := NewAdGate("u-ads", sink)
	gate.now = now
	return gate
}

func TestAdGateRequiresOneRoundFirst(t *testing.T) {
	gate := newTestAdGate(nil, time.Now)

	if gate.CanShowInterstitial() {
		t.Fatal("expected no interstitial before any round")
	}
	gate.RoundPlayed()
	if !gate.CanShowInterstitial() {
		t.Fatal("expected interstitial allowed after first round")
	}
}

func TestAdGateCooldownAndSessionCap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sink := memory.NewAdEventStore()
	gate := newTestAdGate(sink, func() time.Time { return now })
	gate.RoundPlayed()

	ctx := context.Background()
	if !gate.RecordInterstitial(ctx, "round_end") {
		t.Fatal("expected first interstitial to be allowed")
	}
	if gate.RecordInterstitial(ctx, "round_end") {
		t.Fatal("expected cooldown to block an immediate second show")
	}

	now = now.Add(89 * time.Second)
	if gate.CanShowInterstitial() {
		t.Fatal("expected show blocked one second inside the cooldown")
	}
	now = now.Add(time.Second)
	if !gate.RecordInterstitial(ctx, "round_end") {
		t.Fatal("expected show allowed once the cooldown elapsed")
	}

	now = now.Add(10 * time.Minute)
	if gate.RecordInterstitial(ctx, "round_end") {
		t.Fatal("expected per-session cap of two to hold")
	}

	events := sink.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 recorded impressions, got %d", len(events))
	}
	for _, event := range events {
		if event.Type != "interstitial" || event.Placement != "round_end" || event.UserID != "u-ads" {
			t.Fatalf("unexpected event payload: %+v", event)
		}
		if event.ID == "" {
			t.Fatal("expected a generated event id")
		}
	}
}

func TestAdGateKillSwitch(t *testing.T) {
	gate := newTestAdGate(nil, time.Now)
	gate.RoundPlayed()

	gate.SetEnabled(false)
	if gate.CanShowInterstitial() {
		t.Fatal("expected disabled gate to refuse")
	}
	gate.SetEnabled(true)
	if !gate.CanShowInterstitial() {
		t.Fatal("expected re-enabled gate to allow")
	}
}
