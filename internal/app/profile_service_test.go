package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/SWiseG/QuizLoop/internal/infra/memory"
)

func TestGetOrCreateCreatesLazily(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	service := app.NewProfileServiceWithClock(memory.NewProfileStore(), clock)

	profile, err := service.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if profile.ID != "user-1" || profile.Locale != "en-US" || !profile.CreatedAt.Equal(now) {
		t.Fatalf("unexpected default profile: %+v", profile)
	}

	// Second fetch returns the stored row, not a fresh one.
	created := now
	now = now.Add(time.Hour)
	again, err := service.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if !again.CreatedAt.Equal(created) {
		t.Fatalf("expected original creation time, got %v", again.CreatedAt)
	}
}

func TestSyncMergesFieldWiseMaximum(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProfileStore()
	service := app.NewProfileService(store)

	seed := domain.UserProfile{
		ID: "user-1", CreatedAt: time.Now().UTC(), Locale: "en-US",
		StreakCurrent: 4, StreakBest: 9, TotalGames: 50, AccuracyPct: 80, Coins: 1000,
	}
	if err := store.Put(ctx, seed); err != nil {
		t.Fatalf("put: %v", err)
	}

	merged, err := service.Sync(ctx, "user-1", app.SyncRequest{
		StreakCurrent: 2, StreakBest: 7, TotalGames: 48, AccuracyPct: 75, Coins: 800,
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if merged.TotalGames != 50 || merged.Coins != 1000 {
		t.Fatalf("expected larger server values retained, got %+v", merged)
	}
	if merged.StreakBest != 9 {
		t.Fatalf("expected bestStreak max(9,7)=9, got %d", merged.StreakBest)
	}
	if merged.StreakCurrent != 2 {
		t.Fatalf("expected client streakCurrent to win, got %d", merged.StreakCurrent)
	}
	if merged.AccuracyPct != 75 {
		t.Fatalf("expected client accuracyPct to win, got %d", merged.AccuracyPct)
	}
}

func TestSyncClientAheadOfServer(t *testing.T) {
	ctx := context.Background()
	service := app.NewProfileService(memory.NewProfileStore())

	// First contact: sync creates the profile then merges into the defaults.
	merged, err := service.Sync(ctx, "user-1", app.SyncRequest{
		StreakCurrent: 3, StreakBest: 5, TotalGames: 12, AccuracyPct: 66, Coins: 420,
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if merged.StreakCurrent != 3 || merged.StreakBest != 5 || merged.TotalGames != 12 ||
		merged.AccuracyPct != 66 || merged.Coins != 420 {
		t.Fatalf("expected client values on first sync, got %+v", merged)
	}
}

func TestSyncIsOrderIndependentForMonotonicFields(t *testing.T) {
	ctx := context.Background()
	a := app.SyncRequest{StreakCurrent: 1, StreakBest: 4, TotalGames: 10, AccuracyPct: 50, Coins: 100}
	b := app.SyncRequest{StreakCurrent: 0, StreakBest: 6, TotalGames: 8, AccuracyPct: 70, Coins: 300}

	serviceAB := app.NewProfileService(memory.NewProfileStore())
	if _, err := serviceAB.Sync(ctx, "u", a); err != nil {
		t.Fatalf("sync a: %v", err)
	}
	ab, err := serviceAB.Sync(ctx, "u", b)
	if err != nil {
		t.Fatalf("sync b: %v", err)
	}

	serviceBA := app.NewProfileService(memory.NewProfileStore())
	if _, err := serviceBA.Sync(ctx, "u", b); err != nil {
		t.Fatalf("sync b: %v", err)
	}
	ba, err := serviceBA.Sync(ctx, "u", a)
	if err != nil {
		t.Fatalf("sync a: %v", err)
	}

	if ab.StreakBest != ba.StreakBest || ab.TotalGames != ba.TotalGames || ab.Coins != ba.Coins {
		t.Fatalf("monotonic fields diverged: %+v vs %+v", ab, ba)
	}
}
