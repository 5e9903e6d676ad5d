package play

import (
	"testing"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

func TestWinPredicate(t *testing.T) {
	cases := []struct {
		correct, total int
		want           bool
	}{
		{5, 10, true},  // exactly half of an even count
		{4, 10, false}, // just below
		{3, 5, true},   // ceil(5/2) = 3
		{2, 5, false},
		{1, 1, true},
		{0, 10, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		if got := Win(tc.correct, tc.total); got != tc.want {
			t.Fatalf("Win(%d, %d): expected %v, got %v", tc.correct, tc.total, tc.want, got)
		}
	}
}

func TestApplyRoundWinExtendsStreak(t *testing.T) {
	profile := domain.UserProfile{StreakCurrent: 3, StreakBest: 3}
	outcome := Outcome{Score: 1200, CorrectCount: 7, TotalQuestions: 10}

	updated := ApplyRound(profile, outcome)
	if updated.StreakCurrent != 4 {
		t.Fatalf("expected streak 4, got %d", updated.StreakCurrent)
	}
	if updated.StreakBest != 4 {
		t.Fatalf("expected best streak to follow, got %d", updated.StreakBest)
	}
	if updated.Coins != 120 {
		t.Fatalf("expected 120 coins from a 1200 score, got %d", updated.Coins)
	}
}

func TestApplyRoundLossResetsStreakKeepsBest(t *testing.T) {
	profile := domain.UserProfile{StreakCurrent: 6, StreakBest: 8}
	outcome := Outcome{Score: 200, CorrectCount: 2, TotalQuestions: 10}

	updated := ApplyRound(profile, outcome)
	if updated.StreakCurrent != 0 {
		t.Fatalf("expected streak reset, got %d", updated.StreakCurrent)
	}
	if updated.StreakBest != 8 {
		t.Fatalf("expected best streak unchanged, got %d", updated.StreakBest)
	}
}

func TestApplyRoundRollingAccuracy(t *testing.T) {
	profile := domain.UserProfile{TotalCorrect: 8, TotalAnswered: 10, AccuracyPct: 80, TotalGames: 1}
	outcome := Outcome{Score: 500, CorrectCount: 5, TotalQuestions: 10}

	updated := ApplyRound(profile, outcome)
	if updated.TotalAnswered != 20 || updated.TotalCorrect != 13 {
		t.Fatalf("unexpected totals: %+v", updated)
	}
	if updated.AccuracyPct != 65 {
		t.Fatalf("expected accuracy 65, got %d", updated.AccuracyPct)
	}
	if updated.TotalGames != 2 {
		t.Fatalf("expected game count incremented, got %d", updated.TotalGames)
	}
}

func TestApplyRoundClampsMalformedOutcome(t *testing.T) {
	profile := domain.UserProfile{}
	outcome := Outcome{Score: 100, CorrectCount: 12, TotalQuestions: 10}

	updated := ApplyRound(profile, outcome)
	if updated.TotalCorrect != 10 {
		t.Fatalf("expected correct clamped to total, got %d", updated.TotalCorrect)
	}
	if updated.AccuracyPct != 100 {
		t.Fatalf("expected accuracy 100, got %d", updated.AccuracyPct)
	}
}

func TestNormalizeProfileInfersLegacyTotals(t *testing.T) {
	legacy := domain.UserProfile{TotalGames: 5, AccuracyPct: 80}

	normalized := NormalizeProfile(legacy)
	if normalized.TotalAnswered != 50 {
		t.Fatalf("expected 10 questions per historical game, got %d", normalized.TotalAnswered)
	}
	if normalized.TotalCorrect != 40 {
		t.Fatalf("expected inferred correct count 40, got %d", normalized.TotalCorrect)
	}
	if normalized.AccuracyPct != 80 {
		t.Fatalf("expected accuracy preserved, got %d", normalized.AccuracyPct)
	}
}

func TestNormalizeProfileSanitizes(t *testing.T) {
	dirty := domain.UserProfile{
		StreakCurrent: -2,
		Coins:         -100,
		AccuracyPct:   140,
		TotalCorrect:  20,
		TotalAnswered: 10,
	}

	clean := NormalizeProfile(dirty)
	if clean.StreakCurrent != 0 || clean.Coins != 0 {
		t.Fatalf("expected negative counters reset, got %+v", clean)
	}
	if clean.TotalCorrect != 10 {
		t.Fatalf("expected correct clamped to answered, got %d", clean.TotalCorrect)
	}
	if clean.AccuracyPct != 100 {
		t.Fatalf("expected accuracy recomputed from totals, got %d", clean.AccuracyPct)
	}
	if clean.Locale != "en-US" {
		t.Fatalf("expected default locale, got %q", clean.Locale)
	}
}
