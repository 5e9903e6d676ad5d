package play

import (
	"math"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// Win reports whether a round counts as a win: correct answers reach at
// least half the questions, rounded up.
func Win(correctCount, totalQuestions int) bool {
	if totalQuestions <= 0 {
		return false
	}
	return correctCount >= (totalQuestions+1)/2
}

// ApplyRound folds a round outcome into a profile: streak update, coin
// award, and rolling accuracy. It is a pure transformation of the whole
// record; callers persist the result in a single write or not at all.
func ApplyRound(profile domain.UserProfile, outcome Outcome) domain.UserProfile {
	total := outcome.TotalQuestions
	if total < 0 {
		total = 0
	}
	correct := outcome.CorrectCount
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}

	if Win(correct, total) {
		profile.StreakCurrent++
		if profile.StreakCurrent > profile.StreakBest {
			profile.StreakBest = profile.StreakCurrent
		}
	} else {
		profile.StreakCurrent = 0
	}

	profile.Coins += outcome.Score / 10
	profile.TotalGames++
	profile.TotalAnswered += total
	profile.TotalCorrect += correct
	profile.AccuracyPct = accuracyPct(profile.TotalCorrect, profile.TotalAnswered)
	return profile
}

// NormalizeProfile sanitizes a decoded profile: negative counters are reset,
// totals are kept consistent, and accuracy is recomputed from totals when
// they exist. Old records that predate total tracking get totals inferred
// from accuracy, assuming 10 questions per historical game. That inference
// is a one-time migration approximation, not a rule to extend.
func NormalizeProfile(profile domain.UserProfile) domain.UserProfile {
	profile.StreakCurrent = nonNegative(profile.StreakCurrent)
	profile.StreakBest = nonNegative(profile.StreakBest)
	profile.TotalGames = nonNegative(profile.TotalGames)
	profile.Coins = nonNegative(profile.Coins)
	profile.AccuracyPct = clampPct(profile.AccuracyPct)

	profile.TotalAnswered = nonNegative(profile.TotalAnswered)
	if profile.TotalAnswered == 0 && profile.TotalGames > 0 && profile.AccuracyPct > 0 {
		profile.TotalAnswered = profile.TotalGames * 10
	}

	profile.TotalCorrect = nonNegative(profile.TotalCorrect)
	if profile.TotalCorrect == 0 && profile.TotalAnswered > 0 && profile.AccuracyPct > 0 {
		profile.TotalCorrect = int(math.Round(float64(profile.AccuracyPct) / 100 * float64(profile.TotalAnswered)))
	}
	if profile.TotalCorrect > profile.TotalAnswered {
		profile.TotalCorrect = profile.TotalAnswered
	}

	if profile.TotalAnswered > 0 {
		profile.AccuracyPct = accuracyPct(profile.TotalCorrect, profile.TotalAnswered)
	}
	if profile.Locale == "" {
		profile.Locale = "en-US"
	}
	return profile
}

func accuracyPct(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return clampPct(int(math.Round(float64(correct) / float64(answered) * 100)))
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
