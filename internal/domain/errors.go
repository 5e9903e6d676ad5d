package domain

import "errors"

var (
	// ErrInvalidPeriod is returned for a leaderboard period outside daily/weekly/alltime.
	ErrInvalidPeriod = errors.New("period must be one of: daily, weekly, alltime")
	// ErrInvalidMode is returned when a submitted round mode is not classic or daily.
	ErrInvalidMode = errors.New("mode must be one of: classic, daily")
	// ErrCorrectCountOutOfRange is returned when correctCount falls outside 0..10.
	ErrCorrectCountOutOfRange = errors.New("correctCount must be between 0 and 10")
	// ErrScoreOutOfRange is returned when a round score falls outside 0..2500.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 2500")
	// ErrImpossibleScore is returned when a score exceeds what the reported
	// correct count could have earned. Violations are rejected, never clamped.
	ErrImpossibleScore = errors.New("score is impossible for the provided correctCount")
)
