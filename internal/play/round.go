package play

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// TimeoutAnswer is the sentinel submitted when the countdown reaches zero.
// It never matches a correct index, so a timeout scores like a wrong answer.
const TimeoutAnswer = -1

var (
	// ErrAnswerLocked is returned on a second submission for the same question.
	ErrAnswerLocked = errors.New("answer already submitted for this question")
	// ErrRoundComplete is returned when acting on a finished round.
	ErrRoundComplete = errors.New("round already complete")
	// ErrNoQuestions is returned when a round is started without questions.
	ErrNoQuestions = errors.New("round needs at least one question")
	// ErrNoLives is returned when a round cannot start because lives are empty.
	ErrNoLives = errors.New("no lives remaining")
)

// Outcome summarizes a completed round for the ledger and score submission.
type Outcome struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	StartedAt      time.Time
	EndedAt        time.Time
}

// Round is the per-question two-state machine (accepting -> locked) driving
// one play-through. A correct answer awards 100 plus 10 per second remaining;
// anything else awards 0. Transitions are safe for a UI goroutine and the
// tick driver to share.
type Round struct {
	mu        sync.Mutex
	questions []domain.LocalizedQuestion
	now       func() time.Time

	startedAt time.Time
	index     int
	timeLeft  int
	locked    bool
	complete  bool
	score     int
	correct   int
	outcome   Outcome
}

func NewRound(questions []domain.LocalizedQuestion) (*Round, error) {
	return newRoundWithClock(questions, time.Now)
}

// newRoundWithClock allows deterministic timestamps in tests.
func newRoundWithClock(questions []domain.LocalizedQuestion, now func() time.Time) (*Round, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Round{
		questions: questions,
		now:       now,
		startedAt: now().UTC(),
		timeLeft:  domain.SecondsPerQuestion,
	}, nil
}

// Answer scores a selection for the current question and locks it. A second
// submission before Advance is rejected with ErrAnswerLocked.
func (r *Round) Answer(option int) (awarded int, correct bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.complete {
		return 0, false, ErrRoundComplete
	}
	if r.locked {
		return 0, false, ErrAnswerLocked
	}
	r.locked = true

	question := r.questions[r.index]
	if option == question.CorrectIndex {
		awarded = Award(true, r.timeLeft)
		r.score += awarded
		r.correct++
		return awarded, true, nil
	}
	return 0, false, nil
}

// Award is the per-answer point value: 100 plus a speed bonus of 10 per
// second remaining for a correct answer, 0 otherwise.
func Award(correct bool, secondsRemaining int) int {
	if !correct {
		return 0
	}
	return 100 + 10*secondsRemaining
}

// Tick advances the countdown by one second. At zero an unanswered question
// auto-submits the timeout sentinel. Returns true when the tick locked the
// question, meaning the driver should Advance.
func (r *Round) Tick() bool {
	r.mu.Lock()
	if r.complete || r.locked {
		r.mu.Unlock()
		return false
	}
	if r.timeLeft > 1 {
		r.timeLeft--
		r.mu.Unlock()
		return false
	}
	r.timeLeft = 0
	r.mu.Unlock()

	_, _, err := r.Answer(TimeoutAnswer)
	return err == nil
}

// Advance moves to the next question, resetting the lock and countdown.
// Advancing past the last question completes the round.
func (r *Round) Advance() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.complete {
		return r.outcome, true
	}
	if r.index < len(r.questions)-1 {
		r.index++
		r.locked = false
		r.timeLeft = domain.SecondsPerQuestion
		return Outcome{}, false
	}

	r.complete = true
	r.outcome = Outcome{
		Score:          r.score,
		CorrectCount:   r.correct,
		TotalQuestions: len(r.questions),
		StartedAt:      r.startedAt,
		EndedAt:        r.now().UTC(),
	}
	return r.outcome, true
}

// Run drives the round with a real ticker until completion. Advancing resets
// the ticker, so a new question never inherits a stale tick from the previous
// one. Answers arrive on the provided channel.
func (r *Round) Run(ctx context.Context, interval time.Duration, answers <-chan int) (Outcome, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		case option := <-answers:
			if _, _, err := r.Answer(option); err != nil {
				continue
			}
			if outcome, done := r.Advance(); done {
				return outcome, nil
			}
			ticker.Reset(interval)
		case <-ticker.C:
			if !r.Tick() {
				continue
			}
			if outcome, done := r.Advance(); done {
				return outcome, nil
			}
			ticker.Reset(interval)
		}
	}
}

// Question returns the current question.
func (r *Round) Question() domain.LocalizedQuestion {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.questions[r.index]
}

// TimeLeft returns the seconds remaining on the current question.
func (r *Round) TimeLeft() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timeLeft
}

// Score returns the running total.
func (r *Round) Score() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.score
}

// CorrectCount returns the number of correct answers so far.
func (r *Round) CorrectCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.correct
}

// Complete reports whether the round has finished.
func (r *Round) Complete() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.complete
}
