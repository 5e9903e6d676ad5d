package play

import (
	"sync"
	"time"
)

const (
	// MaxLives is the cap on the life counter.
	MaxLives = 5
	// RegenInterval is how long one life takes to regenerate.
	RegenInterval = 30 * time.Minute
)

// LifeMeter is the capped, time-regenerating counter gating round starts.
// Regeneration applies whole elapsed intervals only and advances the
// baseline by exactly that many intervals, never to "now", so partial
// intervals are not lost. At cap the baseline tracks now and no backlog
// accrues.
type LifeMeter struct {
	mu       sync.Mutex
	lives    int
	baseline time.Time
	now      func() time.Time
}

// NewLifeMeter starts full.
func NewLifeMeter() *LifeMeter {
	return newLifeMeterWithClock(time.Now)
}

func newLifeMeterWithClock(now func() time.Time) *LifeMeter {
	return &LifeMeter{
		lives:    MaxLives,
		baseline: now(),
		now:      now,
	}
}

// Use consumes one life. Consuming when empty is a rejected no-op.
// Consuming from full starts the regeneration clock.
func (m *LifeMeter) Use() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenerate()

	if m.lives <= 0 {
		return false
	}
	if m.lives == MaxLives {
		m.baseline = m.now()
	}
	m.lives--
	return true
}

// Add grants lives (rewarded ads, purchases), capped at MaxLives.
// Returns false when already full.
func (m *LifeMeter) Add(amount int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenerate()

	if m.lives >= MaxLives {
		return false
	}
	if amount < 1 {
		amount = 1
	}
	m.lives += amount
	if m.lives >= MaxLives {
		m.lives = MaxLives
		m.baseline = m.now()
	}
	return true
}

// Lives returns the current count after applying any pending regeneration.
func (m *LifeMeter) Lives() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenerate()
	return m.lives
}

// TimeUntilNext reports how long until the next life, or 0 at cap.
func (m *LifeMeter) TimeUntilNext() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenerate()

	if m.lives >= MaxLives {
		return 0
	}
	elapsed := m.now().Sub(m.baseline)
	if elapsed < 0 {
		elapsed = 0
	}
	return RegenInterval - elapsed%RegenInterval
}

// Snapshot returns the state to persist.
func (m *LifeMeter) Snapshot() (lives int, baseline time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenerate()
	return m.lives, m.baseline
}

// Restore replaces the state from persistence, clamping out-of-range values.
func (m *LifeMeter) Restore(lives int, baseline time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lives < 0 {
		lives = 0
	}
	if lives > MaxLives {
		lives = MaxLives
	}
	m.lives = lives
	if baseline.IsZero() || lives >= MaxLives {
		baseline = m.now()
	}
	m.baseline = baseline
	m.regenerate()
}

// regenerate applies whole elapsed intervals. Callers hold the lock.
func (m *LifeMeter) regenerate() {
	now := m.now()
	if m.lives >= MaxLives {
		m.baseline = now
		return
	}

	elapsed := now.Sub(m.baseline)
	if elapsed < RegenInterval {
		return
	}
	units := int(elapsed / RegenInterval)
	gained := units
	if gained > MaxLives-m.lives {
		gained = MaxLives - m.lives
	}
	m.lives += gained
	m.baseline = m.baseline.Add(time.Duration(gained) * RegenInterval)
	if m.lives >= MaxLives {
		m.baseline = now
	}
}
