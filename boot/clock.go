package boot

import (
	"sync"
	"time"
)

// Clock supplies time to the frame loop so pacing can be tested without sleeping
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real monotonic clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualClock is a controllable clock for tests; Sleep advances it instantly
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
	slept   time.Duration
	// Step is added on every Now call to simulate work inside a frame
	Step time.Duration
}

// NewManualClock creates a clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current time, then advances it by Step
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.current
	m.current = m.current.Add(m.Step)
	return t
}

// Sleep advances the clock by d
func (m *ManualClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.current = m.current.Add(d)
		m.slept += d
	}
}

// Advance moves the clock forward without counting as sleep
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Slept returns the total time passed to Sleep
func (m *ManualClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}

// FrameSleep returns the rest of the frame budget; zero when the frame overran
func FrameSleep(elapsed, budget time.Duration) time.Duration {
	if elapsed >= budget {
		return 0
	}
	return budget - elapsed
}
