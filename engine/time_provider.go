package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the clock driving scheduled callbacks and movement
// The terminal and web hosts use the monotonic provider, tests step a MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock, readings carry the monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a clock that only moves when stepped
// Safe for concurrent use so renderers and tests can read while a test advances it
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance steps the clock forward by d and returns the new reading
// Negative durations are ignored, time never runs backwards for the scheduler
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.now = m.now.Add(d)
	}
	return m.now
}
