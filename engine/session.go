package engine

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one play run, carried across levels
type Session struct {
	ID        string
	StartedAt time.Time
	Level     string // Key of the level being played

	score int
}

// NewSession starts a run with a fresh id and zero score
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
	}
}

// Score returns the accumulated score
func (s *Session) Score() int {
	return s.score
}

// AddScore adds a positive delta and returns the new score
// Non-positive deltas are ignored so the score never decreases
func (s *Session) AddScore(delta int) int {
	if delta > 0 {
		s.score += delta
	}
	return s.score
}

// Reset clears the score and level and issues a new id
func (s *Session) Reset(now time.Time) {
	s.ID = uuid.NewString()
	s.StartedAt = now
	s.Level = ""
	s.score = 0
}
