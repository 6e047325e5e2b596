// Package ranking keeps the high-score board and its persistence.
// Board holds the ordering rules; Store implementations persist it over database/sql or in memory.
package ranking

import (
	"context"
	"log"
	"time"
)

// Ranking binds a board to its store
// Every mutation is persisted; store failures are logged and the in-memory board stays authoritative
type Ranking struct {
	store Store
	board *Board
	now   func() time.Time
}

// New loads the board from store
// A failed load starts from an empty board
func New(ctx context.Context, store Store) *Ranking {
	r := &Ranking{store: store, now: time.Now}
	entries, err := store.Load(ctx)
	if err != nil {
		log.Printf("[ranking] load failed: %v", err)
	}
	r.board = NewBoard(entries)
	return r
}

// SetClock overrides the date source
func (r *Ranking) SetClock(now func() time.Time) {
	r.now = now
}

// Board exposes the current board
func (r *Ranking) Board() *Board {
	return r.board
}

// Add records a score and persists the board
func (r *Ranking) Add(ctx context.Context, name string, score int, level string) (Entry, error) {
	e := r.board.Add(name, score, level, r.now())
	if err := r.store.Save(ctx, r.board.Entries()); err != nil {
		log.Printf("[ranking] save failed: %v", err)
		return e, err
	}
	log.Printf("[ranking] added %s - %d pts", e.Name, e.Score)
	return e, nil
}

// IsHighScore reports whether score qualifies for the board
func (r *Ranking) IsHighScore(score int) bool {
	return r.board.IsHighScore(score)
}

// Position returns the rank score would take
func (r *Ranking) Position(score int) int {
	return r.board.Position(score)
}

// Clear empties both board and store
func (r *Ranking) Clear(ctx context.Context) error {
	r.board.Clear()
	if err := r.store.Clear(ctx); err != nil {
		log.Printf("[ranking] clear failed: %v", err)
		return err
	}
	return nil
}

// Close releases the store
func (r *Ranking) Close() error {
	return r.store.Close()
}
