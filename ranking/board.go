package ranking

import (
	"sort"
	"time"
)

// Stats summarizes a board
type Stats struct {
	TotalPlayers int
	HighestScore int
	AverageScore int
}

// Board is the ordered high-score list, descending by score and capped at MaxEntries
// Equal scores keep insertion order
type Board struct {
	entries []Entry
}

// NewBoard builds a board from stored entries, sorting and capping them
func NewBoard(entries []Entry) *Board {
	b := &Board{entries: append([]Entry(nil), entries...)}
	b.normalize()
	return b
}

func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}
}

// Add inserts a new entry and returns it
// The entry may be dropped immediately if the board is full and it scores lowest
func (b *Board) Add(name string, score int, level string, now time.Time) Entry {
	e := NewEntry(name, score, level, now)
	b.entries = append(b.entries, e)
	b.normalize()
	return e
}

// IsHighScore reports whether the score would enter the board
func (b *Board) IsHighScore(score int) bool {
	if len(b.entries) < MaxEntries {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Position returns the 1-based rank the score would take
// Ties rank below existing entries
func (b *Board) Position(score int) int {
	pos := 1
	for _, e := range b.entries {
		if score <= e.Score {
			pos++
		}
	}
	return pos
}

// Top returns up to n leading entries; n <= 0 returns all
func (b *Board) Top(n int) []Entry {
	if n <= 0 || n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}

// Entries returns a copy of the full board
func (b *Board) Entries() []Entry {
	return b.Top(0)
}

// Len returns the entry count
func (b *Board) Len() int {
	return len(b.entries)
}

// Stats returns player count, highest score and floored average
func (b *Board) Stats() Stats {
	if len(b.entries) == 0 {
		return Stats{}
	}
	total := 0
	for _, e := range b.entries {
		total += e.Score
	}
	return Stats{
		TotalPlayers: len(b.entries),
		HighestScore: b.entries[0].Score,
		AverageScore: total / len(b.entries),
	}
}

// Clear empties the board
func (b *Board) Clear() {
	b.entries = b.entries[:0]
}
