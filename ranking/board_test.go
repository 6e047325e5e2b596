package ranking

import (
	"strings"
	"testing"
	"time"
)

var testDay = time.Date(2025, 3, 7, 20, 0, 0, 0, time.UTC)

func fill(b *Board, scores ...int) {
	for i, s := range scores {
		b.Add("p"+string(rune('a'+i)), s, "Level1", testDay)
	}
}

func TestBoardSortedAndCapped(t *testing.T) {
	b := NewBoard(nil)
	fill(b, 100, 500, 300, 200, 900, 50, 700, 800, 400, 600, 1000, 10)

	if b.Len() != MaxEntries {
		t.Fatalf("Expected %d entries, got %d", MaxEntries, b.Len())
	}
	entries := b.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			t.Errorf("Board not descending at %d: %d < %d", i, entries[i-1].Score, entries[i].Score)
		}
	}
	if entries[0].Score != 1000 {
		t.Errorf("Expected top score 1000, got %d", entries[0].Score)
	}
	if last := entries[len(entries)-1].Score; last != 100 {
		t.Errorf("Expected lowest kept score 100, got %d", last)
	}
}

func TestBoardIsHighScore(t *testing.T) {
	b := NewBoard(nil)
	if !b.IsHighScore(0) {
		t.Error("Expected any score to qualify on a non-full board")
	}

	fill(b, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
	tests := []struct {
		score int
		want  bool
	}{
		{5, false},
		{10, false},
		{11, true},
		{1000, true},
	}
	for _, tt := range tests {
		if got := b.IsHighScore(tt.score); got != tt.want {
			t.Errorf("IsHighScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBoardPosition(t *testing.T) {
	b := NewBoard(nil)
	if got := b.Position(100); got != 1 {
		t.Errorf("Expected position 1 on empty board, got %d", got)
	}

	fill(b, 300, 200, 100)
	tests := []struct {
		score int
		want  int
	}{
		{400, 1},
		{300, 2},
		{250, 2},
		{100, 4},
		{0, 4},
	}
	for _, tt := range tests {
		if got := b.Position(tt.score); got != tt.want {
			t.Errorf("Position(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestBoardEqualScoresKeepInsertionOrder(t *testing.T) {
	b := NewBoard(nil)
	first := b.Add("first", 100, "Level1", testDay)
	second := b.Add("second", 100, "Level2", testDay)

	entries := b.Entries()
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Errorf("Expected insertion order for ties, got %s then %s", entries[0].Name, entries[1].Name)
	}
}

func TestBoardTop(t *testing.T) {
	b := NewBoard(nil)
	fill(b, 10, 30, 20)

	top := b.Top(2)
	if len(top) != 2 || top[0].Score != 30 || top[1].Score != 20 {
		t.Errorf("Unexpected Top(2): %+v", top)
	}
	if got := len(b.Top(50)); got != 3 {
		t.Errorf("Expected Top beyond size to return 3, got %d", got)
	}

	top[0].Score = 0
	if b.Entries()[0].Score != 30 {
		t.Error("Top must return a copy")
	}
}

func TestBoardStats(t *testing.T) {
	b := NewBoard(nil)
	if st := b.Stats(); st != (Stats{}) {
		t.Errorf("Expected zero stats on empty board, got %+v", st)
	}

	fill(b, 100, 200, 250)
	st := b.Stats()
	if st.TotalPlayers != 3 {
		t.Errorf("Expected 3 players, got %d", st.TotalPlayers)
	}
	if st.HighestScore != 250 {
		t.Errorf("Expected highest 250, got %d", st.HighestScore)
	}
	if st.AverageScore != 183 {
		t.Errorf("Expected floored average 183, got %d", st.AverageScore)
	}
}

func TestNewEntryNormalizes(t *testing.T) {
	e := NewEntry("   ", 10, "Level1", testDay)
	if e.Name != DefaultName {
		t.Errorf("Expected default name %q, got %q", DefaultName, e.Name)
	}
	if e.Date != "07/03/2025" {
		t.Errorf("Expected pt-BR date 07/03/2025, got %s", e.Date)
	}
	if e.ID == "" {
		t.Error("Expected entry id")
	}

	long := NewEntry("  Engenheira Espacial Chefe  ", 10, "Level1", testDay)
	if long.Name != "Engenheira Espa" {
		t.Errorf("Expected truncated name, got %q", long.Name)
	}

	accented := NormalizeName("ÁÉÍÓÚáéíóúÂÊÔãõç")
	if got := len([]rune(accented)); got != MaxNameLength {
		t.Errorf("Expected %d runes, got %d", MaxNameLength, got)
	}
}

func TestNewBoardFromStoredEntries(t *testing.T) {
	stored := []Entry{{Name: "b", Score: 5}, {Name: "a", Score: 50}}
	b := NewBoard(stored)
	if b.Entries()[0].Name != "a" {
		t.Errorf("Expected stored entries to be sorted, got %+v", b.Entries())
	}
	stored[0].Name = "mutated"
	if b.Entries()[1].Name != "b" {
		t.Error("NewBoard must copy its input")
	}
}

func TestFormatPlain(t *testing.T) {
	b := NewBoard(nil)
	b.Add("Ana", 1200, "Level2", testDay)

	out := FormatPlain(b)
	if !strings.Contains(out, "Ana") || !strings.Contains(out, "1200") || !strings.Contains(out, "07/03/2025") {
		t.Errorf("Unexpected plain output:\n%s", out)
	}
	if !strings.Contains(RenderTable(b), "Ana") {
		t.Error("Expected rendered table to contain entry name")
	}
	if !strings.Contains(RenderTable(NewBoard(nil)), "Nenhuma") {
		t.Error("Expected empty-board message")
	}
}
