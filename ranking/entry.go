package ranking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lixenwraith/space-engineer/constant"
)

const (
	MaxEntries    = constant.RankingMaxEntries
	MaxNameLength = constant.RankingMaxNameLength
	DefaultName   = constant.RankingDefaultName
	DateLayout    = constant.RankingDateLayout
)

// Entry is one ranking line
type Entry struct {
	ID    string
	Name  string
	Score int
	Date  string
	Level string
}

// NewEntry builds a normalized entry stamped with the given time
func NewEntry(name string, score int, level string, now time.Time) Entry {
	return Entry{
		ID:    uuid.NewString(),
		Name:  NormalizeName(name),
		Score: score,
		Date:  now.Format(DateLayout),
		Level: level,
	}
}

// NormalizeName trims whitespace, applies the default and truncates to MaxNameLength runes
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}
