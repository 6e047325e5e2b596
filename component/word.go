package component

import (
	"github.com/lixenwraith/space-engineer/core"
)

// Word is the remaining-letters buffer of a typeable entity
// Letters are consumed from the front only; the original spelling never changes
type Word struct {
	original  string
	remaining []rune
}

// NewWord folds the word and fills the buffer
func NewWord(s string) Word {
	folded := core.FoldWord(s)
	return Word{
		original:  folded,
		remaining: []rune(folded),
	}
}

// CheckLetter reports whether r matches the next remaining letter
func (w *Word) CheckLetter(r rune) bool {
	if len(w.remaining) == 0 {
		return false
	}
	return core.FoldRune(r) == w.remaining[0]
}

// ConsumeLetter drops the first remaining letter, no-op when empty
func (w *Word) ConsumeLetter() {
	if len(w.remaining) == 0 {
		return
	}
	w.remaining = w.remaining[1:]
}

// IsCompleted reports whether every letter has been consumed
func (w *Word) IsCompleted() bool {
	return len(w.remaining) == 0
}

// NextLetter returns the first remaining letter
func (w *Word) NextLetter() (rune, bool) {
	if len(w.remaining) == 0 {
		return 0, false
	}
	return w.remaining[0], true
}

// Remaining returns the unconsumed letters
func (w *Word) Remaining() string {
	return string(w.remaining)
}

// OriginalWord returns the word as spawned
func (w *Word) OriginalWord() string {
	return w.original
}

// Consumed returns the number of letters already typed
func (w *Word) Consumed() int {
	return len([]rune(w.original)) - len(w.remaining)
}
