// Package response assembles a fill-in-the-blank sentence from collected powerup words
package response

import (
	"fmt"
	"regexp"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
)

// blankPattern matches one blank marker, a run of underscores
var blankPattern = regexp.MustCompile(fmt.Sprintf("_{%d,}", constant.BlankMinLength))

// Verdict is the result of offering a word to the assembler
type Verdict uint8

const (
	// Accepted: the word was required and newly filled a blank
	Accepted Verdict = iota
	// AlreadyCollected: the word was accepted before, nothing changed
	AlreadyCollected
	// NotRequired: the word is not part of the response, nothing changed
	NotRequired
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case AlreadyCollected:
		return "already_collected"
	case NotRequired:
		return "not_required"
	default:
		return "unknown"
	}
}

// Assembler tracks which required words were collected and the partially filled text
// Each accepted word fills the leftmost remaining blank, so blanks follow acceptance order
type Assembler struct {
	template  string
	current   string
	required  []string
	collected map[string]struct{}
	order     []string // Accepted words in acceptance order
}

// NewAssembler creates an assembler over template with the required words
// Words are folded and trimmed; duplicates collapse to one requirement
func NewAssembler(template string, required []string) *Assembler {
	a := &Assembler{
		template:  template,
		current:   template,
		collected: make(map[string]struct{}, len(required)),
	}
	seen := make(map[string]struct{}, len(required))
	for _, w := range required {
		f := core.FoldWord(w)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		a.required = append(a.required, f)
	}
	return a
}

// CountBlanks returns the number of blank markers in a template
func CountBlanks(template string) int {
	return len(blankPattern.FindAllStringIndex(template, -1))
}

// AcceptWord offers a collected word
// Only Accepted mutates state; callers log NotRequired with their own context
func (a *Assembler) AcceptWord(word string) Verdict {
	w := core.FoldWord(word)
	if !a.isRequired(w) {
		return NotRequired
	}
	if _, ok := a.collected[w]; ok {
		return AlreadyCollected
	}

	a.collected[w] = struct{}{}
	a.order = append(a.order, w)
	a.fillNextBlank(w)
	return Accepted
}

func (a *Assembler) fillNextBlank(w string) {
	loc := blankPattern.FindStringIndex(a.current)
	if loc == nil {
		return
	}
	a.current = a.current[:loc[0]] + w + a.current[loc[1]:]
}

func (a *Assembler) isRequired(w string) bool {
	for _, r := range a.required {
		if r == w {
			return true
		}
	}
	return false
}

// IsComplete reports whether every required word was collected
func (a *Assembler) IsComplete() bool {
	return len(a.collected) == len(a.required)
}

// ProgressPercent returns floor(collected/required*100), 100 when nothing is required
func (a *Assembler) ProgressPercent() int {
	if len(a.required) == 0 {
		return 100
	}
	return len(a.collected) * 100 / len(a.required)
}

// CurrentText returns the template with accepted words filled in
func (a *Assembler) CurrentText() string {
	return a.current
}

// Template returns the unfilled text
func (a *Assembler) Template() string {
	return a.template
}

// RequiredWords returns the folded required words in declaration order
func (a *Assembler) RequiredWords() []string {
	out := make([]string, len(a.required))
	copy(out, a.required)
	return out
}

// CollectedWords returns the accepted words in acceptance order
func (a *Assembler) CollectedWords() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// RemainingWords returns required words not yet collected, in declaration order
func (a *Assembler) RemainingWords() []string {
	out := make([]string, 0, len(a.required)-len(a.collected))
	for _, w := range a.required {
		if _, ok := a.collected[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// IsCollected reports whether the word was already accepted
func (a *Assembler) IsCollected(word string) bool {
	_, ok := a.collected[core.FoldWord(word)]
	return ok
}

// Reset restores the template and forgets collected words
func (a *Assembler) Reset() {
	a.current = a.template
	a.order = a.order[:0]
	clear(a.collected)
}
