// Package input translates tcell events into semantic intents.
// Non-letter keystrokes never reach the targeting resolver: ModePlay only emits folded a-z letters.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-engineer/core"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents for the active mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a new input machine in ModeMenu
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeMenu,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the active mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// ApplyKeyConfig merges user overrides into the active bindings
func (m *Machine) ApplyKeyConfig(override *KeyTable) {
	m.keyTable.Merge(override)
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	key := ev.Key()

	// Text entry owns Backspace before special-key lookup
	if m.mode == ModeText && (key == tcell.KeyBackspace || key == tcell.KeyBackspace2) {
		return &Intent{Type: IntentTextBackspace}
	}

	if key != tcell.KeyRune {
		if intent, ok := m.keyTable.SpecialKeys[key]; ok {
			return &Intent{Type: intent}
		}
		return nil
	}

	r := ev.Rune()
	switch m.mode {
	case ModePlay:
		return processLetter(r)
	case ModeText:
		if unicode.IsPrint(r) {
			return &Intent{Type: IntentTextChar, Char: r}
		}
		return nil
	}

	if intent, ok := m.keyTable.ModeRunes[m.mode][core.FoldRune(r)]; ok {
		return &Intent{Type: intent}
	}
	return nil
}

// processLetter folds r and keeps it only when it is an ASCII letter
func processLetter(r rune) *Intent {
	folded := core.FoldRune(r)
	if folded < 'a' || folded > 'z' {
		return nil
	}
	return &Intent{Type: IntentLetter, Char: folded}
}
