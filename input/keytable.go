package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for all modes
type KeyTable struct {
	// Special keys valid in every mode (Ctrl+*, ESC, Enter, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Per-mode rune bindings; ModePlay and ModeText runes are handled structurally
	ModeRunes [modeCount]map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	t := &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyUp:     IntentMenuUp,
			tcell.KeyDown:   IntentMenuDown,
		},
	}

	t.ModeRunes[ModeMenu] = map[rune]IntentType{
		'1': IntentMenuPlay,
		'j': IntentMenuPlay,
		'2': IntentMenuRanking,
		'r': IntentMenuRanking,
		'3': IntentMenuCredits,
		'c': IntentMenuCredits,
		'4': IntentQuit,
		'q': IntentQuit,
	}
	t.ModeRunes[ModeScreen] = map[rune]IntentType{
		' ': IntentConfirm,
	}
	t.ModeRunes[ModeRanking] = map[rune]IntentType{
		'c': IntentRankingClear,
		'y': IntentRankingCopy,
	}
	t.ModeRunes[ModeConfirm] = map[rune]IntentType{
		's': IntentYes,
		'y': IntentYes,
		'n': IntentNo,
	}
	return t
}

// Merge overlays non-empty bindings from override onto t
// IntentNone in override unbinds the key
func (t *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(t.SpecialKeys, k)
			continue
		}
		t.SpecialKeys[k] = v
	}
	for mode, runes := range override.ModeRunes {
		if len(runes) == 0 {
			continue
		}
		if t.ModeRunes[mode] == nil {
			t.ModeRunes[mode] = make(map[rune]IntentType)
		}
		for r, v := range runes {
			if v == IntentNone {
				delete(t.ModeRunes[mode], r)
				continue
			}
			t.ModeRunes[mode][r] = v
		}
	}
}
