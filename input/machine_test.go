package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keySpecial(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestPlayModeFiltersLetters(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModePlay)

	tests := []struct {
		name   string
		r      rune
		want   bool
		letter rune
	}{
		{"lowercase", 'c', true, 'c'},
		{"uppercase folds", 'C', true, 'c'},
		{"digit dropped", '7', false, 0},
		{"punctuation dropped", '.', false, 0},
		{"space dropped", ' ', false, 0},
		{"accented dropped", 'ç', false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(keyRune(tt.r))
			if !tt.want {
				if got != nil {
					t.Errorf("Expected %q to be filtered, got %+v", tt.r, got)
				}
				return
			}
			if got == nil || got.Type != IntentLetter {
				t.Fatalf("Expected IntentLetter for %q, got %+v", tt.r, got)
			}
			if got.Char != tt.letter {
				t.Errorf("Expected letter %q, got %q", tt.letter, got.Char)
			}
		})
	}
}

func TestSpecialKeysInEveryMode(t *testing.T) {
	m := NewMachine()
	for mode := ModeMenu; mode < modeCount; mode++ {
		m.SetMode(mode)
		if got := m.Process(keySpecial(tcell.KeyEscape)); got == nil || got.Type != IntentEscape {
			t.Errorf("Mode %s: expected IntentEscape, got %+v", mode, got)
		}
		if got := m.Process(keySpecial(tcell.KeyCtrlC)); got == nil || got.Type != IntentQuit {
			t.Errorf("Mode %s: expected IntentQuit, got %+v", mode, got)
		}
		if got := m.Process(keySpecial(tcell.KeyEnter)); got == nil || got.Type != IntentConfirm {
			t.Errorf("Mode %s: expected IntentConfirm, got %+v", mode, got)
		}
	}
}

func TestTextMode(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModeText)

	got := m.Process(keyRune('Ã'))
	if got == nil || got.Type != IntentTextChar || got.Char != 'Ã' {
		t.Errorf("Expected raw text char, got %+v", got)
	}
	got = m.Process(keyRune(' '))
	if got == nil || got.Type != IntentTextChar {
		t.Errorf("Expected space to be text, got %+v", got)
	}
	for _, k := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2} {
		got = m.Process(keySpecial(k))
		if got == nil || got.Type != IntentTextBackspace {
			t.Errorf("Expected IntentTextBackspace for key %v, got %+v", k, got)
		}
	}
}

func TestModeRunes(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		mode InputMode
		r    rune
		want IntentType
	}{
		{ModeMenu, 'j', IntentMenuPlay},
		{ModeMenu, '2', IntentMenuRanking},
		{ModeMenu, 'Q', IntentQuit},
		{ModeRanking, 'C', IntentRankingClear},
		{ModeRanking, 'y', IntentRankingCopy},
		{ModeConfirm, 's', IntentYes},
		{ModeConfirm, 'n', IntentNo},
		{ModeScreen, ' ', IntentConfirm},
	}
	for _, tt := range tests {
		m.SetMode(tt.mode)
		got := m.Process(keyRune(tt.r))
		if got == nil || got.Type != tt.want {
			t.Errorf("Mode %s rune %q: expected %v, got %+v", tt.mode, tt.r, tt.want, got)
		}
	}

	m.SetMode(ModeRanking)
	if got := m.Process(keyRune('j')); got != nil {
		t.Errorf("Expected unbound rune to be ignored, got %+v", got)
	}
}

func TestResizeEvent(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Errorf("Expected IntentResize, got %+v", got)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
keys:
  ctrl+x: quit
  ctrl+s: none
menu:
  p: menu_play
ranking:
  space: ranking_copy
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	m := NewMachine()
	m.ApplyKeyConfig(override)

	if got := m.Process(keySpecial(tcell.KeyCtrlX)); got == nil || got.Type != IntentQuit {
		t.Errorf("Expected ctrl+x to quit, got %+v", got)
	}
	if got := m.Process(keySpecial(tcell.KeyCtrlS)); got != nil {
		t.Errorf("Expected ctrl+s to be unbound, got %+v", got)
	}
	if got := m.Process(keyRune('p')); got == nil || got.Type != IntentMenuPlay {
		t.Errorf("Expected p to play, got %+v", got)
	}
	if got := m.Process(keyRune('j')); got == nil || got.Type != IntentMenuPlay {
		t.Errorf("Expected default j binding to survive merge, got %+v", got)
	}
	m.SetMode(ModeRanking)
	if got := m.Process(keyRune(' ')); got == nil || got.Type != IntentRankingCopy {
		t.Errorf("Expected space to copy ranking, got %+v", got)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "keys:\n  ctrl+x: fly\n"},
		{"unknown key", "keys:\n  hyper+z: quit\n"},
		{"multi-rune key", "menu:\n  ab: menu_play\n"},
		{"malformed", "keys: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
