package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// keymapFile is the YAML layout:
//
//	keys:
//	  ctrl+x: quit
//	menu:
//	  p: menu_play
//	ranking:
//	  space: ranking_copy
type keymapFile struct {
	Keys    map[string]string `yaml:"keys"`
	Menu    map[string]string `yaml:"menu"`
	Screen  map[string]string `yaml:"screen"`
	Ranking map[string]string `yaml:"ranking"`
	Confirm map[string]string `yaml:"confirm"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections/keys present in YAML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	t := &KeyTable{SpecialKeys: make(map[tcell.Key]IntentType)}
	for name, action := range raw.Keys {
		key, ok := specialKeyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown key %q", name)
		}
		intent, err := resolveAction(action)
		if err != nil {
			return nil, err
		}
		t.SpecialKeys[key] = intent
	}

	sections := []struct {
		mode    InputMode
		entries map[string]string
	}{
		{ModeMenu, raw.Menu},
		{ModeScreen, raw.Screen},
		{ModeRanking, raw.Ranking},
		{ModeConfirm, raw.Confirm},
	}
	for _, s := range sections {
		if len(s.entries) == 0 {
			continue
		}
		runes := make(map[rune]IntentType, len(s.entries))
		for name, action := range s.entries {
			r, err := resolveRune(name)
			if err != nil {
				return nil, fmt.Errorf("keymap [%s]: %w", s.mode, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("keymap [%s]: %w", s.mode, err)
			}
			runes[r] = intent
		}
		t.ModeRunes[s.mode] = runes
	}
	return t, nil
}

func resolveAction(name string) (IntentType, error) {
	intent, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return IntentNone, fmt.Errorf("keymap: unknown action %q", name)
	}
	return intent, nil
}

func resolveRune(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("invalid key %q", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}
