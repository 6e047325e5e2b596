package input

import "github.com/gdamore/tcell/v2"

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve YAML action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"escape":      IntentEscape,
	"confirm":     IntentConfirm,
	"toggle_mute": IntentToggleMute,

	"menu_up":      IntentMenuUp,
	"menu_down":    IntentMenuDown,
	"menu_play":    IntentMenuPlay,
	"menu_ranking": IntentMenuRanking,
	"menu_credits": IntentMenuCredits,

	"ranking_clear": IntentRankingClear,
	"ranking_copy":  IntentRankingCopy,

	"yes": IntentYes,
	"no":  IntentNo,
}

// specialKeyNames maps YAML key names to tcell keys
var specialKeyNames = map[string]tcell.Key{
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
	"ctrl+x": tcell.KeyCtrlX,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"f1":     tcell.KeyF1,
	"f10":    tcell.KeyF10,
}

// Rune aliases for keys that can't be bare single-char YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}
