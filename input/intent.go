package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Ctrl+Q
	IntentEscape     // ESC key (back / skip, context-dependent)
	IntentConfirm    // Enter
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Play
	IntentLetter // folded a-z keystroke for the targeting resolver

	// Text entry (name input)
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace

	// Menu navigation
	IntentMenuUp
	IntentMenuDown
	IntentMenuPlay
	IntentMenuRanking
	IntentMenuCredits

	// Ranking screen
	IntentRankingClear // C
	IntentRankingCopy  // Y

	// Confirmation prompts
	IntentYes
	IntentNo
)

// Intent is a parsed key action
// Char carries the folded letter for IntentLetter and the raw rune for IntentTextChar
type Intent struct {
	Type IntentType
	Char rune
}
