package input

// InputMode selects the binding set
// Kept in sync by the scene host via SetMode()
type InputMode uint8

const (
	ModeMenu    InputMode = iota // Main menu
	ModePlay                     // Encounter running, letters drive targeting
	ModeText                     // Name input
	ModeScreen                   // Intro, level complete, game over, credits
	ModeRanking                  // Ranking board
	ModeConfirm                  // Yes/no prompt
	modeCount
)

// String returns the mode name used in logs and key config sections
func (m InputMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeText:
		return "text"
	case ModeScreen:
		return "screen"
	case ModeRanking:
		return "ranking"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}
