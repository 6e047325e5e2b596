package core

// GameMode is the active screen of the game flow
// Shared by the terminal and web hosts so both walk the same screen graph
type GameMode uint8

const (
	ModeMenu GameMode = iota
	ModeIntro
	ModePlaying
	ModeLevelComplete
	ModeGameOver
	ModeNameInput
	ModeRanking
	ModeCredits
)

// String returns the mode name used in logs
func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeLevelComplete:
		return "level_complete"
	case ModeGameOver:
		return "game_over"
	case ModeNameInput:
		return "name_input"
	case ModeRanking:
		return "ranking"
	case ModeCredits:
		return "credits"
	default:
		return "unknown"
	}
}
