package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot          SoundType = iota // Projectile fired at a target
	SoundMiss                           // Typing error buzz
	SoundExplosion                      // Enemy destroyed
	SoundCollect                        // Powerup word accepted
	SoundDamage                         // Enemy reached the player
	SoundLevelComplete                  // Response assembled
	SoundGameOver                       // Last life lost
	SoundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundMiss:
		return "miss"
	case SoundExplosion:
		return "explosion"
	case SoundCollect:
		return "collect"
	case SoundDamage:
		return "damage"
	case SoundLevelComplete:
		return "level_complete"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
