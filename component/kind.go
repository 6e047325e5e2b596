package component

// Kind discriminates typeable entity variants
// Consulted only when a target completes, to pick the variant-specific side effect
type Kind uint8

const (
	KindEnemy Kind = iota
	KindPowerup
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}
