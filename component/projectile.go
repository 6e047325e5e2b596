package component

import (
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/vmath"
)

// Projectile is a letter fired at a target, one per consumed letter
// The projectile carrying a target's final letter resolves the target on impact
type Projectile struct {
	ID         core.Entity
	Pos        vmath.Vec2
	Dir        vmath.Vec2
	Target     core.Entity
	TargetKind Kind
	Letter     rune
	Last       bool
	Active     bool
}
