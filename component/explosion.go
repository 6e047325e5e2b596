package component

import (
	"time"

	"github.com/lixenwraith/space-engineer/vmath"
)

// Explosion is a short-lived visual marker left where an entity was destroyed
type Explosion struct {
	Pos   vmath.Vec2
	Word  string
	Kind  Kind
	Until time.Time
}
