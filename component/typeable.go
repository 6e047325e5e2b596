package component

import (
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/vmath"
)

// Typeable is the capability set shared by everything the player can shoot letters at
type Typeable interface {
	Entity() core.Entity
	Kind() Kind
	Position() vmath.Vec2
	IsActive() bool
	CheckLetter(r rune) bool
	ConsumeLetter()
	IsCompleted() bool
	NextLetter() (rune, bool)
	OriginalWord() string
}

// Marker is implemented by variants with a visible targeted state
type Marker interface {
	SetTargeted(bool)
}

// Body carries identity, position and movement shared by all moving entities
type Body struct {
	ID     core.Entity
	Pos    vmath.Vec2
	Dest   vmath.Vec2 // Movement destination
	Speed  float64    // px/s
	Active bool
}

func (b *Body) Entity() core.Entity {
	return b.ID
}

func (b *Body) Position() vmath.Vec2 {
	return b.Pos
}

func (b *Body) IsActive() bool {
	return b.Active
}
