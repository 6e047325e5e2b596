package component

import "github.com/lixenwraith/space-engineer/vmath"

// Player is the defended ship at the bottom of the field
type Player struct {
	Pos      vmath.Vec2
	Lives    int
	MaxLives int
}

// TakeDamage removes one life, never going below zero
func (p *Player) TakeDamage() {
	if p.Lives > 0 {
		p.Lives--
	}
}

func (p *Player) IsAlive() bool {
	return p.Lives > 0
}
