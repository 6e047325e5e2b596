package system

import (
	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/vmath"
)

// MovementSystem advances enemies and powerups toward their destinations
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update moves every active, unstunned entity by speed*dt seconds
func (s *MovementSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for _, e := range s.world.Enemies {
		if !e.Active || e.Stunned {
			continue
		}
		step(&e.Body, dt)
	}
	for _, p := range s.world.Powerups {
		if !p.Active || p.Collected {
			continue
		}
		step(&p.Body, dt)
	}
}

func step(b *component.Body, dt float64) {
	b.Pos, _ = vmath.V2MoveToward(b.Pos, b.Dest, b.Speed*dt)
}
