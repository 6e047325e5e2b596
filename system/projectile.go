package system

import (
	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/vmath"
)

// Impact is a projectile that reached its target this tick
type Impact struct {
	Projectile *component.Projectile
	Target     component.Typeable
}

// ProjectileSystem flies projectiles toward their targets
// Projectiles re-aim every tick so the final letter always lands on a moving target
type ProjectileSystem struct {
	world  *engine.World
	bounds vmath.Rect
	speed  float64
	radius float64
}

func NewProjectileSystem(world *engine.World, bounds vmath.Rect) *ProjectileSystem {
	return &ProjectileSystem{
		world:  world,
		bounds: bounds,
		speed:  constant.ProjectileSpeed,
		radius: constant.ProjectileHitRadius,
	}
}

// Update moves projectiles and returns the impacts in projectile creation order
// Projectiles whose target is gone or that leave the field are dropped without impact
func (s *ProjectileSystem) Update(dt float64) []Impact {
	var impacts []Impact
	for _, p := range s.world.Projectiles {
		if !p.Active {
			continue
		}

		target, ok := s.world.Lookup(p.Target)
		if !ok || !target.IsActive() {
			s.drop(p)
			continue
		}

		p.Dir = vmath.V2Direction(p.Pos, target.Position())
		pos, arrived := vmath.V2MoveToward(p.Pos, target.Position(), s.speed*dt)
		p.Pos = pos

		if arrived || vmath.V2Dist(p.Pos, target.Position()) <= s.radius {
			p.Active = false
			if e, ok := target.(*component.Enemy); ok && e.InFlight > 0 {
				e.InFlight--
			}
			impacts = append(impacts, Impact{Projectile: p, Target: target})
			continue
		}

		if !s.bounds.Contains(p.Pos, constant.EscapeMargin) {
			s.drop(p)
		}
	}
	return impacts
}

func (s *ProjectileSystem) drop(p *component.Projectile) {
	p.Active = false
	if e, ok := s.world.Enemy(p.Target); ok && e.InFlight > 0 {
		e.InFlight--
	}
}
