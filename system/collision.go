package system

import (
	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/vmath"
)

// ContactKind classifies a terminal-position fact
type ContactKind uint8

const (
	// ContactEnemyPlayer: an enemy reached the player
	ContactEnemyPlayer ContactKind = iota
	// ContactPowerupPlayer: a powerup reached the player
	ContactPowerupPlayer
	// ContactEnemyPowerup: an enemy reached a powerup
	ContactEnemyPowerup
	// ContactEscaped: an entity left the field
	ContactEscaped
)

// Contact is one terminal-position fact detected in a tick
type Contact struct {
	Kind   ContactKind
	Entity component.Typeable
	By     *component.Enemy // Enemy that reached a powerup
}

// CollisionSystem detects entities reaching the player, each other, or the field edge
type CollisionSystem struct {
	world  *engine.World
	bounds vmath.Rect
}

func NewCollisionSystem(world *engine.World, bounds vmath.Rect) *CollisionSystem {
	return &CollisionSystem{world: world, bounds: bounds}
}

// Detect returns this tick's contacts, each entity at most once
// Doomed enemies are skipped, their final projectile resolves them
func (s *CollisionSystem) Detect(player *component.Player) []Contact {
	var contacts []Contact
	touched := make(map[*component.Powerup]bool)

	for _, e := range s.world.Enemies {
		if !e.Active || e.Doomed() {
			continue
		}
		if vmath.V2Dist(e.Pos, player.Pos) <= constant.PlayerHitRadius {
			contacts = append(contacts, Contact{Kind: ContactEnemyPlayer, Entity: e})
			continue
		}
		if s.escaped(e.Pos) {
			contacts = append(contacts, Contact{Kind: ContactEscaped, Entity: e})
			continue
		}
		for _, p := range s.world.Powerups {
			if !p.Active || p.Collected || touched[p] {
				continue
			}
			if vmath.V2Dist(e.Pos, p.Pos) <= constant.EnemyPowerupReach {
				touched[p] = true
				contacts = append(contacts, Contact{Kind: ContactEnemyPowerup, Entity: p, By: e})
			}
		}
	}

	for _, p := range s.world.Powerups {
		if !p.Active || p.Collected || touched[p] {
			continue
		}
		if vmath.V2Dist(p.Pos, player.Pos) <= constant.PowerupCollectRadius {
			contacts = append(contacts, Contact{Kind: ContactPowerupPlayer, Entity: p})
			continue
		}
		if s.escaped(p.Pos) {
			contacts = append(contacts, Contact{Kind: ContactEscaped, Entity: p})
		}
	}
	return contacts
}

// escaped reports whether pos left the field below or to the sides
// Entities above the field are still descending from the spawn line
func (s *CollisionSystem) escaped(pos vmath.Vec2) bool {
	m := float64(constant.EscapeMargin)
	return pos.Y > s.bounds.Y+s.bounds.H+m ||
		pos.X < s.bounds.X-m ||
		pos.X > s.bounds.X+s.bounds.W+m
}
