package engine

import (
	"time"

	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/vmath"
)

// World holds the live entities of one encounter
// Entity ids are monotonic for the world lifetime, so id order is creation order
// Not safe for concurrent use; the simulation runs on a single goroutine
type World struct {
	nextEntityID core.Entity

	Enemies     []*component.Enemy
	Powerups    []*component.Powerup
	Projectiles []*component.Projectile
	Explosions  []component.Explosion
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
	}
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// SpawnEnemy adds an active enemy travelling from pos toward dest
func (w *World) SpawnEnemy(word string, pos, dest vmath.Vec2, speed float64) *component.Enemy {
	e := &component.Enemy{
		Body: component.Body{
			ID:     w.CreateEntity(),
			Pos:    pos,
			Dest:   dest,
			Speed:  speed,
			Active: true,
		},
		Word: component.NewWord(word),
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

// SpawnPowerup adds an active powerup travelling from pos toward dest
func (w *World) SpawnPowerup(word string, pos, dest vmath.Vec2, speed float64) *component.Powerup {
	p := &component.Powerup{
		Body: component.Body{
			ID:     w.CreateEntity(),
			Pos:    pos,
			Dest:   dest,
			Speed:  speed,
			Active: true,
		},
		Word: component.NewWord(word),
	}
	w.Powerups = append(w.Powerups, p)
	return p
}

// SpawnProjectile adds a projectile carrying letter from origin toward target
func (w *World) SpawnProjectile(origin vmath.Vec2, target component.Typeable, letter rune, last bool) *component.Projectile {
	p := &component.Projectile{
		ID:         w.CreateEntity(),
		Pos:        origin,
		Dir:        vmath.V2Direction(origin, target.Position()),
		Target:     target.Entity(),
		TargetKind: target.Kind(),
		Letter:     letter,
		Last:       last,
		Active:     true,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// AddExplosion records a destruction marker
func (w *World) AddExplosion(x component.Explosion) {
	w.Explosions = append(w.Explosions, x)
}

// Typeables returns every active enemy and powerup in creation order
func (w *World) Typeables() []component.Typeable {
	out := make([]component.Typeable, 0, len(w.Enemies)+len(w.Powerups))
	i, j := 0, 0
	for i < len(w.Enemies) || j < len(w.Powerups) {
		if j >= len(w.Powerups) || (i < len(w.Enemies) && w.Enemies[i].ID < w.Powerups[j].ID) {
			if w.Enemies[i].Active {
				out = append(out, w.Enemies[i])
			}
			i++
			continue
		}
		if w.Powerups[j].Active {
			out = append(out, w.Powerups[j])
		}
		j++
	}
	return out
}

// Enemy looks up an enemy by id, active or not
func (w *World) Enemy(id core.Entity) (*component.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Powerup looks up a powerup by id, active or not
func (w *World) Powerup(id core.Entity) (*component.Powerup, bool) {
	for _, p := range w.Powerups {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Lookup returns the typeable with the given id
func (w *World) Lookup(id core.Entity) (component.Typeable, bool) {
	if e, ok := w.Enemy(id); ok {
		return e, true
	}
	if p, ok := w.Powerup(id); ok {
		return p, true
	}
	return nil, false
}

// ActiveEnemies counts enemies still on the field
func (w *World) ActiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// ActivePowerups counts powerups still on the field and not collected
func (w *World) ActivePowerups() int {
	n := 0
	for _, p := range w.Powerups {
		if p.Active && !p.Collected {
			n++
		}
	}
	return n
}

// PowerupWordActive reports whether a live powerup already carries the word
func (w *World) PowerupWordActive(word string) bool {
	folded := core.FoldWord(word)
	for _, p := range w.Powerups {
		if p.Active && !p.Collected && p.OriginalWord() == folded {
			return true
		}
	}
	return false
}

// Sweep drops inactive entities and projectiles
func (w *World) Sweep() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	clearTail(w.Enemies, len(enemies))
	w.Enemies = enemies

	powerups := w.Powerups[:0]
	for _, p := range w.Powerups {
		if p.Active {
			powerups = append(powerups, p)
		}
	}
	clearTail(w.Powerups, len(powerups))
	w.Powerups = powerups

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	clearTail(w.Projectiles, len(projectiles))
	w.Projectiles = projectiles
}

// ExpireExplosions drops explosion markers whose display time has passed
func (w *World) ExpireExplosions(now time.Time) {
	kept := w.Explosions[:0]
	for _, x := range w.Explosions {
		if now.Before(x.Until) {
			kept = append(kept, x)
		}
	}
	w.Explosions = kept
}

// Clear removes every entity, the id counter keeps advancing
func (w *World) Clear() {
	w.Enemies = nil
	w.Powerups = nil
	w.Projectiles = nil
	w.Explosions = nil
}

// clearTail nils the pointers past n so swept entities can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
