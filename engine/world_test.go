package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/vmath"
)

func TestWorldTypeablesCreationOrder(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	e1 := w.SpawnEnemy("alpha", origin, origin, 10)
	p1 := w.SpawnPowerup("beta", origin, origin, 10)
	e2 := w.SpawnEnemy("gamma", origin, origin, 10)
	p2 := w.SpawnPowerup("delta", origin, origin, 10)

	got := w.Typeables()
	want := []component.Typeable{e1, p1, e2, p2}
	if len(got) != len(want) {
		t.Fatalf("Expected %d typeables, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Entity() != want[i].Entity() {
			t.Errorf("Position %d: expected entity %d, got %d", i, want[i].Entity(), got[i].Entity())
		}
	}
}

func TestWorldTypeablesSkipsInactive(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	e := w.SpawnEnemy("alpha", origin, origin, 10)
	p := w.SpawnPowerup("beta", origin, origin, 10)
	e.Active = false

	got := w.Typeables()
	if len(got) != 1 || got[0].Entity() != p.ID {
		t.Errorf("Expected only the powerup, got %v", got)
	}
}

func TestWorldLookup(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	e := w.SpawnEnemy("alpha", origin, origin, 10)
	p := w.SpawnPowerup("beta", origin, origin, 10)

	if got, ok := w.Lookup(e.ID); !ok || got.Kind() != component.KindEnemy {
		t.Errorf("Expected enemy lookup to succeed")
	}
	if got, ok := w.Lookup(p.ID); !ok || got.Kind() != component.KindPowerup {
		t.Errorf("Expected powerup lookup to succeed")
	}
	if _, ok := w.Lookup(999); ok {
		t.Errorf("Expected unknown id lookup to fail")
	}
}

func TestWorldPowerupWordActive(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	p := w.SpawnPowerup("Beta", origin, origin, 10)

	if !w.PowerupWordActive("beta") {
		t.Error("Expected folded word to be active")
	}
	p.Collected = true
	if w.PowerupWordActive("beta") {
		t.Error("Collected powerup should not block its word")
	}
}

func TestWorldSweep(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	e1 := w.SpawnEnemy("alpha", origin, origin, 10)
	e2 := w.SpawnEnemy("beta", origin, origin, 10)
	p := w.SpawnPowerup("gamma", origin, origin, 10)
	proj := w.SpawnProjectile(origin, e2, 'b', false)

	e1.Active = false
	p.Active = false
	proj.Active = false
	w.Sweep()

	if len(w.Enemies) != 1 || w.Enemies[0] != e2 {
		t.Errorf("Expected only the active enemy to remain")
	}
	if len(w.Powerups) != 0 {
		t.Errorf("Expected no powerups, got %d", len(w.Powerups))
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("Expected no projectiles, got %d", len(w.Projectiles))
	}
	if w.ActiveEnemies() != 1 {
		t.Errorf("Expected 1 active enemy, got %d", w.ActiveEnemies())
	}
}

func TestWorldExpireExplosions(t *testing.T) {
	w := NewWorld()
	now := time.Unix(100, 0)

	w.AddExplosion(component.Explosion{Until: now.Add(-time.Millisecond)})
	w.AddExplosion(component.Explosion{Until: now.Add(time.Second)})
	w.ExpireExplosions(now)

	if len(w.Explosions) != 1 {
		t.Errorf("Expected 1 explosion, got %d", len(w.Explosions))
	}
}

func TestWorldIDsMonotonicAcrossClear(t *testing.T) {
	w := NewWorld()
	origin := vmath.Vec2{}

	first := w.SpawnEnemy("alpha", origin, origin, 10)
	w.Clear()
	second := w.SpawnEnemy("alpha", origin, origin, 10)

	if second.ID <= first.ID {
		t.Errorf("Expected id to keep increasing, got %d after %d", second.ID, first.ID)
	}
}

func TestSessionScoreNeverDecreases(t *testing.T) {
	s := NewSession(time.Unix(0, 0))

	s.AddScore(30)
	s.AddScore(-10)
	s.AddScore(0)

	if s.Score() != 30 {
		t.Errorf("Expected score 30, got %d", s.Score())
	}

	oldID := s.ID
	s.Reset(time.Unix(1, 0))
	if s.Score() != 0 {
		t.Errorf("Expected score reset, got %d", s.Score())
	}
	if s.ID == oldID {
		t.Error("Expected a new session id after reset")
	}
}
