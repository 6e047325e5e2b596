package system

import (
	"testing"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/vmath"
)

func TestProjectileLongStepLandsOnTarget(t *testing.T) {
	world := engine.NewWorld()
	bounds := vmath.Rect{W: constant.FieldWidth, H: constant.FieldHeight}
	s := NewProjectileSystem(world, bounds)

	target := world.SpawnEnemy("cat", vmath.Vec2{X: 300, Y: 300}, vmath.Vec2{X: 300, Y: 300}, 0)
	p := world.SpawnProjectile(vmath.Vec2{X: 300, Y: 340}, target, 'c', false)

	// 100ms at 800px/s is an 80px step against a target 40px away
	impacts := s.Update(0.1)

	if len(impacts) != 1 || impacts[0].Projectile != p {
		t.Fatalf("Expected the projectile to land in one step, got %d impacts", len(impacts))
	}
	if p.Active {
		t.Error("Expected the landed projectile to be spent")
	}
	if p.Pos != target.Pos {
		t.Errorf("Expected the step to stop at the target, projectile at %+v", p.Pos)
	}
}

func TestProjectileShortStepKeepsFlying(t *testing.T) {
	world := engine.NewWorld()
	bounds := vmath.Rect{W: constant.FieldWidth, H: constant.FieldHeight}
	s := NewProjectileSystem(world, bounds)

	target := world.SpawnEnemy("cat", vmath.Vec2{X: 300, Y: 100}, vmath.Vec2{X: 300, Y: 100}, 0)
	p := world.SpawnProjectile(vmath.Vec2{X: 300, Y: 500}, target, 'c', true)

	if impacts := s.Update(0.016); len(impacts) != 0 {
		t.Fatalf("Expected no impact 400px away, got %d", len(impacts))
	}
	if !p.Active || p.Pos.Y >= 500 || p.Pos.X != 300 {
		t.Errorf("Expected the projectile to advance toward the target, got %+v", p)
	}
}
