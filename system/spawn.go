package system

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/response"
	"github.com/lixenwraith/space-engineer/vmath"
)

// SpawnSystem places new enemies and powerups on the spawn line
// Invoked from scheduled records, never from the tick directly
type SpawnSystem struct {
	world     *engine.World
	rng       *rand.Rand
	level     *level.Config
	assembler *response.Assembler
	width     float64
	player    *component.Player

	PowerupChance float64
	PowerupMax    int
}

func NewSpawnSystem(world *engine.World, rng *rand.Rand, lvl *level.Config, assembler *response.Assembler, width float64, player *component.Player) *SpawnSystem {
	return &SpawnSystem{
		world:         world,
		rng:           rng,
		level:         lvl,
		assembler:     assembler,
		width:         width,
		player:        player,
		PowerupChance: constant.PowerupSpawnChance,
		PowerupMax:    constant.PowerupMaxActive,
	}
}

// SpawnEnemy adds an enemy with a random word heading for the player
// Returns nil when the level's concurrent enemy limit is reached
func (s *SpawnSystem) SpawnEnemy() *component.Enemy {
	if s.world.ActiveEnemies() >= s.level.EnemyLimit {
		return nil
	}
	word := s.level.WordList[s.rng.Intn(len(s.level.WordList))]
	pos := vmath.Vec2{X: s.randomX(constant.SpawnMarginX), Y: constant.SpawnY}
	return s.world.SpawnEnemy(word, pos, s.player.Pos, s.level.Speed)
}

// TryPowerup rolls the spawn chance and adds a powerup carrying a word still missing from the response
// Words already on screen are never duplicated
func (s *SpawnSystem) TryPowerup() *component.Powerup {
	if s.assembler == nil {
		return nil
	}
	if s.rng.Float64() > s.PowerupChance {
		return nil
	}
	if s.world.ActivePowerups() >= s.PowerupMax {
		return nil
	}

	var available []string
	for _, w := range s.assembler.RemainingWords() {
		if !s.world.PowerupWordActive(w) {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		return nil
	}

	word := available[s.rng.Intn(len(available))]
	return s.SpawnPowerupWord(word)
}

// SpawnPowerupWord adds a powerup with the given word, refusing duplicates of live powerups
func (s *SpawnSystem) SpawnPowerupWord(word string) *component.Powerup {
	if s.world.PowerupWordActive(word) {
		log.Printf("[spawn] duplicate powerup word %q rejected", word)
		return nil
	}
	pos := vmath.Vec2{X: s.randomX(2 * constant.SpawnMarginX), Y: constant.SpawnY}
	dest := vmath.Vec2{X: s.player.Pos.X, Y: s.player.Pos.Y + constant.PlayerOffsetY - constant.PowerupTargetOffsetY}
	return s.world.SpawnPowerup(word, pos, dest, constant.PowerupSpeed)
}

// randomX returns an x inside the field keeping margin from both edges
func (s *SpawnSystem) randomX(margin float64) float64 {
	span := s.width - 2*margin
	if span <= 0 {
		return s.width / 2
	}
	return margin + s.rng.Float64()*span
}
