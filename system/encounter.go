package system

import (
	"log"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/engine"
	"github.com/lixenwraith/space-engineer/event"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/response"
	"github.com/lixenwraith/space-engineer/vmath"
)

// maxTickDelta bounds movement after a stall so entities never jump across the field
const maxTickDelta = 100 * time.Millisecond

// Status is the encounter's terminal state
type Status uint8

const (
	StatusPlaying Status = iota
	StatusComplete
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// SoundPlayer plays audio cues, implemented by the audio package
type SoundPlayer interface {
	Play(core.SoundType)
}

// Stats are the per-level counters exposed to completion rules and end screens
type Stats struct {
	EnemiesDestroyed  int
	PowerupsCollected int
	Shots             int
	Misses            int
	Damage            int
}

// Options configures a new encounter
type Options struct {
	Level   *level.Config
	Session *engine.Session
	Clock   engine.TimeProvider
	Sound   SoundPlayer // Optional
	Rand    *rand.Rand  // Optional, seeded from the clock when nil
	Width   float64     // Field size, defaults when zero
	Height  float64
}

// Encounter runs one level: it owns the world, the current target and the level timers
// All methods must be called from the game loop goroutine
type Encounter struct {
	level     *level.Config
	session   *engine.Session
	clock     engine.TimeProvider
	sound     SoundPlayer
	rng       *rand.Rand
	bounds    vmath.Rect
	world     *engine.World
	player    *component.Player
	resolver  *Resolver
	assembler *response.Assembler
	scheduler *engine.Scheduler

	queue  *event.Queue // Internal, drained by dispatch
	outbox []event.GameEvent
	tick   uint64

	spawner     *SpawnSystem
	movement    *MovementSystem
	projectiles *ProjectileSystem
	collisions  *CollisionSystem

	status    Status
	stats     Stats
	startedAt time.Time
	lastTick  time.Time
	missUntil time.Time
}

// NewEncounter builds an encounter for the level and starts its timers
func NewEncounter(opts Options) *Encounter {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = constant.FieldWidth
	}
	if height <= 0 {
		height = constant.FieldHeight
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	session := opts.Session
	if session == nil {
		session = engine.NewSession(clock.Now())
	}

	queue := event.NewQueue()
	world := engine.NewWorld()
	bounds := vmath.Rect{W: width, H: height}

	e := &Encounter{
		level:     opts.Level,
		session:   session,
		clock:     clock,
		sound:     opts.Sound,
		rng:       rng,
		bounds:    bounds,
		world:     world,
		resolver:  NewResolver(queue),
		scheduler: engine.NewScheduler(),
		queue:     queue,
		player: &component.Player{
			Pos:      vmath.Vec2{X: width / 2, Y: height - constant.PlayerOffsetY},
			Lives:    constant.PlayerLives,
			MaxLives: constant.PlayerLives,
		},
		movement:    NewMovementSystem(world),
		projectiles: NewProjectileSystem(world, bounds),
		collisions:  NewCollisionSystem(world, bounds),
	}
	if opts.Level.HasResponse() {
		e.assembler = response.NewAssembler(opts.Level.ResponseText, opts.Level.CorrectWords)
	}
	e.spawner = NewSpawnSystem(world, rng, opts.Level, e.assembler, width, e.player)
	session.Level = opts.Level.Key

	e.start()
	return e
}

// start resets the clock-relative state and schedules the spawners
func (e *Encounter) start() {
	now := e.clock.Now()
	e.startedAt = now
	e.lastTick = now
	e.status = StatusPlaying

	interval := e.level.SpawnInterval()
	e.scheduler.After(now, constant.EnemyInitialSpawnDelay, core.NoEntity, func(time.Time) { e.spawnEnemy() })
	e.scheduler.Every(now, interval, func(time.Time) { e.spawnEnemy() })

	if e.assembler != nil {
		e.scheduler.After(now, constant.PowerupInitialDelay, core.NoEntity, func(time.Time) { e.spawner.TryPowerup() })
		e.scheduler.Every(now, interval*constant.PowerupIntervalFactor, func(time.Time) { e.spawner.TryPowerup() })
	}
	log.Printf("[encounter] level %s started", e.level.Key)
}

// Restart cancels every pending timer and reinitializes the level, the session score is kept
func (e *Encounter) Restart() {
	cancelled := e.scheduler.CancelAll()
	e.world.Clear()
	e.resolver.Reset()
	if e.assembler != nil {
		e.assembler.Reset()
	}
	e.player.Lives = e.player.MaxLives
	e.stats = Stats{}
	e.queue.Clear()
	e.outbox = nil
	e.missUntil = time.Time{}
	log.Printf("[encounter] level %s restarted, %d timers cancelled", e.level.Key, cancelled)
	e.start()
}

func (e *Encounter) spawnEnemy() {
	if e.status != StatusPlaying {
		return
	}
	e.spawner.SpawnEnemy()
}

// HandleKey feeds one letter to the resolver and applies its consequences before returning
func (e *Encounter) HandleKey(letter rune) ShotResult {
	if e.status != StatusPlaying {
		return ShotResult{Outcome: OutcomeMiss}
	}
	res := e.resolver.HandleKey(letter, e.player.Pos, e.world.Typeables())
	e.dispatch()
	return res
}

// Update advances the simulation to the clock's current time
func (e *Encounter) Update() {
	now := e.clock.Now()
	dt := now.Sub(e.lastTick)
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	e.lastTick = now
	e.tick++

	if e.status != StatusPlaying {
		e.world.ExpireExplosions(now)
		return
	}

	e.scheduler.Poll(now)

	seconds := dt.Seconds()
	e.movement.Update(seconds)
	for _, imp := range e.projectiles.Update(seconds) {
		e.applyImpact(imp, now)
	}
	for _, c := range e.collisions.Detect(e.player) {
		e.applyContact(c, now)
	}
	e.dispatch()

	if e.status == StatusPlaying {
		e.checkRule(now)
	}

	e.world.Sweep()
	e.world.ExpireExplosions(now)
}

// applyImpact resolves one projectile landing
func (e *Encounter) applyImpact(imp Impact, now time.Time) {
	switch t := imp.Target.(type) {
	case *component.Enemy:
		if imp.Projectile.Last {
			e.destroyEnemy(t, now)
			e.stats.EnemiesDestroyed++
			e.queue.Emit(event.EventEnemyDestroyed, &event.EntityPayload{
				Entity: t.ID, Kind: component.KindEnemy, Word: t.OriginalWord(), Pos: t.Pos,
			})
			e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundExplosion})
			return
		}
		e.knockback(t, imp.Projectile.Dir, now)

	case *component.Powerup:
		if imp.Projectile.Last {
			t.Active = false
			e.world.AddExplosion(component.Explosion{
				Pos: t.Pos, Word: t.OriginalWord(), Kind: component.KindPowerup, Until: now.Add(constant.ExplosionDuration),
			})
		}
	}
}

// knockback pushes the enemy along dir and freezes it until a scheduled resume
func (e *Encounter) knockback(en *component.Enemy, dir vmath.Vec2, now time.Time) {
	en.Pos = vmath.V2Add(en.Pos, vmath.V2Scale(dir, constant.EnemyKnockbackDistance))
	en.Stunned = true
	e.scheduler.CancelOwner(en.ID)
	e.scheduler.After(now, constant.EnemyStunDuration, en.ID, func(time.Time) {
		en.Stunned = false
	})
}

func (e *Encounter) destroyEnemy(en *component.Enemy, now time.Time) {
	en.Active = false
	en.Stunned = false
	e.scheduler.CancelOwner(en.ID)
	e.world.AddExplosion(component.Explosion{
		Pos: en.Pos, Word: en.OriginalWord(), Kind: component.KindEnemy, Until: now.Add(constant.ExplosionDuration),
	})
}

// applyContact resolves one terminal-position fact, detaching the target when it is removed
func (e *Encounter) applyContact(c Contact, now time.Time) {
	switch c.Kind {
	case ContactEnemyPlayer:
		en := c.Entity.(*component.Enemy)
		e.destroyEnemy(en, now)
		e.detach(en.ID)
		e.player.TakeDamage()
		e.stats.Damage++
		e.queue.Emit(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Entity: en.ID, Lives: e.player.Lives})
		e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDamage})

	case ContactPowerupPlayer:
		p := c.Entity.(*component.Powerup)
		e.collectPowerup(p)
		p.Active = false
		e.detach(p.ID)

	case ContactEnemyPowerup:
		p := c.Entity.(*component.Powerup)
		p.Active = false
		e.detach(p.ID)
		e.queue.Emit(event.EventPowerupDestroyed, &event.EntityPayload{
			Entity: p.ID, Kind: component.KindPowerup, Word: p.OriginalWord(), Pos: p.Pos,
		})

	case ContactEscaped:
		switch en := c.Entity.(type) {
		case *component.Enemy:
			en.Active = false
			e.scheduler.CancelOwner(en.ID)
		case *component.Powerup:
			en.Active = false
			e.queue.Emit(event.EventPowerupDestroyed, &event.EntityPayload{
				Entity: en.ID, Kind: component.KindPowerup, Word: en.OriginalWord(), Pos: en.Pos,
			})
		}
		e.detach(c.Entity.Entity())
	}
}

// detach notifies the resolver of a removal that was not a completion
func (e *Encounter) detach(id core.Entity) {
	e.resolver.Detach(id)
}

// collectPowerup routes the powerup's word to the assembler, at most once per powerup
func (e *Encounter) collectPowerup(p *component.Powerup) {
	if p.Collected || e.assembler == nil {
		return
	}
	p.Collected = true

	verdict := e.assembler.AcceptWord(p.OriginalWord())
	accepted := verdict == response.Accepted
	if accepted {
		e.stats.PowerupsCollected++
	}
	if verdict == response.NotRequired {
		log.Printf("[encounter] powerup word %q not required by %s", p.OriginalWord(), e.level.Key)
	}

	e.queue.Emit(event.EventPowerupCollected, &event.PowerupCollectedPayload{
		Entity: p.ID, Word: p.OriginalWord(), Accepted: accepted,
	})
	if !accepted {
		return
	}

	e.addScore(constant.ScorePowerupBonus)
	e.queue.Emit(event.EventResponseProgress, &event.ResponseProgressPayload{
		Text:    e.assembler.CurrentText(),
		Percent: e.assembler.ProgressPercent(),
	})
	e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundCollect})
}

// dispatch drains the internal queue, applying gameplay effects and forwarding every event to the outbox
func (e *Encounter) dispatch() {
	for e.queue.Len() > 0 {
		for _, ev := range e.queue.Consume() {
			ev.Tick = e.tick
			ev.Timestamp = e.clock.Now()
			e.handle(ev)
			e.outbox = append(e.outbox, ev)
		}
	}
}

func (e *Encounter) handle(ev event.GameEvent) {
	switch ev.Type {
	case event.EventShotFired:
		p := ev.Payload.(*event.ShotFiredPayload)
		e.onShot(p)

	case event.EventTypingMiss:
		e.stats.Misses++
		e.missUntil = e.clock.Now().Add(constant.MissFlashDuration)
		e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundMiss})

	case event.EventTargetCompleted:
		p := ev.Payload.(*event.TargetCompletedPayload)
		e.onCompleted(p)

	case event.EventPowerupCollected:
		if e.assembler != nil && e.assembler.IsComplete() && e.status == StatusPlaying {
			e.completeLevel()
		}

	case event.EventPlayerDamaged:
		if !e.player.IsAlive() && e.status == StatusPlaying {
			e.gameOver()
		}

	case event.EventSoundRequest:
		if e.sound != nil {
			e.sound.Play(ev.Payload.(*event.SoundRequestPayload).SoundType)
		}
	}
}

// onShot launches the projectile carrying the consumed letter
func (e *Encounter) onShot(p *event.ShotFiredPayload) {
	target, ok := e.world.Lookup(p.Target)
	if !ok {
		return
	}
	e.stats.Shots++
	e.world.SpawnProjectile(e.player.Pos, target, p.Letter, p.Last)
	if en, ok := target.(*component.Enemy); ok {
		en.InFlight++
	}
	e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundShot})
}

// onCompleted applies the variant-specific completion effect
func (e *Encounter) onCompleted(p *event.TargetCompletedPayload) {
	switch p.Kind {
	case component.KindEnemy:
		e.addScore(utf8.RuneCountInString(p.Word) * constant.ScorePerLetter)
	case component.KindPowerup:
		if pw, ok := e.world.Powerup(p.Target); ok {
			e.collectPowerup(pw)
		}
	}
}

func (e *Encounter) addScore(delta int) {
	score := e.session.AddScore(delta)
	e.queue.Emit(event.EventScoreChanged, &event.ScorePayload{Score: score, Delta: delta})
}

// Facts returns the counters completion rules are evaluated against
func (e *Encounter) Facts() level.Facts {
	return level.Facts{
		EnemiesDestroyed:  e.stats.EnemiesDestroyed,
		PowerupsCollected: e.stats.PowerupsCollected,
		Elapsed:           e.clock.Now().Sub(e.startedAt),
		Score:             e.session.Score(),
		Misses:            e.stats.Misses,
		ResponseComplete:  e.assembler != nil && e.assembler.IsComplete(),
	}
}

func (e *Encounter) checkRule(now time.Time) {
	rule := e.level.Rule()
	if rule == nil {
		return
	}
	ok, err := rule.Eval(e.Facts())
	if err != nil {
		log.Printf("[encounter] %v", err)
		return
	}
	if ok {
		e.completeLevel()
		e.dispatch()
	}
}

func (e *Encounter) completeLevel() {
	e.status = StatusComplete
	e.scheduler.CancelAll()
	e.resolver.Reset()
	e.addScore(constant.ScoreLevelBonus)
	e.queue.Emit(event.EventLevelComplete, &event.LevelEndPayload{Level: e.level.Key, Score: e.session.Score()})
	e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundLevelComplete})
	log.Printf("[encounter] level %s complete, score %d", e.level.Key, e.session.Score())
}

func (e *Encounter) gameOver() {
	e.status = StatusGameOver
	e.scheduler.CancelAll()
	e.resolver.Reset()
	e.queue.Emit(event.EventGameOver, &event.LevelEndPayload{Level: e.level.Key, Score: e.session.Score()})
	e.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundGameOver})
	log.Printf("[encounter] game over on %s, score %d", e.level.Key, e.session.Score())
}

// Events returns and clears the events produced since the last call
func (e *Encounter) Events() []event.GameEvent {
	out := e.outbox
	e.outbox = nil
	return out
}

// MissFlash reports whether the miss indicator is lit
func (e *Encounter) MissFlash() bool {
	return e.clock.Now().Before(e.missUntil)
}

// Elapsed returns the time since the level started
func (e *Encounter) Elapsed() time.Duration {
	return e.clock.Now().Sub(e.startedAt)
}

func (e *Encounter) Status() Status                 { return e.status }
func (e *Encounter) Stats() Stats                   { return e.stats }
func (e *Encounter) Level() *level.Config           { return e.level }
func (e *Encounter) Session() *engine.Session       { return e.session }
func (e *Encounter) World() *engine.World           { return e.world }
func (e *Encounter) Player() *component.Player      { return e.player }
func (e *Encounter) Resolver() *Resolver            { return e.resolver }
func (e *Encounter) Assembler() *response.Assembler { return e.assembler }
func (e *Encounter) Scheduler() *engine.Scheduler   { return e.scheduler }
func (e *Encounter) Spawner() *SpawnSystem          { return e.spawner }
func (e *Encounter) Bounds() vmath.Rect             { return e.bounds }
