package system

import (
	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/event"
	"github.com/lixenwraith/space-engineer/vmath"
)

// ResolverState is the engagement state of the targeting resolver
type ResolverState uint8

const (
	StateIdle ResolverState = iota
	StateEngaged
)

func (s ResolverState) String() string {
	if s == StateEngaged {
		return "engaged"
	}
	return "idle"
}

// ShotOutcome classifies a keystroke
type ShotOutcome uint8

const (
	OutcomeMiss ShotOutcome = iota
	OutcomeHit
)

// ShotResult describes what a keystroke did
type ShotResult struct {
	Outcome   ShotOutcome
	Target    component.Typeable // Target the letter was consumed from, nil on miss
	Acquired  bool               // Keystroke bound a new target
	Completed bool               // Keystroke consumed the final letter
}

// Resolver binds keystrokes to at most one target at a time
// Idle: the next matching letter selects the nearest candidate
// Engaged: letters go to the bound target until it completes or is detached
type Resolver struct {
	state  ResolverState
	target component.Typeable
	queue  *event.Queue
}

// NewResolver creates an idle resolver emitting into queue
func NewResolver(queue *event.Queue) *Resolver {
	return &Resolver{queue: queue}
}

func (r *Resolver) State() ResolverState {
	return r.state
}

// Target returns the bound target, nil when idle
func (r *Resolver) Target() component.Typeable {
	return r.target
}

// HandleKey processes one keystroke
// origin is the player position used for distance ranking, candidates are the live typeables in creation order
func (r *Resolver) HandleKey(letter rune, origin vmath.Vec2, candidates []component.Typeable) ShotResult {
	if r.state == StateEngaged && (r.target == nil || !r.target.IsActive()) {
		// Target vanished without a detach notification
		r.release()
	}

	if r.state == StateEngaged {
		return r.continueTarget(letter)
	}
	return r.acquire(letter, origin, candidates)
}

func (r *Resolver) acquire(letter rune, origin vmath.Vec2, candidates []component.Typeable) ShotResult {
	best := selectNearest(letter, origin, candidates)
	if best == nil {
		r.emit(event.EventTypingMiss, &event.MissPayload{Letter: letter})
		return ShotResult{Outcome: OutcomeMiss}
	}

	r.state = StateEngaged
	r.target = best
	if m, ok := best.(component.Marker); ok {
		m.SetTargeted(true)
	}
	r.emit(event.EventTargetAcquired, &event.TargetPayload{Target: best.Entity(), Kind: best.Kind()})

	res := r.fire(letter, true)
	res.Acquired = true
	return res
}

func (r *Resolver) continueTarget(letter rune) ShotResult {
	if !r.target.CheckLetter(letter) {
		r.emit(event.EventTypingMiss, &event.MissPayload{Letter: letter, Engaged: true})
		return ShotResult{Outcome: OutcomeMiss}
	}
	return r.fire(letter, false)
}

// fire consumes the letter from the bound target and completes it when the buffer empties
func (r *Resolver) fire(letter rune, acquired bool) ShotResult {
	target := r.target
	next, _ := target.NextLetter()
	target.ConsumeLetter()
	completed := target.IsCompleted()

	r.emit(event.EventShotFired, &event.ShotFiredPayload{
		Target:   target.Entity(),
		Kind:     target.Kind(),
		Letter:   next,
		Last:     completed,
		Acquired: acquired,
	})

	if completed {
		r.emit(event.EventTargetCompleted, &event.TargetCompletedPayload{
			Target: target.Entity(),
			Kind:   target.Kind(),
			Word:   target.OriginalWord(),
		})
		r.release()
	}

	return ShotResult{
		Outcome:   OutcomeHit,
		Target:    target,
		Completed: completed,
	}
}

// Detach releases the target when it is the given entity
// Safe to call while idle or with a stale id; returns whether a detachment happened
func (r *Resolver) Detach(entity core.Entity) bool {
	if r.state != StateEngaged || r.target == nil || r.target.Entity() != entity {
		return false
	}
	kind := r.target.Kind()
	r.release()
	r.emit(event.EventTargetDetached, &event.TargetPayload{Target: entity, Kind: kind})
	return true
}

// Reset returns to idle without events, used on level restart
func (r *Resolver) Reset() {
	r.release()
}

func (r *Resolver) release() {
	if r.target != nil {
		if m, ok := r.target.(component.Marker); ok {
			m.SetTargeted(false)
		}
	}
	r.target = nil
	r.state = StateIdle
}

func (r *Resolver) emit(t event.EventType, payload any) {
	if r.queue != nil {
		r.queue.Emit(t, payload)
	}
}

// selectNearest returns the active, uncompleted candidate accepting letter closest to origin
// Equal distances resolve to the lowest entity id, which is the earliest created
func selectNearest(letter rune, origin vmath.Vec2, candidates []component.Typeable) component.Typeable {
	var best component.Typeable
	bestDist := 0.0
	for _, c := range candidates {
		if c == nil || !c.IsActive() || c.IsCompleted() || !c.CheckLetter(letter) {
			continue
		}
		d := vmath.V2MagSq(vmath.V2Sub(c.Position(), origin))
		if best == nil || d < bestDist || (d == bestDist && c.Entity() < best.Entity()) {
			best = c
			bestDist = d
		}
	}
	return best
}
