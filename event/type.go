package event

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventShotFired signals a letter consumed from the current target
	// Trigger: Targeting resolver on every accepted keystroke
	// Consumer: Encounter (projectile spawn, shot sound) | Payload: *ShotFiredPayload
	EventShotFired EventType = iota

	// EventTypingMiss signals a keystroke that matched nothing
	// Trigger: Targeting resolver (idle without candidates, or wrong letter while engaged)
	// Consumer: Encounter (miss flash, buzz, stats) | Payload: *MissPayload
	EventTypingMiss

	// EventTargetAcquired signals the resolver bound a new target
	// Trigger: Targeting resolver on idle keystroke with candidates | Payload: *TargetPayload
	EventTargetAcquired

	// EventTargetCompleted signals the current target's word was fully typed
	// Trigger: Targeting resolver | Consumer: Encounter (score or response routing)
	// Payload: *TargetCompletedPayload
	EventTargetCompleted

	// EventTargetDetached signals forced detachment of the current target
	// Trigger: Encounter when the target is destroyed other than by completion
	// Payload: *TargetPayload
	EventTargetDetached

	// EventEnemyDestroyed signals an enemy removed by its final projectile
	// Trigger: Projectile impact | Consumer: Renderer (explosion) | Payload: *EntityPayload
	EventEnemyDestroyed

	// EventPowerupCollected signals a powerup word routed to the response assembler
	// Trigger: Final projectile impact or player contact | Payload: *PowerupCollectedPayload
	EventPowerupCollected

	// EventPowerupDestroyed signals a powerup removed without collection
	// Trigger: Enemy reached the powerup, powerup escaped | Payload: *EntityPayload
	EventPowerupDestroyed

	// EventPlayerDamaged signals an enemy reached the player
	// Trigger: Collision pass | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventScoreChanged signals a score increase
	// Trigger: Enemy completion, accepted powerup, level completion | Payload: *ScorePayload
	EventScoreChanged

	// EventResponseProgress signals a new blank filled in the response text
	// Trigger: Accepted powerup word | Consumer: HUD | Payload: *ResponseProgressPayload
	EventResponseProgress

	// EventLevelComplete signals the level's completion criterion was met
	// Trigger: Encounter | Consumer: Scene controller | Payload: *LevelEndPayload
	EventLevelComplete

	// EventGameOver signals the last life was lost
	// Trigger: Encounter | Consumer: Scene controller | Payload: *LevelEndPayload
	EventGameOver

	// EventSoundRequest signals an audio cue
	// Trigger: Encounter | Consumer: Audio collaborator | Payload: *SoundRequestPayload
	EventSoundRequest
)

var eventNames = map[EventType]string{
	EventShotFired:        "shot_fired",
	EventTypingMiss:       "typing_miss",
	EventTargetAcquired:   "target_acquired",
	EventTargetCompleted:  "target_completed",
	EventTargetDetached:   "target_detached",
	EventEnemyDestroyed:   "enemy_destroyed",
	EventPowerupCollected: "powerup_collected",
	EventPowerupDestroyed: "powerup_destroyed",
	EventPlayerDamaged:    "player_damaged",
	EventScoreChanged:     "score_changed",
	EventResponseProgress: "response_progress",
	EventLevelComplete:    "level_complete",
	EventGameOver:         "game_over",
	EventSoundRequest:     "sound_request",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Time
}
