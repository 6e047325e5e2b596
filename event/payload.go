package event

import (
	"github.com/lixenwraith/space-engineer/component"
	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/vmath"
)

// ShotFiredPayload carries the target and the letter consumed from it
type ShotFiredPayload struct {
	Target   core.Entity
	Kind     component.Kind
	Letter   rune
	Last     bool // Letter completed the target
	Acquired bool // Keystroke also acquired the target
}

// MissPayload carries the rejected letter
type MissPayload struct {
	Letter  rune
	Engaged bool
}

// TargetPayload identifies a target
type TargetPayload struct {
	Target core.Entity
	Kind   component.Kind
}

// TargetCompletedPayload carries the completed target and its original word
type TargetCompletedPayload struct {
	Target core.Entity
	Kind   component.Kind
	Word   string
}

// EntityPayload describes a removed entity
type EntityPayload struct {
	Entity core.Entity
	Kind   component.Kind
	Word   string
	Pos    vmath.Vec2
}

// PowerupCollectedPayload carries the collected word and the assembler's verdict
type PowerupCollectedPayload struct {
	Entity   core.Entity
	Word     string
	Accepted bool
}

// PlayerDamagedPayload carries the enemy that reached the player and the remaining lives
type PlayerDamagedPayload struct {
	Entity core.Entity
	Lives  int
}

// ScorePayload carries the new score and the increment
type ScorePayload struct {
	Score int
	Delta int
}

// ResponseProgressPayload carries the assembled text and progress
type ResponseProgressPayload struct {
	Text    string
	Percent int
}

// LevelEndPayload carries the finished level and session score
type LevelEndPayload struct {
	Level string
	Score int
}

// SoundRequestPayload carries the requested cue
type SoundRequestPayload struct {
	SoundType core.SoundType
}
