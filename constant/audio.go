package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 40 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
	ShotSoundFreq     = 880.0
)

// Miss Sound
const (
	MissSoundDuration = 120 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 30 * time.Millisecond
	MissSoundFreq     = 120.0
)

// Explosion Sound
const (
	ExplosionSoundDuration = 300 * time.Millisecond
	ExplosionSoundAttack   = 2 * time.Millisecond
	ExplosionSoundRelease  = 250 * time.Millisecond
)

// Collect Sound
const (
	CollectSoundNote1Duration = 80 * time.Millisecond
	CollectSoundNote2Duration = 220 * time.Millisecond
	CollectSoundAttack        = 5 * time.Millisecond
	CollectSoundNote1Release  = 40 * time.Millisecond
	CollectSoundNote2Release  = 160 * time.Millisecond
)

// Damage Sound
const (
	DamageSoundDuration = 250 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 150 * time.Millisecond
	DamageSoundFreq     = 70.0
)

// Fanfare Sound (level complete / game over)
const (
	FanfareNoteDuration = 150 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareRelease      = 100 * time.Millisecond
)
