package constant

import "time"

// Play Field
const (
	// FieldWidth is the default logical play-field width in pixels
	FieldWidth = 720

	// FieldHeight is the default logical play-field height in pixels
	FieldHeight = 1080

	// PlayerOffsetY is the player's distance from the bottom edge
	PlayerOffsetY = 100

	// SpawnMarginX keeps spawned entities away from the side edges
	SpawnMarginX = 50

	// SpawnY is the vertical spawn line above the visible field
	SpawnY = -50

	// EscapeMargin is how far past the field an entity may drift before it is removed
	EscapeMargin = 60
)

// Player
const (
	// PlayerLives is the starting life count
	PlayerLives = 3

	// PlayerHitRadius is the distance at which an enemy reaches the player
	PlayerHitRadius = 40.0
)

// Scoring
const (
	// ScorePerLetter multiplies the destroyed enemy's word length
	ScorePerLetter = 10

	// ScorePowerupBonus is awarded for each accepted powerup word
	ScorePowerupBonus = 50

	// ScoreLevelBonus is awarded on level completion
	ScoreLevelBonus = 500
)

// Enemy
const (
	// EnemyInitialSpawnDelay is the delay before the first enemy of a level
	EnemyInitialSpawnDelay = 500 * time.Millisecond

	// EnemyStunDuration freezes an enemy after a non-final projectile impact
	EnemyStunDuration = 250 * time.Millisecond

	// EnemyKnockbackDistance pushes an enemy along the impact direction
	EnemyKnockbackDistance = 12.0

	// EnemyPowerupReach is the distance at which an enemy destroys a powerup
	EnemyPowerupReach = 40.0
)

// Powerup
const (
	// PowerupSpawnChance is the probability an attempt produces a powerup
	PowerupSpawnChance = 0.6

	// PowerupMaxActive caps concurrent powerups
	PowerupMaxActive = 4

	// PowerupSpeed is the descent speed in px/s
	PowerupSpeed = 80.0

	// PowerupIntervalFactor multiplies the level spawn interval for powerup attempts
	PowerupIntervalFactor = 2

	// PowerupInitialDelay is the delay before the first powerup attempt
	PowerupInitialDelay = 3 * time.Second

	// PowerupCollectRadius is the distance at which the player collects a powerup
	PowerupCollectRadius = 50.0

	// PowerupTargetOffsetY is the descent target's distance from the bottom edge
	PowerupTargetOffsetY = 150
)

// Projectile
const (
	// ProjectileSpeed is the projectile travel speed in px/s
	ProjectileSpeed = 800.0

	// ProjectileHitRadius is the impact distance
	ProjectileHitRadius = 30.0
)

// Feedback
const (
	// MissFlashDuration is how long the miss indicator stays lit
	MissFlashDuration = 300 * time.Millisecond

	// ExplosionDuration is how long a destroyed entity's explosion is drawn
	ExplosionDuration = 400 * time.Millisecond
)

// Ranking
const (
	// RankingMaxEntries caps the stored board
	RankingMaxEntries = 10

	// RankingMaxNameLength caps player names
	RankingMaxNameLength = 15

	// RankingDefaultName replaces empty names at the store boundary
	RankingDefaultName = "Anônimo"

	// NameInputDefault replaces empty names at the name-input screen
	NameInputDefault = "Jogador"

	// RankingDateLayout formats entry dates (pt-BR)
	RankingDateLayout = "02/01/2006"
)

// Response
const (
	// BlankMinLength is the minimum underscore run treated as a blank marker
	BlankMinLength = 6
)

// Loop
const (
	// DefaultTickInterval is the simulation tick of the terminal host
	DefaultTickInterval = 16 * time.Millisecond
)
