package component

// Enemy is a descending word-bearing ship
// Completing its word dooms it; it is removed when the last projectile lands
type Enemy struct {
	Body
	Word

	Targeted bool
	Stunned  bool
	InFlight int // Projectiles travelling toward this enemy
}

// CheckLetter reports whether the enemy accepts r as its next letter
func (e *Enemy) CheckLetter(r rune) bool {
	return e.Active && e.Word.CheckLetter(r)
}

func (e *Enemy) Kind() Kind {
	return KindEnemy
}

func (e *Enemy) SetTargeted(v bool) {
	e.Targeted = v
}

// Doomed reports whether the word is finished and the enemy only awaits its final impact
func (e *Enemy) Doomed() bool {
	return e.Active && e.IsCompleted()
}
