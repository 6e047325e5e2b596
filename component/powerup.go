package component

// Powerup is a falling word orb whose word fills a response blank when collected
type Powerup struct {
	Body
	Word

	Collected bool
}

// CheckLetter reports whether the powerup accepts r as its next letter
func (p *Powerup) CheckLetter(r rune) bool {
	if !p.Active || p.Collected {
		return false
	}
	return p.Word.CheckLetter(r)
}

func (p *Powerup) Kind() Kind {
	return KindPowerup
}
