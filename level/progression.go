package level

import (
	"fmt"
)

// Progression is the ordered level sequence of one run
type Progression struct {
	levels []*Config
	index  map[string]int
}

// NewProgression builds a progression, keys must be unique
func NewProgression(levels []*Config) (*Progression, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels defined", ErrInvalidLevel)
	}
	p := &Progression{
		levels: levels,
		index:  make(map[string]int, len(levels)),
	}
	for i, c := range levels {
		if _, dup := p.index[c.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %s", ErrInvalidLevel, c.Key)
		}
		p.index[c.Key] = i
	}
	return p, nil
}

// Get returns the level with the key
func (p *Progression) Get(key string) (*Config, error) {
	i, ok := p.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, key)
	}
	return p.levels[i], nil
}

// First returns the opening level
func (p *Progression) First() *Config {
	return p.levels[0]
}

// Next returns the level after key, false when key is last or unknown
func (p *Progression) Next(key string) (*Config, bool) {
	i, ok := p.index[key]
	if !ok || i+1 >= len(p.levels) {
		return nil, false
	}
	return p.levels[i+1], true
}

// IsLast reports whether key is the final level
func (p *Progression) IsLast(key string) bool {
	i, ok := p.index[key]
	return ok && i == len(p.levels)-1
}

// Number returns the 1-based position of key, 0 when unknown
func (p *Progression) Number(key string) int {
	i, ok := p.index[key]
	if !ok {
		return 0
	}
	return i + 1
}

// Total returns the number of levels
func (p *Progression) Total() int {
	return len(p.levels)
}

// All returns the levels in order
func (p *Progression) All() []*Config {
	out := make([]*Config, len(p.levels))
	copy(out, p.levels)
	return out
}
