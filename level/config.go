// Package level loads and validates level definitions and their progression order
package level

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/space-engineer/core"
	"github.com/lixenwraith/space-engineer/response"
)

//go:embed levels.yaml
var defaultLevels []byte

// Config is one level definition
type Config struct {
	Key             string   `yaml:"key"`
	Title           string   `yaml:"title"`
	Intro           string   `yaml:"intro"`
	Question        string   `yaml:"question"`
	Speed           float64  `yaml:"speed"`
	EnemyLimit      int      `yaml:"enemy_limit"`
	SpawnIntervalMs int      `yaml:"spawn_interval_ms"`
	WordList        []string `yaml:"word_list"`
	ResponseText    string   `yaml:"response_text"`
	CorrectWords    []string `yaml:"correct_words"`
	Completion      string   `yaml:"completion"`
	Boss            bool     `yaml:"boss"`

	rule *Rule
}

type levelFile struct {
	Levels []*Config `yaml:"levels"`
}

// SpawnInterval returns the enemy spawn period
func (c *Config) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// HasResponse reports whether the level is completed by assembling a response
func (c *Config) HasResponse() bool {
	return len(c.CorrectWords) > 0
}

// Rule returns the compiled completion rule, nil when the level has none
func (c *Config) Rule() *Rule {
	return c.rule
}

// Validate checks the fields and compiles the completion rule
func (c *Config) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidLevel)
	}
	if len(c.WordList) == 0 {
		return fmt.Errorf("%w: %s: empty word list", ErrInvalidLevel, c.Key)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: %s: speed must be positive", ErrInvalidLevel, c.Key)
	}
	if c.EnemyLimit <= 0 {
		return fmt.Errorf("%w: %s: enemy limit must be positive", ErrInvalidLevel, c.Key)
	}
	if c.SpawnIntervalMs <= 0 {
		return fmt.Errorf("%w: %s: spawn interval must be positive", ErrInvalidLevel, c.Key)
	}

	for _, w := range c.WordList {
		if !typeable(w) {
			return fmt.Errorf("%w: %s: word %q is not typeable", ErrInvalidLevel, c.Key, w)
		}
	}
	for _, w := range c.CorrectWords {
		if !typeable(w) {
			return fmt.Errorf("%w: %s: correct word %q is not typeable", ErrInvalidLevel, c.Key, w)
		}
	}

	if blanks := response.CountBlanks(c.ResponseText); blanks != len(c.CorrectWords) {
		return fmt.Errorf("%w: %s: %d blanks for %d correct words", ErrInvalidLevel, c.Key, blanks, len(c.CorrectWords))
	}

	if c.Completion == "" {
		if !c.HasResponse() {
			return fmt.Errorf("%s: %w", c.Key, ErrNoCompletionRule)
		}
		return nil
	}

	rule, err := CompileRule(c.Completion)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidLevel, c.Key, err)
	}
	c.rule = rule
	return nil
}

// typeable reports whether every letter of the folded word is in a-z
func typeable(w string) bool {
	f := core.FoldWord(w)
	if f == "" {
		return false
	}
	for _, r := range f {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Parse decodes and validates a level file
func Parse(data []byte) (*Progression, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode level yaml: %w", err)
	}
	for _, c := range f.Levels {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return NewProgression(f.Levels)
}

// Load reads a level file from path, the embedded set when path is empty
func Load(path string) (*Progression, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded level set
func Default() (*Progression, error) {
	return Parse(defaultLevels)
}
