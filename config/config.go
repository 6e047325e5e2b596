// Package config resolves runtime settings from defaults, an optional YAML file,
// SPACE_ENGINEER_* environment variables and bound CLI flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/space-engineer/constant"
)

// EnvPrefix namespaces environment overrides (SPACE_ENGINEER_RANKING_DSN, ...)
const EnvPrefix = "SPACE_ENGINEER"

// Keys
const (
	KeyLevelsFile     = "levels_file"
	KeyRankingDialect = "ranking.dialect"
	KeyRankingDSN     = "ranking.dsn"
	KeyAudioEnabled   = "audio.enabled"
	KeyAudioVolume    = "audio.volume"
	KeyFieldWidth     = "field.width"
	KeyFieldHeight    = "field.height"
	KeyTickMS         = "tick_ms"
	KeySeed           = "seed"
	KeyDebug          = "debug"
	KeyKeymapFile     = "keymap_file"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

type RankingConfig struct {
	Dialect string `mapstructure:"dialect"`
	DSN     string `mapstructure:"dsn"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type FieldConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config is the resolved settings tree
type Config struct {
	LevelsFile string        `mapstructure:"levels_file"`
	Ranking    RankingConfig `mapstructure:"ranking"`
	Audio      AudioConfig   `mapstructure:"audio"`
	Field      FieldConfig   `mapstructure:"field"`
	TickMS     int           `mapstructure:"tick_ms"`
	Seed       int64         `mapstructure:"seed"`
	Debug      bool          `mapstructure:"debug"`
	KeymapFile string        `mapstructure:"keymap_file"` // Optional key binding overrides

	// Source is the config file actually read, empty when none
	Source string `mapstructure:"-"`
}

// TickInterval returns the host loop period
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// New returns a viper instance carrying defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLevelsFile, "")
	v.SetDefault(KeyRankingDialect, "sqlite")
	v.SetDefault(KeyRankingDSN, "")
	v.SetDefault(KeyAudioEnabled, true)
	v.SetDefault(KeyAudioVolume, 0.5)
	v.SetDefault(KeyFieldWidth, constant.FieldWidth)
	v.SetDefault(KeyFieldHeight, constant.FieldHeight)
	v.SetDefault(KeyTickMS, int(constant.DefaultTickInterval/time.Millisecond))
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyKeymapFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SearchPaths lists the implicit config file candidates in lookup order
func SearchPaths() []string {
	paths := []string{"space-engineer.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".space-engineer.yaml"))
	}
	return paths
}

// Load reads file (or the first existing search path when file is empty) into v and decodes it
// A missing implicit file is not an error; a missing explicit file is
func Load(v *viper.Viper, file string) (*Config, error) {
	source := file
	if source == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				source = p
				break
			}
		}
	}

	if source != "" {
		v.SetConfigFile(source)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", source, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size %dx%d must be positive", ErrInvalid, c.Field.Width, c.Field.Height)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms %d must be positive", ErrInvalid, c.TickMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	switch strings.ToLower(c.Ranking.Dialect) {
	case "", "sqlite", "sqlite3", "postgres", "postgresql", "mysql":
	default:
		return fmt.Errorf("%w: ranking.dialect %q", ErrInvalid, c.Ranking.Dialect)
	}
	return nil
}
