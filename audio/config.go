package audio

import (
	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64                    // 0.0-1.0
	EffectVolumes map[core.SoundType]float64 // Per-cue gain, 1.0 when absent
}

// DefaultAudioConfig returns audio enabled at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constant.AudioSampleRate,
		MasterVolume: 1.0,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundShot:          0.3,
			core.SoundMiss:          0.5,
			core.SoundExplosion:     0.6,
			core.SoundCollect:       0.5,
			core.SoundDamage:        0.7,
			core.SoundLevelComplete: 0.6,
			core.SoundGameOver:      0.6,
		},
	}
}

// SetMasterVolume clamps v into 0.0-1.0
func (c *AudioConfig) SetMasterVolume(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	c.MasterVolume = v
}

// gain returns the effective volume for a cue
func (c *AudioConfig) gain(s core.SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
