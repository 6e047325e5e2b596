package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave of fixed length, optionally sweeping its frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second added to freq
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency changes linearly by sweep Hz/s
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		f := o.freq + o.sweep*t
		if f < 0 {
			f = 0
		}
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; beep volume is logarithmic so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateShotSound generates a short descending zap
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(constant.ShotSoundFreq, -6000, constant.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.ShotSoundDuration, constant.ShotSoundAttack, constant.ShotSoundRelease, rate)
	return newVolume(shaped, cfg.gain(core.SoundShot))
}

// CreateMissSound generates a harsh low buzz for typing errors
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	shaped := tone(constant.MissSoundFreq, constant.MissSoundDuration, constant.MissSoundAttack, constant.MissSoundRelease, WaveSaw, rate)
	return newVolume(shaped, cfg.gain(core.SoundMiss))
}

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.ExplosionSoundDuration

	noise := tone(0, d, constant.ExplosionSoundAttack, constant.ExplosionSoundRelease, WaveNoise, rate)
	rumble := NewEnvelope(NewSweep(90, -150, d, WaveSine, rate), d, constant.ExplosionSoundAttack, constant.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, cfg.gain(core.SoundExplosion))
}

// CreateCollectSound generates a rising two-note chime
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := tone(987.77, constant.CollectSoundNote1Duration, constant.CollectSoundAttack, constant.CollectSoundNote1Release, WaveSquare, rate)
	n2 := tone(1318.51, constant.CollectSoundNote2Duration, constant.CollectSoundAttack, constant.CollectSoundNote2Release, WaveSquare, rate)

	return newVolume(beep.Seq(n1, n2), cfg.gain(core.SoundCollect))
}

// CreateDamageSound generates a deep falling thud
func CreateDamageSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.DamageSoundDuration
	osc := NewSweep(constant.DamageSoundFreq, -120, d, WaveTriangle, rate)
	shaped := NewEnvelope(osc, d, constant.DamageSoundAttack, constant.DamageSoundRelease, rate)
	return newVolume(shaped, cfg.gain(core.SoundDamage))
}

// fanfare plays a note sequence with shared envelope settings
func fanfare(freqs []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, constant.FanfareNoteDuration, constant.FanfareAttack, constant.FanfareRelease, wave, rate))
	}
	return beep.Seq(notes...)
}

// CreateLevelCompleteSound generates an ascending major arpeggio
func CreateLevelCompleteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	// C5 E5 G5 C6
	seq := fanfare([]float64{523.25, 659.25, 783.99, 1046.50}, WaveTriangle, rate)
	return newVolume(seq, cfg.gain(core.SoundLevelComplete))
}

// CreateGameOverSound generates a descending minor line
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	// G4 Eb4 C4 G3
	seq := fanfare([]float64{392.00, 311.13, 261.63, 196.00}, WaveSaw, rate)
	return newVolume(seq, cfg.gain(core.SoundGameOver))
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundShot:
		return CreateShotSound(cfg)
	case core.SoundMiss:
		return CreateMissSound(cfg)
	case core.SoundExplosion:
		return CreateExplosionSound(cfg)
	case core.SoundCollect:
		return CreateCollectSound(cfg)
	case core.SoundDamage:
		return CreateDamageSound(cfg)
	case core.SoundLevelComplete:
		return CreateLevelCompleteSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
