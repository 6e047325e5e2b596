package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/space-engineer/core"
)

const testRate = beep.SampleRate(44100)

func stream(t *testing.T, s beep.Streamer, n int) [][2]float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		t.Fatalf("streamed %d/%d samples, ok=%v", got, n, ok)
	}
	return buf
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name  string
		wave  WaveType
		freq  float64
		check func(v float64) bool
	}{
		{"sine", WaveSine, 440, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square is two-level", WaveSquare, 220, func(v float64) bool { return v == -1 || v == 1 }},
		{"saw", WaveSaw, 110, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"noise", WaveNoise, 0, func(v float64) bool { return v >= -1 && v <= 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 50*time.Millisecond, tt.wave, testRate)
			for i, smp := range stream(t, osc, 200) {
				if !tt.check(smp[0]) || smp[0] != smp[1] {
					t.Fatalf("sample %d = %v", i, smp)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Err() = %v", osc.Err())
			}
		})
	}
}

func TestOscillatorNoiseVaries(t *testing.T) {
	buf := stream(t, NewOscillator(0, 20*time.Millisecond, WaveNoise, testRate), 64)
	for _, smp := range buf[1:] {
		if smp[0] != buf[0][0] {
			return
		}
	}
	t.Error("noise produced a constant signal")
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	d := 10 * time.Millisecond
	osc := NewOscillator(440, d, WaveSine, testRate)

	buf := make([][2]float64, 2*testRate.N(d))
	if n, _ := osc.Stream(buf); n > testRate.N(d) {
		t.Errorf("streamed %d samples past a %d sample tone", n, testRate.N(d))
	}
	if n, ok := osc.Stream(buf[:8]); ok || n != 0 {
		t.Errorf("finished tone streamed n=%d ok=%v", n, ok)
	}
}

func TestEnvelopeRampsUp(t *testing.T) {
	d, attack := 100*time.Millisecond, 50*time.Millisecond
	env := NewEnvelope(NewOscillator(100, d, WaveSquare, testRate), d, attack, 10*time.Millisecond, testRate)

	buf := stream(t, env, testRate.N(attack))
	if first, last := abs(buf[0][0]), abs(buf[len(buf)-1][0]); first >= last {
		t.Errorf("attack did not ramp: first=%f last=%f", first, last)
	}
	if env.Err() != nil {
		t.Errorf("Err() = %v", env.Err())
	}
}

// TestGetSoundEffect verifies every cue builds and produces samples
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			sound := GetSoundEffect(s, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %s", s)
			}

			samples := make([][2]float64, 500)
			n, ok := sound.Stream(samples)
			if !ok {
				t.Errorf("Expected %s sound to stream successfully", s)
			}
			if n == 0 {
				t.Errorf("Expected %s sound to produce samples", s)
			}
		})
	}
}

// TestSoundEffectsTerminate verifies one-shot cues end instead of looping
func TestSoundEffectsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := beep.SampleRate(cfg.SampleRate).N(2 * time.Second)

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		sound := GetSoundEffect(s, cfg)
		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := sound.Stream(buf)
			total += n
			if !ok || total > limit {
				break
			}
		}
		if total > limit {
			t.Errorf("Sound %s did not terminate within 2s", s)
		}
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	cfg := DefaultAudioConfig()
	if sound := GetSoundEffect(core.SoundType(999), cfg); sound != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectVolume verifies zero master volume silences cues
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()

	for _, vol := range []float64{0.0, 0.5, 1.0} {
		cfg.MasterVolume = vol
		sound := CreateMissSound(cfg)

		samples := make([][2]float64, 1000)
		n, ok := sound.Stream(samples)
		if !ok || n == 0 {
			t.Errorf("Expected samples at volume %f", vol)
		}

		if vol == 0.0 {
			for i := 0; i < n; i++ {
				if abs(samples[i][0]) > 0.01 {
					t.Fatalf("Expected near-zero amplitude for zero volume, got %f", samples[i][0])
				}
			}
		}
	}
}

// TestOscillatorTriangle verifies triangle wave range and symmetry
func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(441.0, 50*time.Millisecond, WaveTriangle, rate)

	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)

	minV, maxV := 1.0, -1.0
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Triangle sample %d out of range: %f", i, v)
		}
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	if maxV < 0.9 || minV > -0.9 {
		t.Errorf("Expected a full-swing wave over one period, got [%f, %f]", minV, maxV)
	}
}

// TestSweepChangesPitch verifies a falling sweep crosses zero less often later on
func TestSweepChangesPitch(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweep(2000, -3000, 500*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, rate.N(500*time.Millisecond))
	n, _ := osc.Stream(samples)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				c++
			}
		}
		return c
	}

	early := crossings(0, n/4)
	late := crossings(3*n/4, n)
	if late >= early {
		t.Errorf("Expected fewer zero crossings late in the sweep, early=%d late=%d", early, late)
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, rate)

	// Create volume effect with zero volume
	vol := newVolume(osc, 0.0)

	if vol == nil {
		t.Fatal("Expected non-nil volume effect")
	}

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)

	if !ok {
		t.Error("Expected volume effect to stream")
	}

	if n == 0 {
		t.Error("Expected volume effect to produce samples")
	}
}

// Helper function for absolute value
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
