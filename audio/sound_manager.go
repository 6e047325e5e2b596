// Package audio synthesizes the game's sound cues and plays them through the system speaker
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/space-engineer/constant"
	"github.com/lixenwraith/space-engineer/core"
)

// SoundManager mixes cues into a single speaker stream
// Safe for concurrent use; every method degrades to a no-op before Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time
}

// NewSoundManager creates a sound manager, a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker; disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue; repeats of the same cue closer than MinSoundGap are dropped
func (sm *SoundManager) Play(s core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || !sm.admit(s) {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// admit applies the per-cue rate limit, caller holds mu
func (sm *SoundManager) admit(s core.SoundType) bool {
	if s < 0 || s >= core.SoundTypeCount {
		return false
	}
	now := sm.now()
	if !sm.lastPlayed[s].IsZero() && now.Sub(sm.lastPlayed[s]) < constant.MinSoundGap {
		return false
	}
	sm.lastPlayed[s] = now
	return true
}

// SetVolume changes the master volume for cues played afterwards
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.SetMasterVolume(v)
}

// ToggleMute flips effect muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	log.Printf("[audio] muted=%v", sm.muted)
	return sm.muted
}

// IsMuted reports whether cues are being dropped
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// NopPlayer discards every cue, used when audio is disabled or unavailable
type NopPlayer struct{}

func (NopPlayer) Play(core.SoundType) {}
