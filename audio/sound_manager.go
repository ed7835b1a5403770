package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/body-surfer/constants"
)

// SoundManager owns the speaker and a mixer that one-shot cues are added to
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// play routes a streamer to the output, replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.play = sm.playSpeaker
	return sm
}

// Initialize opens the speaker and starts the mixer
// On failure the manager stays silent and Play becomes a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sampleRate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferSize)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a one-shot cue, dropped when muted or not initialized
func (sm *SoundManager) Play(t SoundType) bool {
	if sm.muted.Load() {
		return false
	}
	sm.mu.Lock()
	ready := sm.initialized
	sm.mu.Unlock()
	if !ready {
		return false
	}

	s := GetSoundEffect(t, sm.config)
	if s == nil {
		return false
	}
	sm.play(s)
	return true
}

func (sm *SoundManager) playSpeaker(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether cues are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Cleanup drops every playing cue; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
