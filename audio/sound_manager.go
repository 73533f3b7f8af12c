package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
)

// Player defines the minimal audio interface used by the front-end
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// SoundManager plays cached cues through the beep speaker
// Cues overlap freely on one mixer behind a master volume
type SoundManager struct {
	mu          sync.Mutex
	cache       *soundCache
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSoundManager creates a manager with master gain in [0,1]
func NewSoundManager(gain float64, muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cache: newSoundCache(),
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volumeLevel(gain),
			Silent:   muted,
		},
	}
}

// volumeLevel maps a linear gain in [0,1] to beep's base-2 exponent
// Zero gain maps to -Inf, which beep plays as silence
func volumeLevel(gain float64) float64 {
	return math.Log2(math.Max(0, math.Min(gain, 1)))
}

// Initialize opens the speaker and starts the master stream
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(format.SampleRate, format.SampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play starts a one-shot cue, returning false if it was not played
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.master.Silent {
		return false
	}
	buf := sm.cache.get(st)
	if buf == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	return true
}

// ToggleMute flips the master mute, returning the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = !sm.master.Silent
	return sm.master.Silent
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.master.Silent
}
