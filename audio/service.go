package audio

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/junk-mart/constants"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool
	log      *slog.Logger
}

// NewService creates a new audio service
func NewService(log *slog.Logger) *AudioService {
	if log == nil {
		log = slog.Default()
	}
	return &AudioService{log: log}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state (default unmuted)
// args[1]: float64 - master gain in [0,1] (default constants.DefaultVolume)
func (s *AudioService) Init(args ...any) error {
	muted := false
	gain := constants.DefaultVolume
	if len(args) > 0 {
		if v, ok := args[0].(bool); ok {
			muted = v
		}
	}
	if len(args) > 1 {
		if v, ok := args[1].(float64); ok {
			gain = v
		}
	}
	s.manager = NewSoundManager(gain, muted)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.log.Warn("audio disabled", "error", err)
		s.disabled.Store(true)
		s.manager = nil
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the Player for the front-end, nil if audio is disabled
func (s *AudioService) Player() Player {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	return s.manager
}
