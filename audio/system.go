package audio

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/junk-mart/events"
)

// System plays the cues requested by the turn engine
// A nil player drops every request, so the shop runs unchanged without sound
type System struct {
	player Player
	log    *slog.Logger
}

func NewSystem(player Player, log *slog.Logger) *System {
	if log == nil {
		log = slog.Default()
	}
	return &System{player: player, log: log}
}

// EventTypes implements events.Handler
func (s *System) EventTypes() []events.EventType {
	return []events.EventType{events.EventSoundRequest}
}

// HandleEvent implements events.Handler
func (s *System) HandleEvent(_ time.Time, ev events.GameEvent) {
	payload, ok := ev.Payload.(*events.SoundRequestPayload)
	if !ok || s.player == nil {
		return
	}
	if !s.player.Play(payload.Sound) {
		s.log.Debug("sound not played", "sound", payload.Sound)
	}
}
