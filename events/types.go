package events

// EventType represents the type of shop event
type EventType int

const (
	// EventSoundRequest requests a one-shot sound cue
	// Trigger: turn handlers | Consumer: audio.System | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// EventAnimate starts a fire-and-forget animation
	// Trigger: turn handlers, hover | Consumer: render.Scene | Payload: *AnimatePayload
	EventAnimate

	// EventSpawnVisual creates the visual for a presented item
	// Trigger: PresentItem | Consumer: render.Scene | Payload: *SpawnVisualPayload
	EventSpawnVisual

	// EventDespawnVisual removes a presented item visual
	// Trigger: ResolveStatusEffects | Consumer: render.Scene | Payload: *DespawnVisualPayload
	EventDespawnVisual

	// EventNewsPosted carries a narration line for the feed panel
	// Trigger: any handler posting text | Consumer: render.FeedView, shop-sim printer | Payload: *NewsPayload
	EventNewsPosted

	// EventVisualState publishes global visual toggles
	// Trigger: status effect start/stop | Consumer: render.Scene | Payload: *VisualStatePayload
	EventVisualState

	// EventTurnComplete marks the end of a turn script
	// Trigger: EndOfTurn | Consumer: front-ends | Payload: *TurnCompletePayload
	EventTurnComplete

	// EventWin fires once when the war narrative has been fully published
	// Trigger: EndOfTurn | Consumer: front-ends | Payload: nil
	EventWin

	EventTypeCount
)

var typeNames = [EventTypeCount]string{
	"EventSoundRequest",
	"EventAnimate",
	"EventSpawnVisual",
	"EventDespawnVisual",
	"EventNewsPosted",
	"EventVisualState",
	"EventTurnComplete",
	"EventWin",
}

// String returns the registered event name
func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "EventUnknown"
	}
	return typeNames[t]
}

// GameEvent represents a single shop event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Engine tick that produced the event
}
