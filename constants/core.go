package constants

import "time"

// Loop timing
const (
	// DefaultFrameRate is the target render and tick rate when none is configured
	DefaultFrameRate = 30

	// MaxTickDelta clamps a single tick so a stalled frame cannot skip whole steps
	MaxTickDelta = 250 * time.Millisecond
)

// Event bus sizing
const (
	// EventQueueSize is the preallocated capacity of the pending event buffer
	// A busy frame may exceed it; the buffer grows rather than dropping events
	EventQueueSize = 512
)
