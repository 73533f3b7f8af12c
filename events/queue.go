package events

import (
	"sync"

	"github.com/lixenwraith/junk-mart/constants"
)

// EventQueue is the FIFO between the turn engine and the front-end
// Push never drops; the backlog grows until the next Consume
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	peak    int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, constants.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	eq.pending = append(eq.pending, event)
	if n := len(eq.pending); n > eq.peak {
		eq.peak = n
	}
	eq.mu.Unlock()
}

// Consume hands over all pending events in FIFO order
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if len(eq.pending) == 0 {
		return nil
	}
	batch := eq.pending
	eq.pending = make([]GameEvent, 0, max(constants.EventQueueSize, len(batch)))
	return batch
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Peak returns the largest backlog seen since the queue was created
func (eq *EventQueue) Peak() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.peak
}
