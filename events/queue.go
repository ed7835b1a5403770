package events

import (
	"sync"

	"github.com/lixenwraith/body-surfer/constants"
)

// EventQueue is a bounded FIFO of game events
// Producers and the consumer may live on different goroutines
// Overflow: oldest events are dropped when full
type EventQueue struct {
	mu      sync.Mutex
	events  []GameEvent
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, constants.EventQueueSize),
	}
}

// Push appends an event, dropping the oldest one if the queue is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) >= constants.EventQueueSize {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
		eq.dropped++
	}
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Dropped returns how many events were lost to overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
