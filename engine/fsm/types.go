// Package fsm is a small generic finite state machine with lifecycle actions
// and event-driven transitions
package fsm

import "time"

// StateID is a unique identifier for a state
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// Event identifies an external trigger; 0 is reserved for tick transitions
type Event int

// EventTick is evaluated on every Update
const EventTick Event = 0

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// Node is a single state with its lifecycle hooks
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions are evaluated in registration order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    Event
	Guard    GuardFunc[T] // nil = always true
}

// Machine is the runtime; T is the context passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	initialID   StateID
	activeID    StateID
	timeInState time.Duration
}
