package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState registers a state; id must be non-zero and unique
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	if id == StateNone {
		panic("fsm: StateNone cannot be registered")
	}
	if _, exists := m.nodes[id]; exists {
		panic(fmt.Sprintf("fsm: duplicate state %d (%s)", id, name))
	}
	n := &Node[T]{ID: id, Name: name}
	m.nodes[id] = n
	return n
}

// AddTransition links from -> to on event, guarded by guard (may be nil)
func (m *Machine[T]) AddTransition(from StateID, ev Event, to StateID, guard GuardFunc[T]) {
	src, ok := m.nodes[from]
	if !ok {
		panic(fmt.Sprintf("fsm: transition from unknown state %d", from))
	}
	if _, ok := m.nodes[to]; !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state %d", to))
	}
	src.Transitions = append(src.Transitions, Transition[T]{TargetID: to, Event: ev, Guard: guard})
}

// Init enters the initial state and runs its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	m.initialID = initial
	m.activeID = initial
	m.timeInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update advances time in state, runs OnUpdate, then evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeID == StateNone {
		return
	}
	m.timeInState += dt

	node := m.nodes[m.activeID]
	for _, action := range node.OnUpdate {
		action(ctx)
	}
	m.fire(ctx, node, EventTick)
}

// HandleEvent applies the first matching transition of the active state
// Returns true if a transition happened
func (m *Machine[T]) HandleEvent(ctx T, ev Event) bool {
	if m.activeID == StateNone {
		return false
	}
	return m.fire(ctx, m.nodes[m.activeID], ev)
}

func (m *Machine[T]) fire(ctx T, node *Node[T], ev Event) bool {
	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition runs OnExit of the current state then OnEnter of the target
// A self transition re-runs both, which is how a state restarts itself
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	current := m.nodes[m.activeID]
	target := m.nodes[targetID]

	for _, action := range current.OnExit {
		action(ctx)
	}

	m.activeID = targetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Reset exits the active state and re-enters the initial one
func (m *Machine[T]) Reset(ctx T) error {
	if m.activeID != StateNone {
		for _, action := range m.nodes[m.activeID].OnExit {
			action(ctx)
		}
	}
	return m.Init(ctx, m.initialID)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeID
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if n, ok := m.nodes[m.activeID]; ok {
		return n.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
