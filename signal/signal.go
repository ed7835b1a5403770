// Package signal carries the player's intent from an asynchronous sensing
// source into the simulation without locking
package signal

import "fmt"

// Action is the discrete action part of a control signal
type Action uint8

const (
	ActionNone Action = iota
	ActionJump
	ActionDuck
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionJump:
		return "jump"
	case ActionDuck:
		return "duck"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ControlSignal is the per-tick intent: a lane in {-1, 0, 1} and an optional action
// The zero value is the neutral signal (center lane, no action)
type ControlSignal struct {
	Lane   int
	Action Action
}

// Neutral is the value used before any source has produced a signal
var Neutral = ControlSignal{}

// Normalize clamps Lane into {-1, 0, 1} and maps unknown actions to ActionNone
func (s ControlSignal) Normalize() ControlSignal {
	switch {
	case s.Lane < -1:
		s.Lane = -1
	case s.Lane > 1:
		s.Lane = 1
	}
	if s.Action > ActionDuck {
		s.Action = ActionNone
	}
	return s
}

func (s ControlSignal) String() string {
	return fmt.Sprintf("lane=%d action=%s", s.Lane, s.Action)
}

// Reader is the pull side used by the simulation once per tick
type Reader interface {
	Load() ControlSignal
}
