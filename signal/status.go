package signal

import (
	"sync/atomic"
)

// Status describes whether a source is currently producing signals
type Status uint32

const (
	// StatusPending means the source is starting and has not produced anything yet
	StatusPending Status = iota
	// StatusActive means the source is connected and publishing
	StatusActive
	// StatusUnavailable means the source failed or disconnected, readers fall back
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

type statusRecord struct {
	status Status
	msg    string
}

type statusCell struct {
	name string
	ptr  atomic.Pointer[statusRecord]
}

func (c *statusCell) store(st Status, msg string) {
	c.ptr.Store(&statusRecord{status: st, msg: msg})
}

func (c *statusCell) load() (Status, string) {
	if r := c.ptr.Load(); r != nil {
		return r.status, r.msg
	}
	return StatusPending, ""
}

// Fallback reads Primary while it is Active and Secondary otherwise
// Used to keep the game playable on the keyboard when the pose source is gone
type Fallback struct {
	Primary   *Slot
	Secondary *Slot
}

// Load implements Reader
func (f Fallback) Load() ControlSignal {
	if f.Primary != nil {
		if st, _ := f.Primary.Status(); st == StatusActive {
			return f.Primary.Load()
		}
	}
	if f.Secondary != nil {
		return f.Secondary.Load()
	}
	return Neutral
}

// Active returns the slot currently being read, nil if none
func (f Fallback) Active() *Slot {
	if f.Primary != nil {
		if st, _ := f.Primary.Status(); st == StatusActive {
			return f.Primary
		}
	}
	return f.Secondary
}
