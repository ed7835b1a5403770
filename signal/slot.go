package signal

import (
	"sync/atomic"
)

// Word layout: bit 15 = written flag, bits 8-9 = lane+1, bits 0-7 = action
const (
	writtenBit = 1 << 15
	laneShift  = 8
	laneMask   = 0x3
	actionMask = 0xff
)

// Slot is a single-slot, latest-value-wins mailbox for a ControlSignal
// Both fields live in one atomic word so a reader never sees a lane from one
// write paired with an action from another
// Intended for one writer (the source worker) and any number of readers
type Slot struct {
	word   atomic.Uint32
	writes atomic.Uint64
	status statusCell
}

// NewSlot creates a slot in StatusPending reading as Neutral
func NewSlot(name string) *Slot {
	s := &Slot{}
	s.status.name = name
	return s
}

// Store publishes a new signal, replacing any previous value
func (s *Slot) Store(sig ControlSignal) {
	sig = sig.Normalize()
	w := uint32(writtenBit) |
		uint32(sig.Lane+1)&laneMask<<laneShift |
		uint32(sig.Action)&actionMask
	s.word.Store(w)
	s.writes.Add(1)
}

// Load returns the latest signal, or Neutral if nothing was stored yet
func (s *Slot) Load() ControlSignal {
	w := s.word.Load()
	if w&writtenBit == 0 {
		return Neutral
	}
	return ControlSignal{
		Lane:   int(w>>laneShift&laneMask) - 1,
		Action: Action(w & actionMask),
	}
}

// Writes returns the number of Store calls, used for freshness metrics
func (s *Slot) Writes() uint64 {
	return s.writes.Load()
}

// Reset returns the slot to Neutral without touching its status
func (s *Slot) Reset() {
	s.word.Store(0)
}

// Name returns the source name given at construction
func (s *Slot) Name() string {
	return s.status.name
}

// Status returns the source availability and its last message
func (s *Slot) Status() (Status, string) {
	return s.status.load()
}

// SetStatus records availability of the source feeding this slot
func (s *Slot) SetStatus(st Status, msg string) {
	s.status.store(st, msg)
}
