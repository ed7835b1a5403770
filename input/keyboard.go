package input

import (
	"context"
	"time"

	"github.com/lixenwraith/body-surfer/signal"
)

// Keyboard is the fallback control source
// Lane keys step the lane and it sticks; jump/duck keys hold the action for a
// short window that terminal key repeat keeps extending
// Run is the only writer of the slot, intents arrive over a channel
type Keyboard struct {
	slot    *signal.Slot
	hold    time.Duration
	poll    time.Duration
	intents chan IntentType
	now     func() time.Time

	lane        int
	action      signal.Action
	actionUntil time.Time
}

// NewKeyboard creates a keyboard source writing to slot
func NewKeyboard(slot *signal.Slot, hold, poll time.Duration) *Keyboard {
	return &Keyboard{
		slot:    slot,
		hold:    hold,
		poll:    poll,
		intents: make(chan IntentType, 32),
		now:     time.Now,
	}
}

// Submit forwards a control intent without blocking
// Returns false for non-control intents or when the buffer is full
func (k *Keyboard) Submit(t IntentType) bool {
	if !t.Control() {
		return false
	}
	select {
	case k.intents <- t:
		return true
	default:
		return false
	}
}

// Run applies intents and expires held actions until ctx is cancelled
func (k *Keyboard) Run(ctx context.Context) error {
	k.slot.SetStatus(signal.StatusActive, "keyboard")
	k.publish()

	ticker := time.NewTicker(k.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			k.slot.SetStatus(signal.StatusUnavailable, "keyboard stopped")
			return nil
		case t := <-k.intents:
			if k.apply(t) {
				k.publish()
			}
		case <-ticker.C:
			if k.expire() {
				k.publish()
			}
		}
	}
}

// apply returns true when the published signal changes
func (k *Keyboard) apply(t IntentType) bool {
	switch t {
	case IntentLaneLeft:
		if k.lane > -1 {
			k.lane--
			return true
		}
	case IntentLaneRight:
		if k.lane < 1 {
			k.lane++
			return true
		}
	case IntentJump, IntentDuck:
		action := signal.ActionJump
		if t == IntentDuck {
			action = signal.ActionDuck
		}
		changed := k.action != action
		k.action = action
		k.actionUntil = k.now().Add(k.hold)
		return changed
	}
	return false
}

// expire releases a held action whose window has passed
func (k *Keyboard) expire() bool {
	if k.action == signal.ActionNone || k.now().Before(k.actionUntil) {
		return false
	}
	k.action = signal.ActionNone
	return true
}

func (k *Keyboard) publish() {
	k.slot.Store(signal.ControlSignal{Lane: k.lane, Action: k.action})
}
