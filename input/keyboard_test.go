package input

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/body-surfer/signal"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestKeyboard() (*Keyboard, *signal.Slot, *fakeClock) {
	slot := signal.NewSlot("keyboard")
	k := NewKeyboard(slot, 150*time.Millisecond, 20*time.Millisecond)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	k.now = clock.now
	return k, slot, clock
}

func TestKeyboardLaneSteps(t *testing.T) {
	k, slot, _ := newTestKeyboard()

	steps := []struct {
		in   IntentType
		lane int
	}{
		{IntentLaneLeft, -1},
		{IntentLaneLeft, -1},
		{IntentLaneRight, 0},
		{IntentLaneRight, 1},
		{IntentLaneRight, 1},
	}
	for i, s := range steps {
		if k.apply(s.in) {
			k.publish()
		}
		if got := slot.Load().Lane; got != s.lane {
			t.Fatalf("step %d: lane %d, want %d", i, got, s.lane)
		}
	}
}

func TestKeyboardActionHoldAndRelease(t *testing.T) {
	k, _, clock := newTestKeyboard()

	if !k.apply(IntentJump) {
		t.Fatal("first jump should change the signal")
	}
	clock.t = clock.t.Add(100 * time.Millisecond)
	if k.expire() {
		t.Fatal("jump released before the hold window")
	}

	// Key repeat extends the window without a visible change
	if k.apply(IntentJump) {
		t.Error("repeat of a held action should not change the signal")
	}
	clock.t = clock.t.Add(100 * time.Millisecond)
	if k.expire() {
		t.Fatal("repeat should have extended the hold")
	}

	clock.t = clock.t.Add(60 * time.Millisecond)
	if !k.expire() || k.action != signal.ActionNone {
		t.Fatal("jump should release after the hold window")
	}

	if !k.apply(IntentDuck) || k.action != signal.ActionDuck {
		t.Error("duck should replace a released action")
	}
}

func TestKeyboardSubmitFiltersNonControl(t *testing.T) {
	k, _, _ := newTestKeyboard()
	if k.Submit(IntentQuit) {
		t.Error("quit should not reach the keyboard source")
	}
	if !k.Submit(IntentJump) {
		t.Error("jump should be accepted")
	}
}

func TestKeyboardRun(t *testing.T) {
	slot := signal.NewSlot("keyboard")
	k := NewKeyboard(slot, 30*time.Millisecond, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- k.Run(ctx) }()

	k.Submit(IntentLaneRight)
	k.Submit(IntentJump)

	want := signal.ControlSignal{Lane: 1, Action: signal.ActionJump}
	deadline := time.Now().Add(time.Second)
	for slot.Load() != want {
		if time.Now().After(deadline) {
			t.Fatalf("signal never reached %v, got %v", want, slot.Load())
		}
		time.Sleep(time.Millisecond)
	}
	if st, _ := slot.Status(); st != signal.StatusActive {
		t.Errorf("keyboard status %v, want active", st)
	}

	released := signal.ControlSignal{Lane: 1}
	for slot.Load() != released {
		if time.Now().After(deadline) {
			t.Fatalf("jump never released, got %v", slot.Load())
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("run returned %v", err)
	}
}
