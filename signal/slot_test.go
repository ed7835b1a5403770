package signal

import (
	"sync"
	"testing"
)

func TestSlotDefaultsToNeutral(t *testing.T) {
	s := NewSlot("test")
	if got := s.Load(); got != Neutral {
		t.Fatalf("empty slot = %v, want neutral", got)
	}
	if st, _ := s.Status(); st != StatusPending {
		t.Fatalf("initial status = %v, want pending", st)
	}
}

func TestSlotRoundTrip(t *testing.T) {
	s := NewSlot("test")
	for _, lane := range []int{-1, 0, 1} {
		for _, act := range []Action{ActionNone, ActionJump, ActionDuck} {
			want := ControlSignal{Lane: lane, Action: act}
			s.Store(want)
			if got := s.Load(); got != want {
				t.Errorf("Load() = %v, want %v", got, want)
			}
		}
	}
	if s.Writes() != 9 {
		t.Errorf("Writes() = %d, want 9", s.Writes())
	}
}

func TestSlotNormalizesOutOfRange(t *testing.T) {
	s := NewSlot("test")
	s.Store(ControlSignal{Lane: 5, Action: Action(42)})
	if got := s.Load(); got != (ControlSignal{Lane: 1, Action: ActionNone}) {
		t.Fatalf("Load() = %v, want lane=1 action=none", got)
	}
	s.Store(ControlSignal{Lane: -3})
	if got := s.Load().Lane; got != -1 {
		t.Fatalf("lane = %d, want -1", got)
	}
}

func TestSlotReset(t *testing.T) {
	s := NewSlot("test")
	s.Store(ControlSignal{Lane: 1, Action: ActionJump})
	s.Reset()
	if got := s.Load(); got != Neutral {
		t.Fatalf("after Reset = %v, want neutral", got)
	}
}

// Writer alternates between two coherent signals; a torn read would mix them
func TestSlotConcurrentNoTearing(t *testing.T) {
	s := NewSlot("race")
	a := ControlSignal{Lane: -1, Action: ActionJump}
	b := ControlSignal{Lane: 1, Action: ActionDuck}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				s.Store(a)
			} else {
				s.Store(b)
			}
		}
	}()

	for i := 0; i < 100000; i++ {
		got := s.Load()
		if got != a && got != b && got != Neutral {
			close(stop)
			wg.Wait()
			t.Fatalf("torn read: %v", got)
		}
	}
	close(stop)
	wg.Wait()
}

func TestFallbackSelectsActivePrimary(t *testing.T) {
	pose := NewSlot("pose")
	keys := NewSlot("keyboard")
	f := Fallback{Primary: pose, Secondary: keys}

	pose.Store(ControlSignal{Lane: -1})
	keys.Store(ControlSignal{Lane: 1})

	if got := f.Load().Lane; got != 1 {
		t.Fatalf("pending primary should fall back, lane = %d", got)
	}

	pose.SetStatus(StatusActive, "")
	if got := f.Load().Lane; got != -1 {
		t.Fatalf("active primary should be read, lane = %d", got)
	}
	if f.Active() != pose {
		t.Fatal("Active() should report primary")
	}

	pose.SetStatus(StatusUnavailable, "camera gone")
	if got := f.Load().Lane; got != 1 {
		t.Fatalf("unavailable primary should fall back, lane = %d", got)
	}
	if _, msg := pose.Status(); msg != "camera gone" {
		t.Fatalf("status message = %q", msg)
	}
}

func TestFallbackWithoutSlots(t *testing.T) {
	if got := (Fallback{}).Load(); got != Neutral {
		t.Fatalf("empty fallback = %v, want neutral", got)
	}
}
