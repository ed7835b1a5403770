package pose

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
)

func writeReplay(t *testing.T, frames ...Frame) string {
	t.Helper()
	var b strings.Builder
	for _, f := range frames {
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	b.WriteString("garbage line\n\n")
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReplayPlaysFileToEnd(t *testing.T) {
	path := writeReplay(t,
		standing(0.5, 0.5),
		standing(0.2, 0.5),
		handsUp(standing(0.2, 0.5)),
	)
	slot := signal.NewSlot("pose")
	metrics := status.NewRegistry()
	r := NewReplay(path, time.Millisecond, false, slot, NewClassifier(DefaultThresholds()), nil, metrics)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if slot.Writes() != 3 {
		t.Errorf("expected 3 published signals, got %d", slot.Writes())
	}
	if got := metrics.Ints.Get("pose.decode_errors").Load(); got != 1 {
		t.Errorf("pose.decode_errors = %d, want 1", got)
	}
	st, msg := slot.Status()
	if st != signal.StatusUnavailable || !strings.Contains(msg, "finished") {
		t.Errorf("expected finished/unavailable, got %v %q", st, msg)
	}
}

func TestReplayLoopsUntilCancelled(t *testing.T) {
	path := writeReplay(t, standing(0.8, 0.5))
	slot := signal.NewSlot("pose")
	r := NewReplay(path, time.Millisecond, true, slot, NewClassifier(DefaultThresholds()), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	waitFor(t, "several loops", func() bool { return slot.Writes() >= 5 })
	if st, _ := slot.Status(); st != signal.StatusActive {
		t.Errorf("looping replay should stay active, got %v", st)
	}
	if slot.Load().Lane != 1 {
		t.Errorf("expected right lane, got %v", slot.Load())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("replay did not stop")
	}
}

func TestReplayMissingFile(t *testing.T) {
	slot := signal.NewSlot("pose")
	r := NewReplay(filepath.Join(t.TempDir(), "missing.jsonl"), time.Millisecond, false,
		slot, NewClassifier(DefaultThresholds()), nil, nil)
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
	if st, _ := slot.Status(); st != signal.StatusUnavailable {
		t.Errorf("status %v, want unavailable", st)
	}
}
