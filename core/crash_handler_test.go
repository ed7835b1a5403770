package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeScreen struct {
	finis int
}

func (f *fakeScreen) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevOut, prevExit := crashOut, exitFunc
	crashOut = &buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, exitFunc = prevOut, prevExit
		SetCrashTerminal(nil)
	})
	return &buf, &code
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, code := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashTerminal(screen)

	HandleCrash("boom")

	if screen.finis != 1 {
		t.Errorf("expected screen finalized once, got %d", screen.finis)
	}
	if *code != 1 {
		t.Errorf("expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash banner in %q", buf.String())
	}

	// A second crash does not finalize twice
	HandleCrash("again")
	if screen.finis != 1 {
		t.Errorf("screen finalized again: %d", screen.finis)
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)
	if *code != -1 || buf.Len() != 0 {
		t.Errorf("nil recover value should do nothing, code=%d out=%q", *code, buf.String())
	}
}

func TestGoRecoversPanic(t *testing.T) {
	var mu sync.Mutex
	var got int
	done := make(chan struct{})

	prevOut, prevExit := crashOut, exitFunc
	crashOut = &bytes.Buffer{}
	exitFunc = func(c int) {
		mu.Lock()
		got = c
		mu.Unlock()
		close(done)
	}
	defer func() { crashOut, exitFunc = prevOut, prevExit }()

	Go(func() { panic("worker failed") })
	<-done

	mu.Lock()
	defer mu.Unlock()
	if got != 1 {
		t.Errorf("expected exit 1 from recovered panic, got %d", got)
	}
}

func TestRecoverOnCallingGoroutine(t *testing.T) {
	buf, code := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashTerminal(screen)

	func() {
		defer Recover()
		panic("frame loop failed")
	}()

	if *code != 1 || screen.finis != 1 {
		t.Errorf("exit=%d finis=%d, want 1 and 1", *code, screen.finis)
	}
	if !strings.Contains(buf.String(), "frame loop failed") {
		t.Errorf("missing panic value in %q", buf.String())
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	_, code := captureCrash(t)
	func() {
		defer Recover()
	}()
	if *code != -1 {
		t.Errorf("exit called without a panic: %d", *code)
	}
}
