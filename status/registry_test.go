package status

import (
	"sync"
	"testing"
)

func TestMetricMapReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("speed")
	b := m.Get("speed")
	if a != b {
		t.Fatal("Get should return the same pointer for a key")
	}
	if m.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", m.Count())
	}
}

func TestRegistrySummaryOrderAndSkip(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("engine.ticks").Store(12)
	r.Floats.Get("engine.speed").Set(10.5)

	got := r.Summary("engine.speed", "missing", "engine.ticks")
	want := "engine.speed=10.5 engine.ticks=12"
	if got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
}

func TestRegistryConcurrentWriters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctr := r.Ints.Get("pose.frames")
			for j := 0; j < 1000; j++ {
				ctr.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("pose.frames").Load(); got != 8000 {
		t.Fatalf("pose.frames = %d, want 8000", got)
	}
}

func TestMetricMapLookupDoesNotRegister(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	if _, ok := m.Lookup("missing"); ok {
		t.Fatal("Lookup found an unregistered metric")
	}
	m.Get("b")
	m.Get("a")
	if got := m.Names(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Names() = %v, want [a b]", got)
	}
}
