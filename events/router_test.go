package events

import (
	"testing"

	"github.com/lixenwraith/body-surfer/constants"
)

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.got = append(h.got, ev)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatchesInOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	score := &recordingHandler{types: []EventType{EventScoreChanged}}
	all := &recordingHandler{types: []EventType{EventScoreChanged, EventSessionEnded}}
	r.Register(score)
	r.Register(all)

	q.Push(GameEvent{Type: EventScoreChanged, Payload: &ScorePayload{Score: 10, Delta: 10}})
	q.Push(GameEvent{Type: EventEntitySpawned})
	q.Push(GameEvent{Type: EventSessionEnded, Payload: &SessionPayload{FinalScore: 10}})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Fatalf("DispatchAll consumed %d, want 3", n)
	}
	if calls != 3 {
		t.Fatalf("handler calls = %d, want 3", calls)
	}
	if len(score.got) != 1 || len(all.got) != 2 {
		t.Fatalf("score=%d all=%d, want 1 and 2", len(score.got), len(all.got))
	}
	if all.got[0].Type != EventScoreChanged || all.got[1].Type != EventSessionEnded {
		t.Fatalf("events out of order: %v, %v", all.got[0].Type, all.got[1].Type)
	}
	if q.Len() != 0 {
		t.Fatal("queue not drained")
	}
}

func TestQueueDropsOldestOnOverflow(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < constants.EventQueueSize+5; i++ {
		q.Push(GameEvent{Type: EventEntitySpawned, Tick: uint64(i)})
	}
	evs := q.Consume()
	if len(evs) != constants.EventQueueSize {
		t.Fatalf("len = %d, want %d", len(evs), constants.EventQueueSize)
	}
	if evs[0].Tick != 5 {
		t.Fatalf("first tick = %d, want 5", evs[0].Tick)
	}
	if q.Dropped() != 5 {
		t.Fatalf("Dropped() = %d, want 5", q.Dropped())
	}
	if q.Consume() != nil {
		t.Fatal("second Consume should be empty")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSessionEnded.String() != "session_ended" {
		t.Fatalf("got %q", EventSessionEnded.String())
	}
	if EventType(999).String() != "event(999)" {
		t.Fatalf("got %q", EventType(999).String())
	}
}
