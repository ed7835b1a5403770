package audio

import (
	"github.com/lixenwraith/body-surfer/events"
	"github.com/lixenwraith/body-surfer/signal"
)

// Player plays a cue, satisfied by *SoundManager
type Player interface {
	Play(SoundType) bool
}

// CueHandler maps game events to sound cues
// It ignores the dispatch context so any router can carry it
type CueHandler[T any] struct {
	player Player
}

// NewCueHandler creates a handler playing through p
func NewCueHandler[T any](p Player) *CueHandler[T] {
	return &CueHandler[T]{player: p}
}

func (h *CueHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventSessionEnded,
		events.EventScoreChanged,
		events.EventPlayerAction,
	}
}

func (h *CueHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	if t, ok := cueFor(ev); ok {
		h.player.Play(t)
	}
}

func cueFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventSessionStarted:
		return SoundStart, true
	case events.EventSessionEnded:
		return SoundCrash, true
	case events.EventScoreChanged:
		if p, ok := ev.Payload.(*events.ScorePayload); ok && p.Delta > 0 {
			return SoundCoin, true
		}
	case events.EventPlayerAction:
		p, ok := ev.Payload.(*events.ActionPayload)
		if !ok {
			return 0, false
		}
		switch p.Action {
		case signal.ActionJump.String():
			return SoundJump, true
		case signal.ActionDuck.String():
			return SoundDuck, true
		}
	}
	return 0, false
}
