package render

import (
	"github.com/lixenwraith/body-surfer/engine"
	"github.com/lixenwraith/body-surfer/events"
)

// Mode selects which overlay the HUD draws
type Mode uint8

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// HUD tracks what the overlay shows, fed only by session events
type HUD struct {
	mode       Mode
	score      int
	finalScore int
	run        int
	lastAction string
}

// NewHUD starts on the menu
func NewHUD() *HUD {
	return &HUD{mode: ModeMenu}
}

func (h *HUD) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventSessionEnded,
		events.EventScoreChanged,
		events.EventPlayerAction,
	}
}

func (h *HUD) HandleEvent(_ *engine.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStarted:
		h.mode = ModePlaying
		h.score = 0
		h.lastAction = ""
		if p, ok := ev.Payload.(*events.SessionPayload); ok {
			h.run = p.Run
		}
	case events.EventSessionEnded:
		h.mode = ModeGameOver
		if p, ok := ev.Payload.(*events.SessionPayload); ok {
			h.finalScore = p.FinalScore
		}
	case events.EventScoreChanged:
		if p, ok := ev.Payload.(*events.ScorePayload); ok {
			h.score = p.Score
		}
	case events.EventPlayerAction:
		if p, ok := ev.Payload.(*events.ActionPayload); ok {
			h.lastAction = p.Action
		}
	}
}

// Mode returns the current overlay
func (h *HUD) Mode() Mode { return h.mode }

// Score returns the running score
func (h *HUD) Score() int { return h.score }

// FinalScore returns the score of the last finished run
func (h *HUD) FinalScore() int { return h.finalScore }
