package events

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted signals a fresh run after start or replay
	// Trigger: Session.Start | Consumer: HUD (hide menu, show score), audio | Payload: *SessionPayload
	EventSessionStarted EventType = iota + 1

	// EventSessionEnded signals the run ended on an obstacle
	// Trigger: obstacle collision | Consumer: HUD (game over), audio | Payload: *SessionPayload
	EventSessionEnded

	// EventScoreChanged signals a score delta
	// Trigger: coin collected | Consumer: HUD, audio | Payload: *ScorePayload
	EventScoreChanged

	// EventEntitySpawned signals a new obstacle or coin in the registry
	// Trigger: Spawner wave, forced spawn | Consumer: renderer handle cache | Payload: *EntityPayload
	EventEntitySpawned

	// EventEntityRemoved signals an entity left the registry
	// Trigger: despawn, collection, restart clear | Consumer: renderer handle cache | Payload: *EntityPayload
	EventEntityRemoved

	// EventPlayerAction signals a jump or duck actually started (not a rejected request)
	// Trigger: Player controller | Consumer: audio | Payload: *ActionPayload
	EventPlayerAction
)

var typeNames = map[EventType]string{
	EventSessionStarted: "session_started",
	EventSessionEnded:   "session_ended",
	EventScoreChanged:   "score_changed",
	EventEntitySpawned:  "entity_spawned",
	EventEntityRemoved:  "entity_removed",
	EventPlayerAction:   "player_action",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// SessionPayload carries run identity and, on end, the final score
type SessionPayload struct {
	SessionID  string
	Run        int
	FinalScore int
}

// ScorePayload carries the new score and the increment that produced it
type ScorePayload struct {
	Score int
	Delta int
}

// EntityPayload identifies an entity by id; Kind and Reason are display strings
type EntityPayload struct {
	ID     uint64
	Kind   string
	Reason string
}

// ActionPayload names the action that started
type ActionPayload struct {
	Action string
}
