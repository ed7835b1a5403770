package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentResize      // Terminal resize event
	IntentToggleMute  // m
	IntentToggleDebug // F1, debug HUD line

	// Menu
	IntentStart       // Enter/Space on the menu or game over screen
	IntentRecalibrate // c, pose baseline capture
	IntentMouseClick  // Left press, hit-tested against the button by the renderer

	// Keyboard fallback control, forwarded to the keyboard source
	IntentLaneLeft  // Left, a, h
	IntentLaneRight // Right, d, l
	IntentJump      // Up, w, k
	IntentDuck      // Down, s, j
)

// Intent is a parsed input event
type Intent struct {
	Type IntentType
	X, Y int // Mouse position for IntentMouseClick
}

// Control reports whether the intent drives the player rather than the app
func (t IntentType) Control() bool {
	switch t {
	case IntentLaneLeft, IntentLaneRight, IntentJump, IntentDuck:
		return true
	}
	return false
}
