package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":         IntentQuit,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,
	"start":        IntentStart,
	"recalibrate":  IntentRecalibrate,
	"lane_left":    IntentLaneLeft,
	"lane_right":   IntentLaneRight,
	"jump":         IntentJump,
	"duck":         IntentDuck,
}

// ActionNames returns the names accepted in keymap config, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
