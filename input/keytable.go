package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, space included
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyF1:     IntentToggleDebug,
			tcell.KeyLeft:   IntentLaneLeft,
			tcell.KeyRight:  IntentLaneRight,
			tcell.KeyUp:     IntentJump,
			tcell.KeyDown:   IntentDuck,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			' ': IntentStart,
			'c': IntentRecalibrate,

			'a': IntentLaneLeft,
			'h': IntentLaneLeft,
			'd': IntentLaneRight,
			'l': IntentLaneRight,
			'w': IntentJump,
			'k': IntentJump,
			's': IntentDuck,
			'j': IntentDuck,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
