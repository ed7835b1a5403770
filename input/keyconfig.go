package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Named keys accepted in keymap config
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"f1":     tcell.KeyF1,
	"f2":     tcell.KeyF2,
	"f3":     tcell.KeyF3,
	"f4":     tcell.KeyF4,
}

// Rune aliases for keys that are awkward as bare config strings
var runeAliases = map[string]rune{
	"space": ' ',
}

// Apply overlays action -> key-name bindings onto the table
// Binding a key to "none" unbinds it
// Returns error on unknown action names or key names
func (t *KeyTable) Apply(bindings map[string][]string) error {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		intent, ok := actionRegistry[action]
		if !ok {
			return fmt.Errorf("keymap: unknown action %q (known: %s)", action, strings.Join(ActionNames(), ", "))
		}
		for _, name := range bindings[action] {
			if err := t.bind(name, intent); err != nil {
				return fmt.Errorf("keymap: action %q: %w", action, err)
			}
		}
	}
	return nil
}

func (t *KeyTable) bind(name string, intent IntentType) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeyNames[key]; ok {
		if intent == IntentNone {
			delete(t.SpecialKeys, k)
		} else {
			t.SpecialKeys[k] = intent
		}
		return nil
	}

	r, ok := runeAliases[key]
	if !ok {
		// Single characters keep their case
		raw := strings.TrimSpace(name)
		if utf8.RuneCountInString(raw) != 1 {
			return fmt.Errorf("unknown key %q", name)
		}
		r, _ = utf8.DecodeRuneInString(raw)
	}
	if intent == IntentNone {
		delete(t.Runes, r)
	} else {
		t.Runes[r] = intent
	}
	return nil
}
