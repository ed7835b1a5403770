package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic intents
// Owned by the frame loop goroutine
type Machine struct {
	keyTable *KeyTable

	// Previous mouse button state, clicks fire on the press edge only
	buttons tcell.ButtonMask
}

// NewMachine creates a parser over the given key table, nil selects the defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{keyTable: table}
}

// Process parses a terminal event; IntentNone for anything unbound
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return Intent{Type: m.keyTable.Lookup(ev)}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()
	if m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		x, y := ev.Position()
		return Intent{Type: IntentMouseClick, X: x, Y: y}
	}
	return Intent{}
}
