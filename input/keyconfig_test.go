package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestApplyBindings(t *testing.T) {
	table := DefaultKeyTable()
	err := table.Apply(map[string][]string{
		"jump":      {"space", "J"},
		"start":     {"f2"},
		"none":      {"w", "up"},
		"lane_left": {"Left"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if table.Runes[' '] != IntentJump {
		t.Errorf("space should jump, got %d", table.Runes[' '])
	}
	if table.Runes['J'] != IntentJump {
		t.Errorf("upper-case J should jump, got %d", table.Runes['J'])
	}
	if table.Runes['j'] != IntentDuck {
		t.Errorf("lower-case j should still duck, got %d", table.Runes['j'])
	}
	if table.SpecialKeys[tcell.KeyF2] != IntentStart {
		t.Errorf("f2 should start")
	}
	if _, ok := table.Runes['w']; ok {
		t.Error("w should be unbound")
	}
	if _, ok := table.SpecialKeys[tcell.KeyUp]; ok {
		t.Error("up should be unbound")
	}
	if table.SpecialKeys[tcell.KeyLeft] != IntentLaneLeft {
		t.Error("left should stay bound to lane_left")
	}
}

func TestApplyRejectsUnknown(t *testing.T) {
	cases := []struct {
		name     string
		bindings map[string][]string
		want     string
	}{
		{"unknown action", map[string][]string{"fly": {"f"}}, "unknown action"},
		{"unknown key", map[string][]string{"jump": {"pageup-ish"}}, "unknown key"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := DefaultKeyTable().Apply(tc.bindings)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestActionNamesSorted(t *testing.T) {
	names := ActionNames()
	if len(names) != len(actionRegistry) {
		t.Fatalf("expected %d names, got %d", len(actionRegistry), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
