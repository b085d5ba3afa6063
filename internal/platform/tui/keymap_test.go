package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antigravity/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		controls []core.Control
		events   []core.Event
		quit     bool
	}{
		{"a walks left", runeKey("a"), []core.Control{core.ControlLeft}, nil, false},
		{"left arrow walks left", tea.KeyMsg{Type: tea.KeyLeft}, []core.Control{core.ControlLeft}, nil, false},
		{"d walks right", runeKey("d"), []core.Control{core.ControlRight}, nil, false},
		{"up ascends and jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Control{core.ControlAscend, core.ControlJump}, nil, false},
		{"w ascends and charges", runeKey("w"), []core.Control{core.ControlAscend, core.ControlCharge}, nil, false},
		{"s descends", runeKey("s"), []core.Control{core.ControlDescend}, nil, false},
		{"space jumps and punches", runeKey(" "), []core.Control{core.ControlJump, core.ControlPunch}, nil, false},
		{"z punches", runeKey("z"), []core.Control{core.ControlPunch}, nil, false},
		{"x fires", runeKey("x"), []core.Control{core.ControlFire}, nil, false},
		{"f toggles flight", runeKey("f"), nil, []core.Event{core.EventToggleFlight}, false},
		{"enter begins", tea.KeyMsg{Type: tea.KeyEnter}, nil, []core.Event{core.EventBegin}, false},
		{"r restarts", runeKey("r"), nil, []core.Event{core.EventRestart}, false},
		{"p pauses", runeKey("p"), nil, []core.Event{core.EventPause}, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, nil, []core.Event{core.EventPause}, false},
		{"q quits", runeKey("q"), nil, nil, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, nil, nil, true},
		{"unbound key", runeKey("y"), nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, quit := km.MapKey(tt.msg)
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
			if !reflect.DeepEqual(b.Controls, tt.controls) {
				t.Errorf("Controls = %v, expected %v", b.Controls, tt.controls)
			}
			if !reflect.DeepEqual(b.Events, tt.events) {
				t.Errorf("Events = %v, expected %v", b.Events, tt.events)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("b"), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ControlFire, t0)

	tests := []struct {
		after    time.Duration
		expected bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{100 * time.Millisecond, true},
		{101 * time.Millisecond, false},
	}
	for _, tt := range tests {
		if got := h.Held(core.ControlFire, t0.Add(tt.after)); got != tt.expected {
			t.Errorf("Held after %v = %v, expected %v", tt.after, got, tt.expected)
		}
	}
	if h.Held(core.ControlLeft, t0) {
		t.Error("never-pressed control should not be held")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	// Auto-repeat every 30ms keeps the key held well past one window.
	for i := range 10 {
		h.Press(core.ControlRight, t0.Add(time.Duration(i*30)*time.Millisecond))
	}
	if !h.Held(core.ControlRight, t0.Add(350*time.Millisecond)) {
		t.Error("repeated presses should keep the control held")
	}
}

func TestHoldTrackerFill(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ControlLeft, t0)
	h.Press(core.ControlFire, t0.Add(80*time.Millisecond))

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(150*time.Millisecond))

	expected := []core.Control{core.ControlFire}
	if got := frame.Controls(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Controls = %v, expected %v", got, expected)
	}
	if _, ok := h.pressed[core.ControlLeft]; ok {
		t.Error("expired press should be forgotten")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(0)
	if h.Window() != DefaultHoldWindow {
		t.Errorf("Window = %v, expected %v", h.Window(), DefaultHoldWindow)
	}

	t0 := time.Unix(1000, 0)
	h.Press(core.ControlJump, t0)
	h.Release()
	if h.Held(core.ControlJump, t0) {
		t.Error("Release should drop every held control")
	}
}
