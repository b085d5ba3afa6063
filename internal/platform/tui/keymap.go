package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antigravity/internal/core"
)

// DefaultHoldWindow is how long a control stays held after its last key press.
// Terminals report presses and auto-repeat but never releases, so a held key
// is approximated by repeats arriving inside this window.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyBinding is what a single key press means to the game.
type KeyBinding struct {
	Controls []core.Control
	Events   []core.Event
}

// KeyMapper translates Bubble Tea key messages to game controls and events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a binding.
// Returns the binding (may be empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (binding KeyBinding, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyBinding{}, true

	case "left", "a":
		return controls(core.ControlLeft), false
	case "right", "d":
		return controls(core.ControlRight), false
	case "up":
		return controls(core.ControlAscend, core.ControlJump), false
	case "w":
		return controls(core.ControlAscend, core.ControlCharge), false
	case "down", "s":
		return controls(core.ControlDescend), false
	case " ", "space":
		return controls(core.ControlJump, core.ControlPunch), false
	case "z":
		return controls(core.ControlPunch), false
	case "x":
		return controls(core.ControlFire), false

	case "f":
		return events(core.EventToggleFlight), false
	case "enter":
		return events(core.EventBegin), false
	case "r":
		return events(core.EventRestart), false
	case "p", "esc":
		return events(core.EventPause), false
	}

	return KeyBinding{}, false
}

func controls(cs ...core.Control) KeyBinding {
	return KeyBinding{Controls: cs}
}

func events(es ...core.Event) KeyBinding {
	return KeyBinding{Events: es}
}

// HoldTracker turns a stream of key presses into held controls.
type HoldTracker struct {
	window  time.Duration
	pressed map[core.Control]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		pressed: make(map[core.Control]time.Time),
	}
}

// Press records a press of c at the given time.
func (h *HoldTracker) Press(c core.Control, at time.Time) {
	h.pressed[c] = at
}

// Held reports whether c counts as held at now.
func (h *HoldTracker) Held(c core.Control, now time.Time) bool {
	at, ok := h.pressed[c]
	return ok && now.Sub(at) <= h.window
}

// Fill marks every control still inside the hold window as held in frame and
// forgets the expired ones.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for c, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, c)
			continue
		}
		frame.Hold(c)
	}
}

// Release forgets every press, e.g. when the game pauses.
func (h *HoldTracker) Release() {
	clear(h.pressed)
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
