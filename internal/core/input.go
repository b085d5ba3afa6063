package core

import "sort"

// Control is a continuously held intent sampled once per tick.
// It is abstracted from physical keys so the simulation never sees key codes.
type Control int

const (
	ControlNone    Control = iota
	ControlLeft            // A, Left arrow - walk left
	ControlRight           // D, Right arrow - walk right
	ControlAscend          // W, Up arrow - fly up
	ControlDescend         // S, Down arrow - fly down
	ControlJump            // Space, Up arrow - base jump
	ControlCharge          // W - charge a mega jump while grounded
	ControlPunch           // Z, Space - melee
	ControlFire            // X - laser
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlAscend:
		return "Ascend"
	case ControlDescend:
		return "Descend"
	case ControlJump:
		return "Jump"
	case ControlCharge:
		return "Charge"
	case ControlPunch:
		return "Punch"
	case ControlFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Event is a discrete one-shot input delivered with a single tick.
type Event int

const (
	EventNone         Event = iota
	EventToggleFlight       // F - toggle flight
	EventBegin              // Enter - leave the start screen
	EventRestart            // R - restart after game over
	EventPause              // P, Esc - pause/unpause
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventToggleFlight:
		return "ToggleFlight"
	case EventBegin:
		return "Begin"
	case EventRestart:
		return "Restart"
	case EventPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick: the set of
// currently held controls plus the discrete events queued since the last tick.
// The simulation only reads it.
type InputFrame struct {
	Held   map[Control]bool
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Control]bool),
	}
}

// Hold marks a control as held for this frame.
func (f *InputFrame) Hold(c Control) {
	if f.Held == nil {
		f.Held = make(map[Control]bool)
	}
	f.Held[c] = true
}

// Push queues a discrete event. Duplicate events within a frame collapse.
func (f *InputFrame) Push(e Event) {
	if f.HasEvent(e) {
		return
	}
	f.Events = append(f.Events, e)
}

// Has returns true if the given control is held this frame.
func (f InputFrame) Has(c Control) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[c]
}

// HasEvent returns true if the given event was queued this frame.
func (f InputFrame) HasEvent(e Event) bool {
	for _, ev := range f.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// Controls returns the held controls in a stable order.
func (f InputFrame) Controls() []Control {
	out := make([]Control, 0, len(f.Held))
	for c, held := range f.Held {
		if held {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear resets held controls and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Events = append(clone.Events, f.Events...)
	return clone
}
