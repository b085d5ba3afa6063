package antigravity

import (
	"math"

	"github.com/vovakirdan/antigravity/internal/core"
)

// Script produces the input for the next tick from the current world.
// Scripts only read the world, so a scripted run is as deterministic as the
// world's seed.
type Script func(w *World) core.InputFrame

// ScriptByName returns a named script: "idle" or "autopilot".
func ScriptByName(name string) (Script, bool) {
	switch name {
	case "idle":
		return Idle, true
	case "autopilot":
		return Autopilot, true
	}
	return nil, false
}

// Idle starts the run and then stands still.
func Idle(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if w.Phase() == PhaseNotStarted {
		in.Push(core.EventBegin)
	}
	return in
}

// Autopilot starts the run, keeps flight up while the meter is at least half
// full, lines the beam up with the closest saucer, fires at it, and punches
// anything in reach.
func Autopilot(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if w.Phase() != PhaseRunning {
		if w.Phase() == PhaseNotStarted {
			in.Push(core.EventBegin)
		}
		return in
	}

	p := w.Player()
	if fm := p.FlightMeter(); !p.Flying() && fm.Available() && fm.Fraction() >= 0.5 {
		in.Push(core.EventToggleFlight)
	}

	target := closestEnemy(w.enemies, p)
	if target == nil {
		return in
	}
	hb := target.Hitbox(w.cfg.Enemies.Hitbox)

	// Vertical alignment
	_, cy := hb.Center()
	beam := p.BeamY()
	switch {
	case cy < beam-w.cfg.Combat.BeamHalfWidth/2:
		if p.Flying() {
			in.Hold(core.ControlAscend)
		} else {
			in.Hold(core.ControlJump)
		}
	case cy > beam+w.cfg.Combat.BeamHalfWidth/2 && p.Flying():
		in.Hold(core.ControlDescend)
	}

	// Turn toward the target.
	if inFront(p, *target) {
		in.Hold(core.ControlFire)
	} else if p.FacingRight {
		in.Hold(core.ControlLeft)
	} else {
		in.Hold(core.ControlRight)
	}

	if p.PunchBox().Intersects(hb) {
		in.Hold(core.ControlPunch)
	}
	return in
}

// closestEnemy returns the live enemy nearest the player, or nil.
func closestEnemy(enemies []Enemy, p Player) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	px, py := p.Rect().Center()
	for i := range enemies {
		e := &enemies[i]
		if !e.alive() {
			continue
		}
		ex, ey := e.Center()
		if d := math.Hypot(ex-px, ey-py); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
