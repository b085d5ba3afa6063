package antigravity

import (
	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// VerticalMode is the player's exclusive vertical regime.
type VerticalMode int

const (
	ModeGrounded VerticalMode = iota // Gravity applies, jumps and charge available
	ModeFlying                       // No gravity, ascend/descend at max speed
)

// String returns the mode name.
func (m VerticalMode) String() string {
	if m == ModeFlying {
		return "flying"
	}
	return "grounded"
}

// Window is a timed action window such as a punch swing or a laser beam.
// It closes once the elapsed time strictly exceeds its duration.
type Window struct {
	active   bool
	elapsed  float64
	duration float64
}

func (w *Window) open() {
	w.active = true
	w.elapsed = 0
}

func (w *Window) advance(dt float64) {
	if !w.active {
		return
	}
	w.elapsed += dt
	if w.elapsed > w.duration {
		w.active = false
	}
}

// Active reports whether the window is open.
func (w Window) Active() bool { return w.active }

// Elapsed returns the time since the window opened (or was last refreshed).
func (w Window) Elapsed() float64 { return w.elapsed }

// Player is the controlled character.
//
// The charge fields are only meaningful in ModeGrounded; switching to flight
// discards any charge in progress.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Horizontal intent this tick
	VY            float64
	FacingRight   bool
	Health        float64
	MaxHealth     float64

	mode     VerticalMode
	charging bool
	charge   float64 // ms of charge accumulated

	melee Window
	armed bool // Melee may still land its single hit
	beam  Window

	laser  Meter
	flight Meter

	hitFlash float64

	cfg     config.PlayerConfig
	combat  config.CombatConfig
	groundY float64
	maxX    float64
}

// NewPlayer creates a player standing on the ground at its start position.
func NewPlayer(cfg config.GameConfig) Player {
	groundY := cfg.World.Height - cfg.Player.Height - cfg.World.GroundOffset
	return Player{
		X:           cfg.Player.StartX,
		Y:           groundY,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		FacingRight: true,
		Health:      cfg.Player.MaxHealth,
		MaxHealth:   cfg.Player.MaxHealth,
		mode:        ModeGrounded,
		melee:       Window{duration: cfg.Combat.MeleeDuration},
		beam:        Window{duration: cfg.Combat.LaserDuration},
		laser:       NewMeter(cfg.Laser),
		flight:      NewMeter(cfg.Flight),
		cfg:         cfg.Player,
		combat:      cfg.Combat,
		groundY:     groundY,
		maxX:        cfg.World.Width - cfg.Player.Width,
	}
}

// Update advances the player by dt milliseconds under the given input.
// Positions move per tick; timers and meters scale with dt.
func (p *Player) Update(in core.InputFrame, dt float64) {
	if p.hitFlash > 0 {
		p.hitFlash = max(p.hitFlash-dt, 0)
	}

	// Exhausting the flight meter drops the player back to the ground
	// regime before any motion is computed.
	if !p.flight.Tick(p.mode == ModeFlying, dt) && p.mode == ModeFlying {
		p.mode = ModeGrounded
	}

	p.updateCharge(in, dt)
	p.updateHorizontal(in)
	p.updateVertical(in)
	p.updateMelee(in, dt)
	p.updateLaser(in, dt)
}

// updateCharge handles the grounded mega jump. Holding the charge control on
// the ground accumulates charge; releasing it on the ground launches.
func (p *Player) updateCharge(in core.InputFrame, dt float64) {
	if p.mode == ModeFlying {
		p.charging = false
		p.charge = 0
		return
	}

	if in.Has(core.ControlCharge) && p.OnGround() {
		p.charging = true
		p.charge = min(p.charge+dt, p.cfg.MaxCharge)
		return
	}

	if p.charging {
		if p.OnGround() {
			p.VY = p.cfg.JumpForce + p.cfg.ChargeBonus*p.ChargeFraction()
		}
		p.charging = false
		p.charge = 0
	}
}

func (p *Player) updateHorizontal(in core.InputFrame) {
	p.Speed = 0
	switch {
	case in.Has(core.ControlRight):
		p.FacingRight = true
		p.Speed = p.cfg.MaxSpeed
	case in.Has(core.ControlLeft):
		p.FacingRight = false
		p.Speed = -p.cfg.MaxSpeed
	}

	// Charging plants the player.
	if p.charging {
		p.Speed = 0
	}

	p.X = core.ClampF(p.X+p.Speed, 0, p.maxX)
}

func (p *Player) updateVertical(in core.InputFrame) {
	if p.mode == ModeFlying {
		switch {
		case in.Has(core.ControlAscend):
			p.VY = -p.cfg.MaxSpeed
		case in.Has(core.ControlDescend):
			p.VY = p.cfg.MaxSpeed
		default:
			p.VY = 0
		}
	} else {
		if in.Has(core.ControlJump) && p.OnGround() && !p.charging {
			p.VY = p.cfg.JumpForce
		}
		p.VY += p.Gravity()
	}

	p.Y += p.VY

	if p.Y >= p.groundY {
		p.Y = p.groundY
		if p.mode != ModeFlying {
			p.VY = 0
		}
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

func (p *Player) updateMelee(in core.InputFrame, dt float64) {
	if in.Has(core.ControlPunch) && !p.melee.active {
		p.melee.open()
		p.armed = true
	}
	p.melee.advance(dt)
}

// updateLaser opens the beam window and keeps it open while fire is held and
// energy remains. The laser meter drains for every tick the beam is open.
func (p *Player) updateLaser(in core.InputFrame, dt float64) {
	if in.Has(core.ControlFire) && !p.beam.active && p.laser.Available() {
		p.beam.open()
	}

	if p.beam.active {
		p.beam.elapsed += dt
		if in.Has(core.ControlFire) && p.laser.current > 0 {
			p.beam.elapsed = 0
		} else if p.beam.elapsed > p.beam.duration {
			p.beam.active = false
		}
	}

	if !p.laser.Tick(p.beam.active, dt) {
		p.beam.active = false
	}
}

// ToggleFlight flips the vertical regime and zeroes vertical velocity.
// Enabling flight is refused while the flight meter is empty or locked out.
func (p *Player) ToggleFlight() bool {
	if p.mode == ModeFlying {
		p.mode = ModeGrounded
		p.VY = 0
		return true
	}
	if !p.flight.Available() {
		return false
	}
	p.mode = ModeFlying
	p.charging = false
	p.charge = 0
	p.VY = 0
	return true
}

// TakeDamage lowers health (never below zero) and restarts the hit flash.
func (p *Player) TakeDamage(amount float64) {
	p.Health = max(p.Health-amount, 0)
	p.hitFlash = p.cfg.HitFlash
}

// Alive reports whether the player has health left.
func (p Player) Alive() bool {
	return p.Health > 0
}

// OnGround reports whether the player stands at (or below) ground level.
func (p Player) OnGround() bool {
	return p.Y >= p.groundY
}

// GroundY returns the y of the player's top edge when standing.
func (p Player) GroundY() float64 {
	return p.groundY
}

// Mode returns the vertical regime.
func (p Player) Mode() VerticalMode {
	return p.mode
}

// Flying reports whether the player is in flight.
func (p Player) Flying() bool {
	return p.mode == ModeFlying
}

// Gravity returns the per-tick acceleration of the current regime.
func (p Player) Gravity() float64 {
	if p.mode == ModeFlying {
		return 0
	}
	return p.cfg.Gravity
}

// Charging reports whether a mega jump is being charged.
func (p Player) Charging() bool {
	return p.charging
}

// ChargeFraction returns the accumulated charge in [0, 1].
func (p Player) ChargeFraction() float64 {
	if p.cfg.MaxCharge <= 0 {
		return 0
	}
	return p.charge / p.cfg.MaxCharge
}

// Attacking reports whether the melee window is open.
func (p Player) Attacking() bool {
	return p.melee.active
}

// CanDamage reports whether the current punch may still land a hit.
func (p Player) CanDamage() bool {
	return p.melee.active && p.armed
}

// disarm consumes the current punch's single hit.
func (p *Player) disarm() {
	p.armed = false
}

// Shooting reports whether the laser beam is open.
func (p Player) Shooting() bool {
	return p.beam.active
}

// LaserMeter returns the laser energy meter.
func (p Player) LaserMeter() Meter {
	return p.laser
}

// FlightMeter returns the flight energy meter.
func (p Player) FlightMeter() Meter {
	return p.flight
}

// HitFlash returns the remaining damage flash in ms.
func (p Player) HitFlash() float64 {
	return p.hitFlash
}

// Rect returns the player's full bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// PunchBox returns the melee hitbox in front of the player.
func (p Player) PunchBox() core.Rect {
	x := p.X - p.combat.PunchWidth
	if p.FacingRight {
		x = p.X + p.Width
	}
	return core.NewRect(x, p.Y+p.combat.PunchOffsetY, p.combat.PunchWidth, p.combat.PunchHeight)
}

// BeamY returns the vertical center of the laser beam.
func (p Player) BeamY() float64 {
	return p.Y + p.combat.BeamOffsetY
}
