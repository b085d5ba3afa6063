package antigravity

import "github.com/vovakirdan/antigravity/internal/config"

// Meter is a bounded energy pool that drains while its ability is in use,
// regenerates while idle and locks the ability out for a fixed time once it
// runs dry.
type Meter struct {
	current   float64
	max       float64
	depletion float64 // Units per ms while active
	regen     float64 // Units per ms while idle
	lockoutMS float64 // Lockout applied on exhaustion
	lockout   float64 // Remaining lockout in ms
}

// NewMeter creates a full meter.
func NewMeter(cfg config.MeterConfig) Meter {
	return Meter{
		current:   cfg.Max,
		max:       cfg.Max,
		depletion: cfg.Depletion,
		regen:     cfg.Regen,
		lockoutMS: cfg.Lockout,
	}
}

// Tick advances the meter by dt milliseconds. active reports whether the
// ability was in use this tick; the return value is whether it may stay in use.
// Exhaustion zeroes the meter, starts the lockout and returns false on the
// same tick.
func (m *Meter) Tick(active bool, dt float64) bool {
	switch {
	case m.lockout > 0:
		m.lockout -= dt
		if m.lockout < 0 {
			m.lockout = 0
		}
		return false
	case active:
		m.current -= m.depletion * dt
		if m.current <= 0 {
			m.current = 0
			m.lockout = m.lockoutMS
			return false
		}
		return true
	case m.current < m.max:
		m.current += m.regen * dt
		if m.current > m.max {
			m.current = m.max
		}
	}
	return false
}

// Available reports whether the ability may be switched on.
func (m Meter) Available() bool {
	return m.current > 0 && m.lockout <= 0
}

// Current returns the remaining energy.
func (m Meter) Current() float64 { return m.current }

// Max returns the meter capacity.
func (m Meter) Max() float64 { return m.max }

// Lockout returns the remaining lockout in ms.
func (m Meter) Lockout() float64 { return m.lockout }

// LockedOut reports whether the lockout is running.
func (m Meter) LockedOut() bool { return m.lockout > 0 }

// Fraction returns current/max in [0, 1].
func (m Meter) Fraction() float64 {
	if m.max <= 0 {
		return 0
	}
	return m.current / m.max
}
