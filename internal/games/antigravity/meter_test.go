package antigravity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/antigravity/internal/config"
)

func testMeter() Meter {
	return NewMeter(config.MeterConfig{Max: 10, Depletion: 1, Regen: 2, Lockout: 100})
}

func TestMeterExhaustionLocksOutSameTick(t *testing.T) {
	m := testMeter()

	for i := 1; i < 10; i++ {
		if !m.Tick(true, 1) {
			t.Fatalf("tick %d: meter should stay active with %v left", i, m.Current())
		}
	}

	if m.Tick(true, 1) {
		t.Error("exhausting tick should force the ability off")
	}
	if m.Current() != 0 {
		t.Errorf("Current = %v, expected 0", m.Current())
	}
	if m.Lockout() != 100 {
		t.Errorf("Lockout = %v, expected 100", m.Lockout())
	}
	if m.Available() {
		t.Error("exhausted meter should not be available")
	}
}

func TestMeterOvershootClampsToZero(t *testing.T) {
	m := testMeter()
	m.Tick(true, 25)
	if m.Current() != 0 {
		t.Errorf("Current = %v, expected 0", m.Current())
	}
	if !m.LockedOut() {
		t.Error("overshoot should start the lockout")
	}
}

func TestMeterLockout(t *testing.T) {
	m := testMeter()
	m.Tick(true, 10)

	// No regen and no activation during lockout.
	if m.Tick(true, 40) {
		t.Error("ability must stay off during lockout")
	}
	if m.Current() != 0 {
		t.Errorf("meter regenerated during lockout: %v", m.Current())
	}
	if m.Lockout() != 60 {
		t.Errorf("Lockout = %v, expected 60", m.Lockout())
	}

	// Lockout floors at zero.
	m.Tick(false, 500)
	if m.Lockout() != 0 {
		t.Errorf("Lockout = %v, expected 0", m.Lockout())
	}
	if m.Current() != 0 {
		t.Errorf("tick that ends the lockout should not regenerate, got %v", m.Current())
	}

	m.Tick(false, 1)
	if m.Current() != 2 {
		t.Errorf("Current = %v, expected 2 after one regen tick", m.Current())
	}
}

func TestMeterRegenClampsToMax(t *testing.T) {
	m := testMeter()
	m.current = 9
	m.Tick(false, 5)
	if m.Current() != 10 {
		t.Errorf("Current = %v, expected 10", m.Current())
	}
	if m.Fraction() != 1 {
		t.Errorf("Fraction = %v, expected 1", m.Fraction())
	}
}

func TestMeterNoRegenWhileActive(t *testing.T) {
	m := testMeter()
	m.current = 5
	m.Tick(true, 1)
	if m.Current() != 4 {
		t.Errorf("Current = %v, expected 4", m.Current())
	}
}

func TestMeterInvariantsUnderRandomUse(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	m := NewMeter(config.MeterConfig{Max: 500, Depletion: 1, Regen: 3, Lockout: 250})

	active := false
	for i := 0; i < 100000; i++ {
		if rng.Intn(20) == 0 {
			active = !active
		}
		dt := rng.Float64() * 40
		stillActive := m.Tick(active && m.Available(), dt)

		if m.Current() < 0 || m.Current() > m.Max() {
			t.Fatalf("tick %d: Current = %v outside [0, %v]", i, m.Current(), m.Max())
		}
		if m.Lockout() < 0 {
			t.Fatalf("tick %d: Lockout = %v is negative", i, m.Lockout())
		}
		if m.LockedOut() && stillActive {
			t.Fatalf("tick %d: ability active during lockout", i)
		}
	}
}
