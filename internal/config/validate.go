package config

import (
	"errors"
	"fmt"
)

// Validate reports every constraint the config violates.
func (c GameConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be negative, got %v", name, v))
		}
	}
	fraction := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("config: %s must be within [0, 1], got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	nonNegative("world.ground_offset", c.World.GroundOffset)
	fraction("world.scroll_pin", c.World.ScrollPin)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.max_speed", c.Player.MaxSpeed)
	nonNegative("player.gravity", c.Player.Gravity)
	positive("player.max_charge", c.Player.MaxCharge)
	positive("player.max_health", c.Player.MaxHealth)
	if c.Player.Height+c.World.GroundOffset > c.World.Height {
		errs = append(errs, errors.New("config: player does not fit above the ground"))
	}

	meters := []struct {
		name string
		m    MeterConfig
	}{{"laser_meter", c.Laser}, {"flight_meter", c.Flight}}
	for _, mc := range meters {
		name, m := mc.name, mc.m
		positive(name+".max", m.Max)
		nonNegative(name+".depletion", m.Depletion)
		nonNegative(name+".regen", m.Regen)
		nonNegative(name+".lockout", m.Lockout)
	}

	positive("combat.melee_duration", c.Combat.MeleeDuration)
	positive("combat.laser_duration", c.Combat.LaserDuration)

	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	fraction("enemies.elite_chance", c.Enemies.EliteChance)
	positive("enemies.normal.hp", c.Enemies.Normal.HP)
	positive("enemies.elite.hp", c.Enemies.Elite.HP)
	if c.Enemies.DriftMax < c.Enemies.DriftMin {
		errs = append(errs, errors.New("config: enemies.drift_max must not be below drift_min"))
	}

	positive("projectile.speed", c.Projectile.Speed)
	nonNegative("particles.burst_count", float64(c.Particles.BurstCount))
	positive("difficulty.initial_interval", c.Difficulty.InitialInterval)

	return errors.Join(errs...)
}
