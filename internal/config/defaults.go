package config

import (
	_ "embed"
)

//go:embed defaults/antigravity.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hard-coded default configuration.
// It mirrors defaults/antigravity.yaml and is used when the embed cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:          1920,
			Height:         1080,
			GroundOffset:   100,
			ScrollPin:      0.4,
			ParallaxFactor: 0.5,
			ParallaxWrap:   2000,
		},
		Player: PlayerConfig{
			Width:       80,
			Height:      128,
			StartX:      200,
			MaxSpeed:    8,
			Gravity:     0.8,
			JumpForce:   -20,
			ChargeBonus: -15,
			MaxCharge:   500,
			MaxHealth:   150,
			HitFlash:    200,
		},
		Laser: MeterConfig{
			Max:       5000,
			Depletion: 1,
			Regen:     3,
			Lockout:   1000,
		},
		Flight: MeterConfig{
			Max:       30000,
			Depletion: 1,
			Regen:     10,
			Lockout:   1000,
		},
		Combat: CombatConfig{
			MeleeDuration: 300,
			MeleeDamage:   60,
			PunchWidth:    60,
			PunchHeight:   30,
			PunchOffsetY:  30,
			LaserDuration: 500,
			LaserDamage:   1,
			BeamOffsetY:   16,
			BeamHalfWidth: 10,
		},
		Enemies: EnemyConfig{
			Width:          100,
			Height:         100,
			SpawnMargin:    100,
			Hitbox:         HitboxConfig{X: 20, Y: 25, W: 60, H: 50},
			EliteChance:    0.2,
			Normal:         TierConfig{HP: 60, FireInterval: 4000, Score: 10},
			Elite:          TierConfig{HP: 120, FireInterval: 2000, Score: 20},
			ReturnFraction: 0.6,
			ReturnSpeed:    3,
			RightMargin:    150,
			RetreatSpeed:   2,
			SwayAmplitude:  0.5,
			BobAmplitude:   2,
			PhaseStep:      0.1,
			DriftMin:       2,
			DriftMax:       5,
		},
		Projectile: ProjectileConfig{
			Size:   15,
			Speed:  7,
			Damage: 10,
		},
		Particles: ParticleConfig{
			BurstCount:      15,
			HitBurstCount:   15,
			LaserBurstCount: 1,
			MinSize:         3,
			SizeRange:       5,
			MaxSpeed:        3,
			MinDecay:        0.02,
			DecayRange:      0.05,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialInterval: 3000,
			Steps: []SpawnStep{
				{Score: 50, Interval: 2500},
				{Score: 100, Interval: 2000},
				{Score: 200, Interval: 1500},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
