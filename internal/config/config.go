// Package config provides YAML-based game configuration loading and
// difficulty management for the simulation.
//
// All durations are milliseconds and all speeds are world units per tick,
// matching the units the simulation advances in.
package config

// GameConfig contains all tunables of the simulation.
type GameConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Laser      MeterConfig      `yaml:"laser_meter" toml:"laser_meter"`
	Flight     MeterConfig      `yaml:"flight_meter" toml:"flight_meter"`
	Combat     CombatConfig     `yaml:"combat" toml:"combat"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines world bounds and scrolling.
type WorldConfig struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	GroundOffset   float64 `yaml:"ground_offset" toml:"ground_offset"`     // Ground band height above the bottom edge
	ScrollPin      float64 `yaml:"scroll_pin" toml:"scroll_pin"`           // Fraction of width where the player is pinned
	ParallaxFactor float64 `yaml:"parallax_factor" toml:"parallax_factor"` // Background offset per unit of scroll
	ParallaxWrap   float64 `yaml:"parallax_wrap" toml:"parallax_wrap"`     // Offset magnitude at which the background wraps
}

// PlayerConfig defines the player's body, motion and health.
type PlayerConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	StartX      float64 `yaml:"start_x" toml:"start_x"`
	MaxSpeed    float64 `yaml:"max_speed" toml:"max_speed"`
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpForce   float64 `yaml:"jump_force" toml:"jump_force"`     // Base upward impulse (negative = up)
	ChargeBonus float64 `yaml:"charge_bonus" toml:"charge_bonus"` // Extra impulse at full charge (negative = up)
	MaxCharge   float64 `yaml:"max_charge" toml:"max_charge"`
	MaxHealth   float64 `yaml:"max_health" toml:"max_health"`
	HitFlash    float64 `yaml:"hit_flash" toml:"hit_flash"`
}

// MeterConfig defines a depleting/regenerating resource with a lockout.
type MeterConfig struct {
	Max       float64 `yaml:"max" toml:"max"`
	Depletion float64 `yaml:"depletion" toml:"depletion"` // Units per ms while active
	Regen     float64 `yaml:"regen" toml:"regen"`         // Units per ms while idle
	Lockout   float64 `yaml:"lockout" toml:"lockout"`
}

// CombatConfig defines the melee and laser windows.
type CombatConfig struct {
	MeleeDuration float64 `yaml:"melee_duration" toml:"melee_duration"`
	MeleeDamage   float64 `yaml:"melee_damage" toml:"melee_damage"`
	PunchWidth    float64 `yaml:"punch_width" toml:"punch_width"`
	PunchHeight   float64 `yaml:"punch_height" toml:"punch_height"`
	PunchOffsetY  float64 `yaml:"punch_offset_y" toml:"punch_offset_y"`
	LaserDuration float64 `yaml:"laser_duration" toml:"laser_duration"`
	LaserDamage   float64 `yaml:"laser_damage" toml:"laser_damage"` // Per tick the beam connects
	BeamOffsetY   float64 `yaml:"beam_offset_y" toml:"beam_offset_y"`
	BeamHalfWidth float64 `yaml:"beam_half_width" toml:"beam_half_width"`
}

// TierConfig defines the stats derived from an enemy tier.
type TierConfig struct {
	HP           float64 `yaml:"hp" toml:"hp"`
	FireInterval float64 `yaml:"fire_interval" toml:"fire_interval"`
	Score        int     `yaml:"score" toml:"score"`
}

// HitboxConfig is an inset rectangle relative to an entity's top-left corner.
type HitboxConfig struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// EnemyConfig defines enemy bodies, tiers and hover AI.
type EnemyConfig struct {
	Width          float64      `yaml:"width" toml:"width"`
	Height         float64      `yaml:"height" toml:"height"`
	SpawnMargin    float64      `yaml:"spawn_margin" toml:"spawn_margin"` // Bottom band excluded from spawn heights
	Hitbox         HitboxConfig `yaml:"hitbox" toml:"hitbox"`
	EliteChance    float64      `yaml:"elite_chance" toml:"elite_chance"`
	Normal         TierConfig   `yaml:"normal" toml:"normal"`
	Elite          TierConfig   `yaml:"elite" toml:"elite"`
	ReturnFraction float64      `yaml:"return_fraction" toml:"return_fraction"`
	ReturnSpeed    float64      `yaml:"return_speed" toml:"return_speed"`
	RightMargin    float64      `yaml:"right_margin" toml:"right_margin"`
	RetreatSpeed   float64      `yaml:"retreat_speed" toml:"retreat_speed"`
	SwayAmplitude  float64      `yaml:"sway_amplitude" toml:"sway_amplitude"`
	BobAmplitude   float64      `yaml:"bob_amplitude" toml:"bob_amplitude"`
	PhaseStep      float64      `yaml:"phase_step" toml:"phase_step"`
	DriftMin       float64      `yaml:"drift_min" toml:"drift_min"`
	DriftMax       float64      `yaml:"drift_max" toml:"drift_max"`
}

// ProjectileConfig defines enemy shots.
type ProjectileConfig struct {
	Size   float64 `yaml:"size" toml:"size"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Damage float64 `yaml:"damage" toml:"damage"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	BurstCount      int     `yaml:"burst_count" toml:"burst_count"`
	HitBurstCount   int     `yaml:"hit_burst_count" toml:"hit_burst_count"`
	LaserBurstCount int     `yaml:"laser_burst_count" toml:"laser_burst_count"`
	MinSize         float64 `yaml:"min_size" toml:"min_size"`
	SizeRange       float64 `yaml:"size_range" toml:"size_range"`
	MaxSpeed        float64 `yaml:"max_speed" toml:"max_speed"`
	MinDecay        float64 `yaml:"min_decay" toml:"min_decay"`
	DecayRange      float64 `yaml:"decay_range" toml:"decay_range"`
}

// DifficultyConfig defines the spawn-interval ramp.
type DifficultyConfig struct {
	Enabled         bool        `yaml:"enabled" toml:"enabled"`
	InitialInterval float64     `yaml:"initial_interval" toml:"initial_interval"`
	Steps           []SpawnStep `yaml:"steps" toml:"steps"`
}

// SpawnStep lowers the spawn interval once the score exceeds a threshold.
type SpawnStep struct {
	Score    int     `yaml:"score" toml:"score"`
	Interval float64 `yaml:"interval" toml:"interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Player.MaxHealth = 200
		cfg.Projectile.Damage = 5
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Player.MaxHealth = 100
		cfg.Enemies.EliteChance = 0.35
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
