package antigravity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// Tier is an enemy's category, fixed at spawn.
type Tier int

const (
	TierNormal Tier = iota
	TierElite
)

// String returns the tier name.
func (t Tier) String() string {
	if t == TierElite {
		return "elite"
	}
	return "normal"
}

// Color returns the tier's hull color, also used for its death burst.
func (t Tier) Color() core.Color {
	if t == TierElite {
		return core.ColorRed
	}
	return core.ColorGreen
}

// Enemy is a hovering saucer that drifts with the world and fires at the player.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Drift         float64 // Horizontal drift rolled at spawn
	Tier          Tier
	HP            float64
	MaxHP         float64
	FireInterval  float64
	Score         int
	Angle         float64 // Hover phase
	Touching      bool    // Body overlaps the player this tick

	fireTimer float64
	dead      bool
	escaped   bool
}

// arena is the read-only view of the world an enemy needs to act.
type arena struct {
	width, height    float64
	scroll           float64
	playerX, playerY float64
}

// spawnEnemy rolls a new enemy at the right edge of the world.
func spawnEnemy(rng *rand.Rand, cfg *config.EnemyConfig, worldW, worldH float64) Enemy {
	y := rng.Float64() * (worldH - cfg.Height - cfg.SpawnMargin)
	drift := -(cfg.DriftMin + rng.Float64()*(cfg.DriftMax-cfg.DriftMin))

	tier, stats := TierNormal, cfg.Normal
	if rng.Float64() < cfg.EliteChance {
		tier, stats = TierElite, cfg.Elite
	}

	return Enemy{
		X:            worldW,
		Y:            y,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Drift:        drift,
		Tier:         tier,
		HP:           stats.HP,
		MaxHP:        stats.HP,
		FireInterval: stats.FireInterval,
		Score:        stats.Score,
	}
}

// update moves the enemy one tick and advances its fire cooldown.
// It returns a projectile when the cooldown fires.
func (e *Enemy) update(a arena, cfg *config.EnemyConfig, shot *config.ProjectileConfig, dt float64) (Projectile, bool) {
	e.X -= a.scroll

	switch {
	case e.X < a.width*cfg.ReturnFraction:
		e.X += cfg.ReturnSpeed
	case e.X > a.width-cfg.RightMargin:
		e.X -= cfg.RetreatSpeed
	default:
		e.X += math.Sin(e.Angle) * cfg.SwayAmplitude
	}

	e.Angle += cfg.PhaseStep
	e.Y += math.Sin(e.Angle) * cfg.BobAmplitude

	if e.fireTimer > e.FireInterval {
		e.fireTimer = 0
		return newProjectile(e.X, e.Y+e.Height/2, a.playerX, a.playerY, shot), true
	}
	e.fireTimer += dt
	return Projectile{}, false
}

// Hitbox returns the inset collision rectangle.
func (e Enemy) Hitbox(hb config.HitboxConfig) core.Rect {
	return core.NewRect(e.X+hb.X, e.Y+hb.Y, hb.W, hb.H)
}

// Rect returns the full sprite bounds.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Center returns the sprite center.
func (e Enemy) Center() (float64, float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// HPFraction returns remaining hp in [0, 1].
func (e Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return core.ClampF(e.HP/e.MaxHP, 0, 1)
}

// Dead reports whether the enemy was killed this tick.
func (e Enemy) Dead() bool {
	return e.dead
}

func (e Enemy) alive() bool {
	return !e.dead && !e.escaped
}
