package antigravity

import (
	"math"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// Projectile is an enemy shot. Its velocity is aimed once at creation.
type Projectile struct {
	X, Y   float64
	Size   float64
	VX, VY float64
	Damage float64

	dead bool
}

// newProjectile aims a shot from (sx, sy) toward (tx, ty).
func newProjectile(sx, sy, tx, ty float64, cfg *config.ProjectileConfig) Projectile {
	angle := math.Atan2(ty-sy, tx-sx)
	return Projectile{
		X:      sx,
		Y:      sy,
		Size:   cfg.Size,
		VX:     math.Cos(angle) * cfg.Speed,
		VY:     math.Sin(angle) * cfg.Speed,
		Damage: cfg.Damage,
	}
}

// update moves the shot one tick, compensating for world scroll, and marks it
// dead once it leaves the world.
func (p *Projectile) update(scroll, worldW, worldH float64) {
	p.X += p.VX - scroll
	p.Y += p.VY
	if p.X < 0 || p.X > worldW || p.Y < 0 || p.Y > worldH {
		p.dead = true
	}
}

// Rect returns the shot's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}
