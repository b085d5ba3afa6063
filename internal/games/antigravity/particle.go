package antigravity

import (
	"math/rand"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// Particle is a cosmetic explosion fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // 1 at birth, dead at <= 0
	Decay  float64 // Life lost per tick
	Color  core.Color
}

func newParticle(rng *rand.Rand, cfg *config.ParticleConfig, x, y float64, c core.Color) Particle {
	return Particle{
		X:     x,
		Y:     y,
		Size:  rng.Float64()*cfg.SizeRange + cfg.MinSize,
		VX:    rng.Float64()*2*cfg.MaxSpeed - cfg.MaxSpeed,
		VY:    rng.Float64()*2*cfg.MaxSpeed - cfg.MaxSpeed,
		Life:  1,
		Decay: rng.Float64()*cfg.DecayRange + cfg.MinDecay,
		Color: c,
	}
}

// update moves the particle and decays it by one tick's worth of life.
// Decay does not scale with frame time.
func (p *Particle) update(scroll float64) {
	p.X += p.VX - scroll
	p.Y += p.VY
	p.Life -= p.Decay
}

// Alive reports whether the particle still has life.
func (p Particle) Alive() bool {
	return p.Life > 0
}
