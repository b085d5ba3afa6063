package antigravity

import "github.com/vovakirdan/antigravity/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the world.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Score         int
	Level         float64
	SpawnInterval float64
	ScrollSpeed   float64
	ScrollOffset  float64
	Width         float64
	Height        float64
	GroundY       float64 // Top of the ground band
	Player        PlayerView
	Enemies       []EnemyView
	Projectiles   []ProjectileView
	Particles     []ParticleView
}

// PlayerView is the renderable state of the player.
type PlayerView struct {
	Rect           core.Rect
	FacingRight    bool
	Flying         bool
	Charging       bool
	ChargeFraction float64
	Attacking      bool
	Shooting       bool
	PunchBox       core.Rect
	BeamY          float64
	Laser          MeterView
	Flight         MeterView
	Health         float64
	MaxHealth      float64
	HitFlash       float64
}

// MeterView is the renderable state of a meter.
type MeterView struct {
	Current  float64
	Max      float64
	Lockout  float64
	Fraction float64
}

// EnemyView is the renderable state of an enemy.
type EnemyView struct {
	Rect       core.Rect
	Tier       Tier
	HPFraction float64
	Drift      float64
	Angle      float64
	Touching   bool
}

// ProjectileView is the renderable state of an enemy shot.
type ProjectileView struct {
	Rect core.Rect
}

// ParticleView is the renderable state of a particle.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Life  float64
	Color core.Color
}

func meterView(m Meter) MeterView {
	return MeterView{
		Current:  m.Current(),
		Max:      m.Max(),
		Lockout:  m.Lockout(),
		Fraction: m.Fraction(),
	}
}

// Snapshot captures the world's current state.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:          w.tick,
		Phase:         w.phase,
		Score:         w.score,
		Level:         w.Level(),
		SpawnInterval: w.spawnInterval,
		ScrollSpeed:   w.scroll,
		ScrollOffset:  w.scrollOffset,
		Width:         w.cfg.World.Width,
		Height:        w.cfg.World.Height,
		GroundY:       w.cfg.World.Height - w.cfg.World.GroundOffset,
		Player: PlayerView{
			Rect:           p.Rect(),
			FacingRight:    p.FacingRight,
			Flying:         p.Flying(),
			Charging:       p.Charging(),
			ChargeFraction: p.ChargeFraction(),
			Attacking:      p.Attacking(),
			Shooting:       p.Shooting(),
			PunchBox:       p.PunchBox(),
			BeamY:          p.BeamY(),
			Laser:          meterView(p.LaserMeter()),
			Flight:         meterView(p.FlightMeter()),
			Health:         p.Health,
			MaxHealth:      p.MaxHealth,
			HitFlash:       p.HitFlash(),
		},
		Enemies:     make([]EnemyView, 0, len(w.enemies)),
		Projectiles: make([]ProjectileView, 0, len(w.projectiles)),
		Particles:   make([]ParticleView, 0, len(w.particles)),
	}

	for _, e := range w.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Rect:       e.Rect(),
			Tier:       e.Tier,
			HPFraction: e.HPFraction(),
			Drift:      e.Drift,
			Angle:      e.Angle,
			Touching:   e.Touching,
		})
	}
	for _, pr := range w.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Rect: pr.Rect()})
	}
	for _, pa := range w.particles {
		snap.Particles = append(snap.Particles, ParticleView{
			X:     pa.X,
			Y:     pa.Y,
			Size:  pa.Size,
			Life:  pa.Life,
			Color: pa.Color,
		})
	}
	return snap
}
