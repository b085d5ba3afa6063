package antigravity

import (
	"math/rand"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// Phase is the world's top-level state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Start screen, waiting for Begin
	PhaseRunning
	PhaseGameOver // Waiting for Restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Transition records a phase change that happened during a tick.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionBegan
	TransitionGameOver
	TransitionRestarted
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case TransitionBegan:
		return "began"
	case TransitionGameOver:
		return "game-over"
	case TransitionRestarted:
		return "restarted"
	default:
		return "none"
	}
}

// TickReport summarizes what happened during one Step.
type TickReport struct {
	Spawned       int
	Fired         int
	Kills         int
	EliteKills    int
	Escaped       int
	PunchHits     int
	LaserTicks    int
	PlayerHits    int
	DamageTaken   float64
	FlightToggled bool
	Transition    Transition
}

// RunStats accumulates over one run and resets on restart.
type RunStats struct {
	Ticks       int
	Elapsed     float64 // Simulated ms while running
	Kills       int
	EliteKills  int
	Escaped     int
	ShotsFired  int
	DamageTaken float64
}

// World owns the player and every transient entity and advances them in a
// fixed order each tick. It is not safe for concurrent use.
type World struct {
	cfg        config.GameConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	phase       Phase
	player      Player
	enemies     []Enemy
	projectiles []Projectile
	particles   []Particle

	scroll        float64 // World scroll this tick
	scrollOffset  float64 // Parallax background offset
	spawnTimer    float64
	spawnInterval float64
	score         int
	tick          uint64
	stats         RunStats
}

// NewWorld creates a world on its start screen.
func NewWorld(cfg config.GameConfig, seed int64) *World {
	w := &World{
		cfg:         cfg,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		rng:         rand.New(rand.NewSource(seed)),
		phase:       PhaseNotStarted,
		enemies:     make([]Enemy, 0, 16),
		projectiles: make([]Projectile, 0, 32),
		particles:   make([]Particle, 0, 256),
	}
	w.reset()
	return w
}

// reset rebuilds the player and clears everything a run accumulates.
func (w *World) reset() {
	w.player = NewPlayer(w.cfg)
	w.enemies = w.enemies[:0]
	w.projectiles = w.projectiles[:0]
	w.particles = w.particles[:0]
	w.scroll = 0
	w.scrollOffset = 0
	w.spawnTimer = 0
	w.spawnInterval = w.difficulty.InitialInterval()
	w.score = 0
	w.stats = RunStats{}
}

// Begin leaves the start screen. It is ignored outside PhaseNotStarted.
func (w *World) Begin() bool {
	if w.phase != PhaseNotStarted {
		return false
	}
	w.phase = PhaseRunning
	return true
}

// Restart starts a fresh run. It is ignored outside PhaseGameOver.
func (w *World) Restart() bool {
	if w.phase != PhaseGameOver {
		return false
	}
	w.reset()
	w.phase = PhaseRunning
	return true
}

// Step applies the frame's discrete events and, while running, advances the
// simulation by dt milliseconds.
func (w *World) Step(dt float64, in core.InputFrame) TickReport {
	var r TickReport

	for _, ev := range in.Events {
		switch ev {
		case core.EventBegin:
			if w.Begin() {
				r.Transition = TransitionBegan
			}
		case core.EventRestart:
			if w.Restart() {
				r.Transition = TransitionRestarted
			}
		case core.EventToggleFlight:
			if w.phase == PhaseRunning {
				r.FlightToggled = w.player.ToggleFlight()
			}
		}
	}

	if w.phase != PhaseRunning {
		return r
	}
	dt = max(dt, 0)

	w.tick++
	w.stats.Ticks++
	w.stats.Elapsed += dt

	w.updateScroll()
	w.player.Update(in, dt)
	w.spawnInterval = w.difficulty.SpawnInterval(w.spawnInterval, w.score)
	w.updateSpawner(dt, &r)
	w.updateEnemies(dt, &r)
	w.resolveCombat(&r)
	w.resolveProjectiles(&r)
	for i := range w.particles {
		w.particles[i].update(w.scroll)
	}
	w.sweep()

	if !w.player.Alive() {
		w.phase = PhaseGameOver
		r.Transition = TransitionGameOver
	}
	return r
}

// updateScroll pins the player once they push right past the scroll line;
// from then on their speed moves the world instead.
func (w *World) updateScroll() {
	pin := w.cfg.World.Width * w.cfg.World.ScrollPin
	if w.player.X > pin && w.player.Speed > 0 {
		w.scroll = w.player.Speed
		w.player.X = pin
	} else {
		w.scroll = 0
	}

	w.scrollOffset -= w.scroll * w.cfg.World.ParallaxFactor
	if w.scrollOffset <= -w.cfg.World.ParallaxWrap {
		w.scrollOffset = 0
	}
}

func (w *World) updateSpawner(dt float64, r *TickReport) {
	if w.spawnTimer > w.spawnInterval {
		w.enemies = append(w.enemies, spawnEnemy(w.rng, &w.cfg.Enemies, w.cfg.World.Width, w.cfg.World.Height))
		w.spawnTimer = 0
		r.Spawned++
		return
	}
	w.spawnTimer += dt
}

func (w *World) updateEnemies(dt float64, r *TickReport) {
	a := arena{
		width:   w.cfg.World.Width,
		height:  w.cfg.World.Height,
		scroll:  w.scroll,
		playerX: w.player.X,
		playerY: w.player.Y,
	}

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.alive() {
			continue
		}
		if shot, fired := e.update(a, &w.cfg.Enemies, &w.cfg.Projectile, dt); fired {
			w.projectiles = append(w.projectiles, shot)
			r.Fired++
			w.stats.ShotsFired++
		}
		if e.X+e.Width < 0 {
			e.escaped = true
			r.Escaped++
			w.stats.Escaped++
		}
	}
}

// burst spawns n particles at (x, y).
func (w *World) burst(x, y float64, c core.Color, n int) {
	for range n {
		w.particles = append(w.particles, newParticle(w.rng, &w.cfg.Particles, x, y, c))
	}
}

// sweep drops every entity marked during the tick.
func (w *World) sweep() {
	w.enemies = compact(w.enemies, func(e *Enemy) bool { return e.alive() })
	w.projectiles = compact(w.projectiles, func(p *Projectile) bool { return !p.dead })
	w.particles = compact(w.particles, func(p *Particle) bool { return p.Alive() })
}

// compact filters s in place, keeping elements for which keep is true.
func compact[T any](s []T, keep func(*T) bool) []T {
	valid := s[:0]
	for i := range s {
		if keep(&s[i]) {
			valid = append(valid, s[i])
		}
	}
	clear(s[len(valid):])
	return valid
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Score returns the run score.
func (w *World) Score() int { return w.score }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Enemies returns the live enemies. The slice must not be modified.
func (w *World) Enemies() []Enemy { return w.enemies }

// Projectiles returns the live enemy shots. The slice must not be modified.
func (w *World) Projectiles() []Projectile { return w.projectiles }

// Particles returns the live particles. The slice must not be modified.
func (w *World) Particles() []Particle { return w.particles }

// ScrollSpeed returns how far the world scrolled on the last tick.
func (w *World) ScrollSpeed() float64 { return w.scroll }

// ScrollOffset returns the parallax background offset.
func (w *World) ScrollOffset() float64 { return w.scrollOffset }

// SpawnInterval returns the spawn interval in effect.
func (w *World) SpawnInterval() float64 { return w.spawnInterval }

// Level returns the difficulty ramp progress for the current score.
func (w *World) Level() float64 { return w.difficulty.Level(w.score) }

// Tick returns the number of running ticks since the world was created.
func (w *World) Tick() uint64 { return w.tick }

// Stats returns the current run's statistics.
func (w *World) Stats() RunStats { return w.stats }

// Config returns the configuration the world runs with.
func (w *World) Config() config.GameConfig { return w.cfg }
