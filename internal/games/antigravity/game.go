// Package antigravity implements a side-scrolling brawler in which a flying
// hero punches and lasers waves of saucers.
//
// World holds the deterministic simulation and advances only when stepped
// with an elapsed time and an input snapshot. Game adapts it to the
// registry and adds pause and terminal rendering.
package antigravity

import (
	"time"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
	"github.com/vovakirdan/antigravity/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "antigravity"

// Game implements registry.Game around a World.
type Game struct {
	world    *World
	cfg      *config.GameConfig // Fixed config; nil searches the default paths on Reset
	renderer *Renderer
	runtime  core.RuntimeConfig
	paused   bool
	last     TickReport
}

// New creates a game that loads its configuration from the default search
// paths on Reset.
func New() *Game {
	return &Game{renderer: NewRenderer()}
}

// NewWithConfig creates a game bound to a fixed configuration.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{cfg: &cfg, renderer: NewRenderer()}
}

// NewForPreset loads the configuration at path (defaults when empty), applies
// preset and returns a game bound to the result.
func NewForPreset(path string, preset config.DifficultyPreset) (*Game, error) {
	cfg, err := config.LoadWithPreset(path, preset)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Antigravity"
}

// Reset builds a fresh world on its start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.loadConfig(), runtime.Seed)
	g.paused = false
	g.last = TickReport{}
}

func (g *Game) loadConfig() config.GameConfig {
	if g.cfg != nil {
		return *g.cfg
	}
	cfg, err := config.Load("")
	if err != nil {
		return config.DefaultGameConfig()
	}
	return cfg
}

// Step advances the game by dt of wall time.
// Pause only applies to a running world and freezes it entirely.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}

	if in.HasEvent(core.EventPause) && g.world.Phase() == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		g.last = TickReport{}
		return core.StepResult{State: g.State()}
	}

	g.last = g.world.Step(float64(dt)/float64(time.Millisecond), in)
	return core.StepResult{State: g.State()}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	g.renderer.Draw(dst, g.world.Snapshot(), g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.Score(),
		Started:  phase != PhaseNotStarted,
		GameOver: phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Summary reports the current run.
func (g *Game) Summary() core.RunSummary {
	if g.world == nil {
		return core.RunSummary{}
	}
	stats := g.world.Stats()
	return core.RunSummary{
		Score:      g.world.Score(),
		Kills:      stats.Kills,
		EliteKills: stats.EliteKills,
		Ticks:      stats.Ticks,
		Elapsed:    time.Duration(stats.Elapsed * float64(time.Millisecond)),
	}
}

// World returns the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// LastReport returns the report of the most recent Step.
func (g *Game) LastReport() TickReport {
	return g.last
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
