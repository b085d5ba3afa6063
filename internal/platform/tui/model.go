package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antigravity/internal/core"
	"github.com/vovakirdan/antigravity/internal/registry"
	"github.com/vovakirdan/antigravity/internal/storage"
)

// maxFrameDelta caps the elapsed time fed to a single tick so a stalled
// terminal does not teleport the world forward.
const maxFrameDelta = 100 * time.Millisecond

// Options tunes a play session.
type Options struct {
	Player     string        // Name stored with saved runs
	Difficulty string        // Preset label stored with saved runs
	HoldWindow time.Duration // See HoldTracker
	AllowBack  bool          // B/Esc after game over returns to the menu instead of quitting
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	holds     *HoldTracker
	pending   []core.Event // Events queued since the last tick
	gameState core.GameState
	lastTick  time.Time
	clock     func() time.Time

	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been persisted
	lastRun    *storage.RunRecord
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = defaultPlayerName()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		keys:      NewKeyMapper(),
		holds:     NewHoldTracker(opts.HoldWindow),
		gameState: game.State(),
		clock:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.opts.AllowBack && m.wantsBack(msg) {
		m.backToMenu = true
		return m, tea.Quit
	}

	binding, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := m.clock()
	for _, c := range binding.Controls {
		m.holds.Press(c, now)
	}
	m.pending = append(m.pending, binding.Events...)
	return m, nil
}

// wantsBack reports whether msg leaves the game for the menu: B or Esc after
// game over, or B while paused (Esc unpauses).
func (m Model) wantsBack(msg tea.KeyMsg) bool {
	switch {
	case m.gameState.GameOver:
		return m.keys.MapKeyToMenuAction(msg) == MenuActionBack
	case m.gameState.Paused:
		return msg.String() == "b"
	}
	return false
}

// handleResize processes window resize events.
// The renderer scales the fixed-size world, so the run survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step covering the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)
	m.lastTick = now

	frame := core.NewInputFrame()
	m.holds.Fill(&frame, now)
	for _, ev := range m.pending {
		frame.Push(ev)
	}
	m.pending = m.pending[:0]

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame, dt)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Restarted
		m.runSaved = false
		m.lastRun = nil
		m.saveErr = nil
	}
	if m.gameState.Paused {
		m.holds.Release()
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// frameDelta returns the elapsed time for this tick, clamped to
// [0, maxFrameDelta]. The first tick uses the nominal tick interval.
func (m Model) frameDelta(now time.Time) time.Duration {
	if m.lastTick.IsZero() {
		return time.Second / time.Duration(m.config.TickRate)
	}
	dt := now.Sub(m.lastTick)
	return min(max(dt, 0), maxFrameDelta)
}

// saveRun persists the finished run once. Zero-score runs are not recorded.
func (m *Model) saveRun() {
	m.runSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	rec := storage.RunRecord{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Score:      m.gameState.Score,
		Difficulty: m.opts.Difficulty,
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		rec.Kills = sum.Kills
		rec.EliteKills = sum.EliteKills
		rec.Ticks = sum.Ticks
		rec.DurationMS = sum.Elapsed.Milliseconds()
	}

	saved, err := m.store.SaveRun(rec)
	if err != nil {
		m.saveErr = err
		return
	}
	m.lastRun = &saved
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".antigravity", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRun returns the most recently saved run, or nil.
func (m Model) LastRun() *storage.RunRecord {
	return m.lastRun
}

// SaveErr returns the error from the last failed run save, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// defaultPlayerName uses the login name, falling back to "player".
func defaultPlayerName() string {
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "player"
}

// Run starts the Bubble Tea program with the given model.
// It returns the final model so callers can inspect the outcome.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
