package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
	"github.com/vovakirdan/antigravity/internal/registry"
	"github.com/vovakirdan/antigravity/internal/storage"
)

// GameFactory creates a game configured for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (registry.Game, error)

// SessionConfig describes one interactive session.
type SessionConfig struct {
	GameID  string
	Title   string
	Factory GameFactory
	Runtime core.RuntimeConfig
	Options Options                 // Player and hold window; Difficulty is set per game
	Preset  config.DifficultyPreset // Preselected menu entry
	Logger  *log.Logger             // Optional
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. Used for SSH sessions and local play.
type SessionModel struct {
	cfg      SessionConfig
	store    *storage.Store
	screen   sessionScreen
	menu     MenuModel
	board    ScoreboardModel
	game     *Model
	preset   config.DifficultyPreset
	err      error // Last factory error, shown on the menu
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg SessionConfig) SessionModel {
	return SessionModel{
		cfg:    cfg,
		store:  store,
		preset: cfg.Preset,
		menu:   NewMenuModel(store, cfg.GameID, cfg.Title, cfg.Preset, cfg.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished game
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScoreboard
		m.board = NewScoreboardModel(m.store, m.cfg.GameID, m.cfg.Title, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().Preset)
	}

	return m, cmd
}

// startGame creates a game for preset and switches to it.
func (m SessionModel) startGame(preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := m.cfg.Factory(preset)
	if err != nil {
		m.err = err
		m.logger().Error("cannot create game", "preset", preset, "error", err)
		return m.toMenu()
	}

	m.preset = preset
	runtime := m.cfg.Runtime
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	opts := m.cfg.Options
	opts.Difficulty = string(preset)
	opts.AllowBack = true

	gm := NewModel(game, m.store, runtime, opts)
	m.game = &gm
	m.screen = screenGame
	m.err = nil
	m.logger().Info("game started", "player", opts.Player, "difficulty", preset)
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	before, beforeErr := m.game.LastRun(), m.game.SaveErr()

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if run := m.game.LastRun(); run != nil && run != before {
		m.logger().Info("game over",
			"player", run.Player,
			"score", run.Score,
			"kills", run.Kills,
			"run", run.RunID,
		)
	}
	if err := m.game.SaveErr(); err != nil && beforeErr == nil {
		m.logger().Warn("could not save run", "error", err)
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = board
	}

	if m.board.IsGoingBack() {
		return m.toMenu()
	}
	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// toMenu rebuilds the menu so its stats reflect the latest runs.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.cfg.GameID, m.cfg.Title, m.preset, m.cfg.Runtime)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.board.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(fmt.Sprintf("Error: %v", m.err), m.cfg.Runtime.ScreenW) + "\n"
	}
	return view
}

// logger returns the configured logger or a discarding one.
func (m SessionModel) logger() *log.Logger {
	if m.cfg.Logger != nil {
		return m.cfg.Logger
	}
	return nopLogger
}

var nopLogger = log.New(io.Discard)

// RunSession runs an interactive session in the local terminal.
func RunSession(store *storage.Store, cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
