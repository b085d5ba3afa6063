package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
	"github.com/vovakirdan/antigravity/internal/games/antigravity"
	"github.com/vovakirdan/antigravity/internal/platform/tui"
	"github.com/vovakirdan/antigravity/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Antigravity",
	Long: `Start the game. Without --difficulty a menu offers the presets first and
you return to it after each run.

Controls:
  A/D, Left/Right  - Walk
  Up               - Jump (fly up while flying)
  W                - Hold to charge a mega jump (fly up while flying)
  S/Down           - Fly down
  F                - Toggle flight
  Space/Z          - Punch (Space also jumps)
  X                - Laser
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back to menu (after game over or while paused)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 200 HP, weaker enemy shots
  normal - Stock settings
  hard   - 100 HP, more elite saucers
  fixed  - No spawn-rate ramp

Examples:
  antigravity play
  antigravity play --difficulty hard
  antigravity play --config ./my-antigravity.toml --hold 200`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your runs (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "antigravity"})

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, runs will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.Options{
		Player:     flagPlayer,
		HoldWindow: holdWindow(),
	}

	// A preset on the command line skips the menu.
	if p := preset(); p != "" {
		game, gameErr := newGame(p)
		if gameErr != nil {
			logger.Error("cannot load config", "error", gameErr)
			exit(store, 1)
		}
		opts.Difficulty = string(p)
		if _, runErr := tui.Run(game, store, cfg, opts); runErr != nil {
			logger.Error("error running game", "error", runErr)
			exit(store, 1)
		}
		return
	}

	err = tui.RunSession(store, tui.SessionConfig{
		GameID:  antigravity.ID,
		Title:   gameTitle(),
		Factory: newGame,
		Runtime: cfg,
		Options: opts,
		Preset:  config.DifficultyNormal,
	})
	if err != nil {
		logger.Error("error running game", "error", err)
		exit(store, 1)
	}
}

// exit closes the store before leaving, since deferred calls do not run on os.Exit.
func exit(store *storage.Store, code int) {
	if store != nil {
		store.Close()
	}
	os.Exit(code)
}
