// antigravity is a terminal side-scroller: a flying hero punches and lasers
// waves of saucers.
//
// Usage:
//
//	antigravity play          - Pick a difficulty and play
//	antigravity serve         - Start SSH server for remote play
//	antigravity scores        - Show the top 10 runs
//	antigravity board         - Browse runs in an interactive table
//	antigravity simulate      - Run the engine headless and report
//	antigravity config        - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.antigravity/runs.db)
//	--config <path>       - Custom game config (.yaml or .toml)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--hold <ms>           - How long a key counts as held after a press
//
// Flags left unset fall back to ANTIGRAVITY_DB, ANTIGRAVITY_CONFIG and
// ANTIGRAVITY_DIFFICULTY, which may also come from a .env file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/games/antigravity"
	"github.com/vovakirdan/antigravity/internal/platform/tui"
	"github.com/vovakirdan/antigravity/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagHoldMS     int
)

// envFlags maps flags to the environment variables that provide their defaults.
var envFlags = map[string]string{
	"db":         "ANTIGRAVITY_DB",
	"config":     "ANTIGRAVITY_CONFIG",
	"difficulty": "ANTIGRAVITY_DIFFICULTY",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antigravity",
	Short: "Antigravity - a terminal side-scrolling brawler",
	Long: `Antigravity is a side-scroller played in the terminal. Walk, jump or fly,
punch saucers up close and laser them from afar before their shots wear you down.

Available commands:
  play      - Pick a difficulty and play
  serve     - Start SSH server for remote play
  scores    - Show the top 10 runs
  board     - Browse runs interactively
  simulate  - Run the engine without a terminal
  config    - Print the effective configuration

Examples:
  antigravity play
  antigravity play --difficulty hard
  antigravity serve --ssh :2222
  antigravity simulate --ticks 36000 --seed 7
  antigravity config --difficulty easy`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.antigravity/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagHoldMS, "hold", int(tui.DefaultHoldWindow/time.Millisecond), "Milliseconds a key counts as held after a press")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads an optional .env file and fills unset flags from the environment,
// then validates the difficulty name.
func applyEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // The .env file is optional
	godotenv.Load()

	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}

// preset returns the selected difficulty preset ("" when unset).
func preset() config.DifficultyPreset {
	return config.ParsePreset(flagDifficulty)
}

// holdWindow returns the --hold flag as a duration.
func holdWindow() time.Duration {
	return time.Duration(flagHoldMS) * time.Millisecond
}

// newGame builds a game for preset from the --config file.
func newGame(p config.DifficultyPreset) (registry.Game, error) {
	g, err := antigravity.NewForPreset(flagConfig, p)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// gameTitle looks the title up through the registry.
func gameTitle() string {
	g, err := registry.Create(antigravity.ID)
	if err != nil {
		return antigravity.ID
	}
	return g.Title()
}
