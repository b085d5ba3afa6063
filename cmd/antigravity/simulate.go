package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/games/antigravity"
)

var (
	flagSimTicks   int
	flagSimStep    float64
	flagSimScript  string
	flagSimRuns    int
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless and report",
	Long: `Run the simulation without a terminal, driven by a built-in script, and
log a summary per run. The same seed and script always produce the same run.

Scripts:
  autopilot - Flies, aims the laser at the closest saucer and punches in reach
  idle      - Starts the run and stands still

Examples:
  antigravity simulate --seed 7
  antigravity simulate --ticks 100000 --runs 5 --difficulty hard
  antigravity simulate --script idle --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum ticks per run")
	simulateCmd.Flags().Float64Var(&flagSimStep, "step", 16, "Milliseconds simulated per tick")
	simulateCmd.Flags().StringVar(&flagSimScript, "script", "autopilot", "Input script: autopilot or idle")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs (seed increments per run)")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every kill and hit")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	script, ok := antigravity.ScriptByName(flagSimScript)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown script %q (want autopilot or idle)\n", flagSimScript)
		os.Exit(1)
	}

	cfg, err := config.LoadWithPreset(flagConfig, preset())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	best := 0
	for run := range flagSimRuns {
		s := simulate(cfg, seed+int64(run), script, logger.With("run", run+1))
		best = max(best, s.score)
	}
	if flagSimRuns > 1 {
		logger.Info("all runs done", "runs", flagSimRuns, "best", best)
	}
}

type simResult struct {
	score int
	stats antigravity.RunStats
	over  bool
}

// simulate plays one run to game over or the tick limit.
func simulate(cfg config.GameConfig, seed int64, script antigravity.Script, logger *log.Logger) simResult {
	w := antigravity.NewWorld(cfg, seed)
	start := time.Now()

	for range flagSimTicks {
		r := w.Step(flagSimStep, script(w))

		if r.Kills > 0 {
			logger.Debug("kill", "tick", w.Tick(), "kills", r.Kills, "elite", r.EliteKills, "score", w.Score())
		}
		if r.PlayerHits > 0 {
			logger.Debug("hit", "tick", w.Tick(), "damage", r.DamageTaken, "health", w.Player().Health)
		}
		if r.FlightToggled {
			logger.Debug("flight", "tick", w.Tick(), "mode", w.Player().Mode())
		}
		if r.Transition == antigravity.TransitionGameOver {
			break
		}
	}

	res := simResult{score: w.Score(), stats: w.Stats(), over: w.Phase() == antigravity.PhaseGameOver}
	simulated := time.Duration(res.stats.Elapsed * float64(time.Millisecond))
	logger.Info("run finished",
		"seed", seed,
		"score", res.score,
		"kills", res.stats.Kills,
		"elite", res.stats.EliteKills,
		"escaped", res.stats.Escaped,
		"shots", res.stats.ShotsFired,
		"damage", res.stats.DamageTaken,
		"ticks", res.stats.Ticks,
		"simulated", simulated.Round(time.Millisecond),
		"game_over", res.over,
		"wall", time.Since(start).Round(time.Millisecond),
	)
	return res
}
