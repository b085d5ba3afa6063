package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/antigravity/internal/games/antigravity"
	"github.com/vovakirdan/antigravity/internal/platform/tui"
	"github.com/vovakirdan/antigravity/internal/storage"
)

var flagScoresPlayer string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10 runs",
	Long: `Display the 10 best runs, or the latest runs of one player.

Examples:
  antigravity scores
  antigravity scores --player ada`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse runs in an interactive table",
	Long: `Open the scoreboard table. Tab and the arrow keys switch between
difficulties, Esc or Q leaves.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show this player's most recent runs instead")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, 10)
		fmt.Printf("Recent runs - %s\n", flagScoresPlayer)
	} else {
		runs, err = store.TopScores(antigravity.ID, 10)
		fmt.Printf("High Scores - %s\n", gameTitle())
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'antigravity play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Kills", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-6s  %-7s  %s\n", "----", "------", "-----", "-----", "----", "----", "----")

	for i, r := range runs {
		secs := int(time.Duration(r.DurationMS) * time.Millisecond / time.Second)
		mode := r.Difficulty
		if mode == "" {
			mode = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %-6s  %-7s  %s\n",
			i+1, r.Player, r.Score, r.Kills, fmt.Sprintf("%d:%02d", secs/60, secs%60), mode,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetGameStats(antigravity.ID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Saucers downed: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalKills)
	}
}

func runBoard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, antigravity.ID, gameTitle(), width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
