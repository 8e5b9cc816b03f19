package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant (default: invaders).

Examples:
  invaders scores
  invaders scores swarm --limit 20
  invaders scores --tui
  invaders scores swarm --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all variants in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(flagScoresTUI)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer closeStore(store, logger)

	if flagScoresTUI {
		rt := runtimeConfig()
		tickRate := loadConfig(logger).Timing.TickRate
		if _, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH, tickRate); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Error("cannot clear scores", "game", gameID, "error", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		logger.Error("cannot read scores", "game", gameID, "error", err)
		return
	}

	infos := registry.List()
	title := gameID
	for _, info := range infos {
		if info.ID == gameID {
			title = info.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "Rank", "Kills", "Ticks", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-8d  %-20d  %s\n",
			i+1, entry.Score, entry.Ticks, entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Replay a run with 'invaders play %s --seed <seed>'.\n", gameID)
}
