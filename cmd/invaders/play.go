package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const defaultVariant = "invaders"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: invaders).

Controls:
  Left/Right, A/D, H/L  - Move
  Space                 - Fire (release to fire again)
  P/Esc                 - Pause
  R                     - Restart with a new seed
  Ctrl+S                - Save a text screenshot
  Ctrl+Y                - Copy the screen to the clipboard
  Q/Ctrl+C              - Quit

Examples:
  invaders play
  invaders play swarm
  invaders play --seed 42 --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	gameCfg := loadConfig(logger)
	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		fatal("%v", err)
	}

	store := openStore(logger)
	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Input:  gameCfg.Input,
		Logger: logger,
	})
	closeStore(store, logger)

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
