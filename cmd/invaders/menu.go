package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant and Tab for
the scoreboard. Press B during a game to return to the menu.

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	gameCfg := loadConfig(logger)
	store := openStore(logger)

	err := tui.RunSession(runtimeConfig(), gameCfg, tui.Options{
		Store:  store,
		Input:  gameCfg.Input,
		Logger: logger,
	})
	closeStore(store, logger)

	if err != nil {
		fatal("%v", err)
	}
}
