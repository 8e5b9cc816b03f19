// invaders is a terminal space shooter built on a fixed-tick simulation.
//
// Usage:
//
//	invaders list              - List available variants
//	invaders play [variant]    - Play a variant (default: invaders)
//	invaders menu              - Pick a variant interactively
//	invaders serve             - Start SSH server for remote play
//	invaders scores [variant]  - Show high scores
//	invaders config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game configuration file (.yaml or .toml)
//	--fps <rate>        - Redraw rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Database path (default: ~/.invaders/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the swarm in your terminal",
	Long: `Invaders is a terminal shooter. Enemies appear at a steady pace up to a
population cap and wander the field; your ship fires twin lasers and every
hit leaves a short explosion.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play swarm --seed 42
  invaders play --config ./fast.toml
  invaders serve --ssh :2222
  invaders scores swarm`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. Full-screen commands pass
// fullScreen so logs never reach the terminal unless --log-file is set.
// The returned func closes the log file.
func newLogger(fullScreen bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatal("invalid --log-level %q", flagLogLevel)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fatal("cannot open log file: %v", openErr)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case fullScreen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	return logger, closeFn
}

// loadConfig resolves the game configuration from --config and the
// default search path.
func loadConfig(logger *log.Logger) config.InvadersConfig {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	logger.Debug("config loaded",
		"tick_rate", cfg.Timing.TickRate,
		"cap", cfg.Population.Cap,
		"spawn_ms", cfg.Timing.SpawnIntervalMs,
	)
	return cfg
}

// openStore opens the score database, or returns nil when it cannot be
// opened. Games still work without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	if version, verErr := store.SchemaVersion(context.Background()); verErr == nil {
		logger.Debug("scores database ready", "path", flagDBPath, "schema", version)
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close scores database", "error", err)
	}
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
