package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The result merges --config (or the first file found in
~/.invaders/configs and ./configs) over the built-in defaults.

Examples:
  invaders config > configs/invaders.yaml
  invaders config --config ./fast.toml
  invaders config --defaults`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		_, _ = os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(loadConfig(logger)); err != nil {
		fatal("encoding config: %v", err)
	}
	_ = enc.Close()
}
