package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are overlaid on the defaults, so a file only needs the keys it
// changes. A customPath that cannot be read or parsed is an error; the
// other locations are skipped when unusable.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Decode(customPath, data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Decode(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "invaders.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := Decode(local, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode("invaders.yaml", defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data over the defaults. Names ending in .toml are read as
// TOML, anything else as YAML.
func Decode(name string, data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate reports the first value that cannot drive a simulation.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Timing.SpawnIntervalMs <= 0:
		return fmt.Errorf("%w: timing.spawn_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.SpawnIntervalMs)
	case c.Timing.HeadingIntervalMs <= 0:
		return fmt.Errorf("%w: timing.heading_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.HeadingIntervalMs)
	case c.Explosion.FramePeriodMs <= 0:
		return fmt.Errorf("%w: explosion.frame_period_ms must be positive, got %d", ErrInvalidConfig, c.Explosion.FramePeriodMs)
	case c.Input.HoldTicks < 1:
		return fmt.Errorf("%w: input.hold_ticks must be at least 1, got %d", ErrInvalidConfig, c.Input.HoldTicks)
	case c.Input.FireReleaseTicks < 1:
		return fmt.Errorf("%w: input.fire_release_ticks must be at least 1, got %d", ErrInvalidConfig, c.Input.FireReleaseTicks)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params converts the configuration into simulation parameters.
func (c InvadersConfig) Params() sim.Params {
	return sim.Params{
		Width:           c.PlayArea.Width,
		Height:          c.PlayArea.Height,
		TickRate:        c.Timing.TickRate,
		MaxCatchUpTicks: c.Timing.MaxCatchUpTicks,
		SpawnInterval:   millis(c.Timing.SpawnIntervalMs),
		HeadingInterval: millis(c.Timing.HeadingIntervalMs),
		FramePeriod:     millis(c.Explosion.FramePeriodMs),
		PopulationCap:   c.Population.Cap,
		CollisionUnit:   c.Laser.CollisionUnit,
		ExplosionFrames: c.Explosion.Frames,
		PlayerSpeed:     c.Player.Speed,
		PlayerMargin:    c.Player.Margin,
		PlayerLift:      c.Player.Lift,
		LaserSpeed:      c.Laser.Speed,
		LaserScale:      core.V2(c.Laser.ScaleX, c.Laser.ScaleY),
		GunOffset:       core.V2(c.Laser.GunOffsetX, c.Laser.GunOffsetY),
		EnemySpeed:      c.Enemy.Speed,
		EnemySize:       core.V2(c.Enemy.Width, c.Enemy.Height),
		EnemyScale:      core.V2(c.Enemy.ScaleX, c.Enemy.ScaleY),
		InitialHeading:  c.Enemy.InitialHeading,
		ReHeading:       c.Enemy.ReHeading,
		Rebound:         c.Enemy.Rebound,
		Sprites: sim.Sprites{
			Player:    sim.Sprite(c.Player.Sprite),
			Laser:     sim.Sprite(c.Laser.Sprite),
			Enemy:     sim.Sprite(c.Enemy.Sprite),
			Explosion: sim.Sprite(c.Explosion.Sprite),
		},
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
