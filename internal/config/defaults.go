package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		PlayArea: PlayAreaConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			TickRate:          60,
			MaxCatchUpTicks:   8,
			SpawnIntervalMs:   2500,
			HeadingIntervalMs: 500,
		},
		Population: PopulationConfig{
			Cap: 5,
		},
		Player: PlayerConfig{
			Speed:  500,
			Margin: 32,
			Lift:   5,
			Sprite: "player",
		},
		Laser: LaserConfig{
			Speed:         500,
			ScaleX:        0.4,
			ScaleY:        0.5,
			GunOffsetX:    20,
			GunOffsetY:    6,
			CollisionUnit: 32,
			Sprite:        "laser",
		},
		Enemy: EnemyConfig{
			Speed:          200,
			Width:          32,
			Height:         32,
			ScaleX:         0.5,
			ScaleY:         0.5,
			InitialHeading: 1.0,
			ReHeading:      2.5,
			Rebound:        5.0,
			Sprite:         "enemy",
		},
		Explosion: ExplosionConfig{
			Frames:        8,
			FramePeriodMs: 50,
			Sprite:        "explosion",
		},
		Input: InputConfig{
			HoldTicks:        6,
			FireReleaseTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
