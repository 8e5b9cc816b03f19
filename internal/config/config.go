// Package config provides YAML and TOML configuration loading for the
// invaders simulation and its terminal front end.
package config

// InvadersConfig contains all configuration for an invaders run.
type InvadersConfig struct {
	PlayArea   PlayAreaConfig   `yaml:"play_area" toml:"play_area"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Population PopulationConfig `yaml:"population" toml:"population"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Laser      LaserConfig      `yaml:"laser" toml:"laser"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Explosion  ExplosionConfig  `yaml:"explosion" toml:"explosion"`
	Input      InputConfig      `yaml:"input" toml:"input"`
}

// PlayAreaConfig defines the simulated play area, fixed for a session.
type PlayAreaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TimingConfig defines the logical tick rate and the periodic cadences.
type TimingConfig struct {
	TickRate          int `yaml:"tick_rate" toml:"tick_rate"`                     // Logical ticks per second
	MaxCatchUpTicks   int `yaml:"max_catch_up_ticks" toml:"max_catch_up_ticks"`   // Ticks one frame may run
	SpawnIntervalMs   int `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`     // Enemy spawn cadence
	HeadingIntervalMs int `yaml:"heading_interval_ms" toml:"heading_interval_ms"` // Enemy re-heading cadence
}

// PopulationConfig bounds the number of live enemies.
type PopulationConfig struct {
	Cap int `yaml:"cap" toml:"cap"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Margin float64 `yaml:"margin" toml:"margin"` // Half sprite width kept inside the area
	Lift   float64 `yaml:"lift" toml:"lift"`     // Gap between sprite and bottom edge
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// LaserConfig defines player shots.
type LaserConfig struct {
	Speed         float64 `yaml:"speed" toml:"speed"`
	ScaleX        float64 `yaml:"scale_x" toml:"scale_x"`
	ScaleY        float64 `yaml:"scale_y" toml:"scale_y"`
	GunOffsetX    float64 `yaml:"gun_offset_x" toml:"gun_offset_x"`
	GunOffsetY    float64 `yaml:"gun_offset_y" toml:"gun_offset_y"`
	CollisionUnit float64 `yaml:"collision_unit" toml:"collision_unit"` // Extent = scale * unit
	Sprite        string  `yaml:"sprite" toml:"sprite"`
}

// EnemyConfig defines enemy size and random-walk behaviour.
type EnemyConfig struct {
	Speed          float64 `yaml:"speed" toml:"speed"`
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	ScaleX         float64 `yaml:"scale_x" toml:"scale_x"`
	ScaleY         float64 `yaml:"scale_y" toml:"scale_y"`
	InitialHeading float64 `yaml:"initial_heading" toml:"initial_heading"`
	ReHeading      float64 `yaml:"re_heading" toml:"re_heading"`
	Rebound        float64 `yaml:"rebound" toml:"rebound"`
	Sprite         string  `yaml:"sprite" toml:"sprite"`
}

// ExplosionConfig defines the explosion sprite sheet playback.
type ExplosionConfig struct {
	Frames        int    `yaml:"frames" toml:"frames"`
	FramePeriodMs int    `yaml:"frame_period_ms" toml:"frame_period_ms"`
	Sprite        string `yaml:"sprite" toml:"sprite"`
}

// InputConfig tunes how terminal key repeats become held input.
type InputConfig struct {
	HoldTicks        int `yaml:"hold_ticks" toml:"hold_ticks"`                 // Frames a direction stays held after its last key event
	FireReleaseTicks int `yaml:"fire_release_ticks" toml:"fire_release_ticks"` // Idle frames before fire counts as released
}
