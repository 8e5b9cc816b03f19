// Package sim is the arcade simulation: a fixed-rate tick loop running the
// spawn, movement, collision and explosion systems over an ecs.World.
//
// Coordinates follow the play area's center origin with y pointing up.
// Nothing in this package blocks, allocates goroutines or touches I/O.
package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidParams is wrapped by Params.Validate failures.
var ErrInvalidParams = errors.New("sim: invalid parameters")

// Sprites are the opaque asset handles attached to created entities.
type Sprites struct {
	Player    Sprite
	Laser     Sprite
	Enemy     Sprite
	Explosion Sprite
}

// Params fixes every tunable of a simulation run. It is read once at
// construction; nothing is reconfigured while ticking.
type Params struct {
	Width  float64 // Play area width
	Height float64 // Play area height

	TickRate        int           // Logical ticks per second
	MaxCatchUpTicks int           // Upper bound on ticks run by one Advance call
	SpawnInterval   time.Duration // Enemy spawn cadence
	HeadingInterval time.Duration // Enemy re-heading cadence
	FramePeriod     time.Duration // Explosion frame period

	PopulationCap   int     // Maximum live enemies
	CollisionUnit   float64 // Laser extent = scale * unit
	ExplosionFrames int     // Frames in the explosion sheet

	PlayerSpeed  float64
	PlayerMargin float64 // Half the player sprite width, kept inside the play area
	PlayerLift   float64 // Padding between the player sprite and the bottom edge

	LaserSpeed float64
	LaserScale core.Vec2
	GunOffset  core.Vec2 // Lasers spawn at (x ± GunOffset.X, y + GunOffset.Y)

	EnemySpeed     float64
	EnemySize      core.Vec2 // Collision dimensions
	EnemyScale     core.Vec2 // Render scale of the raw sprite
	InitialHeading float64   // New enemies roll their heading in [-v, v) per axis
	ReHeading      float64   // Periodic re-heading range
	Rebound        float64   // Heading range resampled after a wall hit

	Sprites Sprites
}

// DefaultParams returns the stock tuning: an 800x600 area at 60 Hz.
func DefaultParams() Params {
	return Params{
		Width:           800,
		Height:          600,
		TickRate:        60,
		MaxCatchUpTicks: 8,
		SpawnInterval:   2500 * time.Millisecond,
		HeadingInterval: 500 * time.Millisecond,
		FramePeriod:     50 * time.Millisecond,
		PopulationCap:   5,
		CollisionUnit:   32,
		ExplosionFrames: 8,
		PlayerSpeed:     500,
		PlayerMargin:    32,
		PlayerLift:      5,
		LaserSpeed:      500,
		LaserScale:      core.V2(0.4, 0.5),
		GunOffset:       core.V2(20, 6),
		EnemySpeed:      200,
		EnemySize:       core.V2(32, 32),
		EnemyScale:      core.V2(0.5, 0.5),
		InitialHeading:  1.0,
		ReHeading:       2.5,
		Rebound:         5.0,
		Sprites: Sprites{
			Player:    "player",
			Laser:     "laser",
			Enemy:     "enemy",
			Explosion: "explosion",
		},
	}
}

// Validate reports the first parameter that cannot drive a simulation.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: play area %gx%g must be positive", ErrInvalidParams, p.Width, p.Height)
	case p.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidParams, p.TickRate)
	case p.MaxCatchUpTicks <= 0:
		return fmt.Errorf("%w: max catch-up ticks %d must be positive", ErrInvalidParams, p.MaxCatchUpTicks)
	case p.SpawnInterval <= 0 || p.HeadingInterval <= 0 || p.FramePeriod <= 0:
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidParams)
	case p.PopulationCap < 1:
		return fmt.Errorf("%w: population cap %d must be at least 1", ErrInvalidParams, p.PopulationCap)
	case p.ExplosionFrames < 1:
		return fmt.Errorf("%w: explosion needs at least one frame", ErrInvalidParams)
	case p.CollisionUnit <= 0:
		return fmt.Errorf("%w: collision unit %g must be positive", ErrInvalidParams, p.CollisionUnit)
	case p.EnemySize.X <= 0 || p.EnemySize.Y <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidParams)
	case p.EnemySize.X >= p.Width || p.EnemySize.Y >= p.Height:
		return fmt.Errorf("%w: enemy does not fit the play area", ErrInvalidParams)
	case p.PlayerMargin*2 >= p.Width:
		return fmt.Errorf("%w: player margin leaves no room to move", ErrInvalidParams)
	}
	return nil
}

// TickDelta is the fixed logical step in seconds.
func (p Params) TickDelta() float64 {
	return 1 / float64(p.TickRate)
}

// TickDuration is the fixed logical step as wall time.
func (p Params) TickDuration() time.Duration {
	return time.Second / time.Duration(p.TickRate)
}

// TicksFor converts a period to a whole number of ticks, at least one.
// Cadences are counted in ticks so they never drift against the tick rate.
func (p Params) TicksFor(d time.Duration) int {
	n := int(math.Round(d.Seconds() * float64(p.TickRate)))
	if n < 1 {
		return 1
	}
	return n
}
