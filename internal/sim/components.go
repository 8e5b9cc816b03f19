package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// Kind selects the movement and lifecycle rules that apply to an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindLaser
	KindEnemy
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLaser:
		return "laser"
	case KindEnemy:
		return "enemy"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Transform is position plus scale. Scale doubles as the laser collision
// multiplier.
type Transform struct {
	Pos   core.Vec2
	Scale core.Vec2
}

// Dimensions is an explicit collision size, independent of Transform.Scale.
type Dimensions struct {
	W, H float64
}

// Size returns the dimensions as a vector.
func (d Dimensions) Size() core.Vec2 {
	return core.V2(d.W, d.H)
}

// Speed is a magnitude in units per second; direction comes from the
// per-kind movement rule.
type Speed float64

// Heading is an enemy's random-walk movement intent.
type Heading struct {
	X, Y float64
}

// FireGate stops a held fire key from firing every tick.
type FireGate struct {
	Ready bool
}

// Sprite is an opaque asset handle. The simulation only carries it.
type Sprite string

// AnimState is the lifecycle of an explosion.
type AnimState uint8

const (
	AnimSpawned AnimState = iota
	AnimAnimating
	AnimFinished
)

func (s AnimState) String() string {
	switch s {
	case AnimSpawned:
		return "spawned"
	case AnimAnimating:
		return "animating"
	case AnimFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Animation is a one-shot, forward-only sprite sheet playback driven by a
// single repeating timer.
type Animation struct {
	Frame  int
	Frames int
	State  AnimState
	Timer  Timer
}
