package sim

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// MovementSystem advances the player, lasers and enemies, and turns the
// fire intent into lasers.
type MovementSystem struct {
	heading Timer
}

func NewMovementSystem(p Params) *MovementSystem {
	return &MovementSystem{heading: NewTimer(p.TicksFor(p.HeadingInterval))}
}

func (*MovementSystem) Name() string { return "movement" }

func (sys *MovementSystem) Run(s *Simulation) {
	for _, id := range s.ofKind(KindPlayer) {
		movePlayer(s, id)
		fire(s, id)
	}

	for _, id := range s.ofKind(KindLaser) {
		moveLaser(s, id)
	}

	if sys.heading.Tick() {
		for _, id := range s.ofKind(KindEnemy) {
			reHead(s, id)
		}
	}
	for _, id := range s.ofKind(KindEnemy) {
		moveEnemy(s, id)
	}
}

// movePlayer moves horizontally, refusing any step that would put part of
// the sprite outside the play area. There is no partial step at the edge.
func movePlayer(s *Simulation, id ecs.EntityID) {
	tr, _ := s.transforms.Get(id)
	speed, _ := s.speeds.Get(id)

	x := tr.Pos.X + float64(s.input.Move)*float64(*speed)*s.dt
	if math.Abs(x) < s.params.Width/2-s.params.PlayerMargin {
		tr.Pos.X = x
	}
}

func fire(s *Simulation, player ecs.EntityID) {
	gate, ok := s.gates.Get(player)
	if !ok {
		return
	}
	tr, _ := s.transforms.Get(player)
	p := s.params

	if gate.Ready && s.input.FirePressed {
		y := tr.Pos.Y + p.GunOffset.Y
		for _, dx := range []float64{p.GunOffset.X, -p.GunOffset.X} {
			pos := core.V2(tr.Pos.X+dx, y)
			s.world.Spawn(func(id ecs.EntityID) {
				s.attach(id, KindLaser, Transform{Pos: pos, Scale: p.LaserScale}, p.LaserSpeed, p.Sprites.Laser)
			})
		}
		gate.Ready = false
	}

	if s.input.FireReleased && !gate.Ready {
		gate.Ready = true
	}
}

// moveLaser flies straight up and removes the laser once it passes the
// play-area height.
func moveLaser(s *Simulation, id ecs.EntityID) {
	tr, _ := s.transforms.Get(id)
	speed, _ := s.speeds.Get(id)

	y := tr.Pos.Y + float64(*speed)*s.dt
	if y > s.params.Height {
		s.world.Despawn(id)
		return
	}
	tr.Pos.Y = y
}

func reHead(s *Simulation, id ecs.EntityID) {
	h, _ := s.headings.Get(id)
	r := s.params.ReHeading
	h.X = uniform(s.rng, -r, r)
	h.Y = uniform(s.rng, -r, r)
}

// moveEnemy drifts along the heading. An axis whose step would leave the
// area is not moved; instead that axis gets a fresh random heading.
func moveEnemy(s *Simulation, id ecs.EntityID) {
	tr, _ := s.transforms.Get(id)
	speed, _ := s.speeds.Get(id)
	h, _ := s.headings.Get(id)

	step := float64(*speed) * s.dt
	r := s.params.Rebound

	x := tr.Pos.X + step*h.X
	if math.Abs(x) < s.params.Width/2 {
		tr.Pos.X = x
	} else {
		h.X = uniform(s.rng, -r, r)
	}

	y := tr.Pos.Y + step*h.Y
	if math.Abs(y) < s.params.Height/2 {
		tr.Pos.Y = y
	} else {
		h.Y = uniform(s.rng, -r, r)
	}
}
