package sim

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// SpawnSystem adds one enemy per spawn interval while the population is
// under its cap.
type SpawnSystem struct {
	timer Timer
}

func NewSpawnSystem(p Params) *SpawnSystem {
	return &SpawnSystem{timer: NewTimer(p.TicksFor(p.SpawnInterval))}
}

func (*SpawnSystem) Name() string { return "spawn" }

func (sys *SpawnSystem) Run(s *Simulation) {
	if !sys.timer.Tick() {
		return
	}
	if !s.population.CanSpawn() {
		return
	}
	s.population.Spawned()

	p := s.params
	halfW, halfH := p.EnemySize.X/2, p.EnemySize.Y/2

	// Full inset width, but only the upper half of the area so enemies
	// arrive from above.
	pos := core.V2(
		uniform(s.rng, -p.Width/2+halfW, p.Width/2-halfW),
		uniform(s.rng, 0, p.Height/2-halfH),
	)
	heading := Heading{
		X: uniform(s.rng, -p.InitialHeading, p.InitialHeading),
		Y: uniform(s.rng, -p.InitialHeading, p.InitialHeading),
	}

	s.world.Spawn(func(id ecs.EntityID) {
		s.attach(id, KindEnemy, Transform{Pos: pos, Scale: p.EnemyScale}, p.EnemySpeed, p.Sprites.Enemy)
		s.dims.Set(id, &Dimensions{W: p.EnemySize.X, H: p.EnemySize.Y})
		h := heading
		s.headings.Set(id, &h)
	})
}
