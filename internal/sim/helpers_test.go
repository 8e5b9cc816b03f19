package sim

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// seqSource replays vals in a loop and counts draws.
type seqSource struct {
	vals  []float64
	i     int
	draws int
}

func (s *seqSource) Float64() float64 {
	s.draws++
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// still returns 0.5 forever: spawn lands mid-range and every heading is zero.
func still() *seqSource { return &seqSource{vals: []float64{0.5}} }

func newTestSim(t *testing.T, src Source) *Simulation {
	t.Helper()
	s, err := New(DefaultParams(), src)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func placeLaser(s *Simulation, pos, scale core.Vec2) ecs.EntityID {
	s.world.Spawn(func(id ecs.EntityID) {
		s.attach(id, KindLaser, Transform{Pos: pos, Scale: scale}, s.params.LaserSpeed, s.params.Sprites.Laser)
	})
	return s.world.Flush()[0]
}

func placeEnemy(s *Simulation, pos core.Vec2, h Heading) ecs.EntityID {
	s.population.Spawned()
	s.world.Spawn(func(id ecs.EntityID) {
		s.attach(id, KindEnemy, Transform{Pos: pos, Scale: s.params.EnemyScale}, s.params.EnemySpeed, s.params.Sprites.Enemy)
		s.dims.Set(id, &Dimensions{W: s.params.EnemySize.X, H: s.params.EnemySize.Y})
		s.headings.Set(id, &h)
	})
	return s.world.Flush()[0]
}

func position(t *testing.T, s *Simulation, id ecs.EntityID) core.Vec2 {
	t.Helper()
	tr, ok := s.transforms.Get(id)
	if !ok {
		t.Fatalf("entity %v has no transform", id)
	}
	return tr.Pos
}

func checkPopulation(t *testing.T, s *Simulation) {
	t.Helper()
	n := s.Population().Count()
	if n < 0 || n > s.Population().Cap() {
		t.Fatalf("tick %d: population %d outside [0, %d]", s.Tick(), n, s.Population().Cap())
	}
	if live := s.Count(KindEnemy); live != n {
		t.Fatalf("tick %d: population %d but %d live enemies", s.Tick(), n, live)
	}
}
