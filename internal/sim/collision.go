package sim

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// CollisionSystem destroys every laser/enemy pair whose boxes overlap.
type CollisionSystem struct {
	seen    map[ecs.EntityID]struct{} // lasers already queued this tick
	doomed  map[ecs.EntityID]struct{} // enemies already queued this tick
	lasers  []laserBox
	enemies []enemyBox
}

type laserBox struct {
	id  ecs.EntityID
	box core.Box
}

type enemyBox struct {
	id  ecs.EntityID
	pos core.Vec2
	box core.Box
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		seen:   make(map[ecs.EntityID]struct{}),
		doomed: make(map[ecs.EntityID]struct{}),
	}
}

func (*CollisionSystem) Name() string { return "collision" }

func (sys *CollisionSystem) Run(s *Simulation) {
	sys.collect(s)
	defer sys.reset()

	for _, l := range sys.lasers {
		for _, e := range sys.enemies {
			if !l.box.Overlaps(e.box) {
				continue
			}

			if _, ok := sys.seen[l.id]; !ok {
				sys.seen[l.id] = struct{}{}
				s.world.Despawn(l.id)
			}

			// A second laser on the same enemy must not count it again.
			if _, ok := sys.doomed[e.id]; ok {
				continue
			}
			sys.doomed[e.id] = struct{}{}
			s.world.Despawn(e.id)
			s.population.Killed()
			s.kills++
			s.explosions = append(s.explosions, ExplosionRequest{Pos: e.pos})
		}
	}
}

// collect snapshots the boxes in entity order before any hit is recorded.
func (sys *CollisionSystem) collect(s *Simulation) {
	unit := s.params.CollisionUnit
	for _, id := range s.ofKind(KindLaser) {
		tr, _ := s.transforms.Get(id)
		sys.lasers = append(sys.lasers, laserBox{
			id:  id,
			box: core.BoxAt(tr.Pos, tr.Scale.Scale(unit)),
		})
	}
	for _, id := range s.ofKind(KindEnemy) {
		tr, _ := s.transforms.Get(id)
		dim, ok := s.dims.Get(id)
		if !ok {
			continue
		}
		sys.enemies = append(sys.enemies, enemyBox{
			id:  id,
			pos: tr.Pos,
			box: core.BoxAt(tr.Pos, dim.Size()),
		})
	}
}

func (sys *CollisionSystem) reset() {
	clear(sys.seen)
	clear(sys.doomed)
	sys.lasers = sys.lasers[:0]
	sys.enemies = sys.enemies[:0]
}
