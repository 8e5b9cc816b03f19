package sim

import "github.com/vovakirdan/tui-invaders/internal/ecs"

// ExplosionSystem plays explosions forward one frame per frame period and
// removes each one after its last frame. It is the only owner of
// explosion entities.
type ExplosionSystem struct {
	period int
	frames int
}

func NewExplosionSystem(p Params) *ExplosionSystem {
	return &ExplosionSystem{
		period: p.TicksFor(p.FramePeriod),
		frames: p.ExplosionFrames,
	}
}

func (*ExplosionSystem) Name() string { return "explosion" }

func (sys *ExplosionSystem) Run(s *Simulation) {
	// Advance first so explosions queued below start counting next tick.
	for _, id := range s.ofKind(KindExplosion) {
		anim, ok := s.anims.Get(id)
		if !ok {
			continue
		}
		advance(anim)
		if anim.State == AnimFinished {
			s.world.Despawn(id)
		}
	}

	for _, req := range s.explosions {
		pos := req.Pos
		s.world.Spawn(func(id ecs.EntityID) {
			s.attach(id, KindExplosion, Transform{Pos: pos, Scale: s.params.EnemyScale}, 0, s.params.Sprites.Explosion)
			s.anims.Set(id, &Animation{
				Frames: sys.frames,
				State:  AnimSpawned,
				Timer:  NewTimer(sys.period),
			})
		})
	}
	s.explosions = s.explosions[:0]
}

func advance(a *Animation) {
	switch a.State {
	case AnimSpawned:
		a.State = AnimAnimating
		fallthrough
	case AnimAnimating:
		if a.Timer.Tick() {
			a.Frame++
		}
		if a.Frame >= a.Frames {
			a.State = AnimFinished
		}
	}
}
