package sim

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// EntityView is the read-only render description of one live entity.
type EntityView struct {
	ID     ecs.EntityID
	Kind   Kind
	Pos    core.Vec2
	Scale  core.Vec2
	Size   core.Vec2 // Collision extent; zero for the player
	Frame  int       // Explosions only
	Frames int
	State  AnimState
	Sprite Sprite
}

// View is a snapshot of everything a renderer needs after a tick.
type View struct {
	Width, Height float64
	Tick          uint64
	Population    int
	Cap           int
	Kills         int
	Entities      []EntityView
}

// View returns the current state in ascending entity order.
func (s *Simulation) View() View {
	v := View{
		Width:      s.params.Width,
		Height:     s.params.Height,
		Tick:       s.tick,
		Population: s.population.Count(),
		Cap:        s.population.Cap(),
		Kills:      s.kills,
	}

	for _, id := range s.kinds.IDs() {
		kind, _ := s.kinds.Get(id)
		ev := EntityView{ID: id, Kind: *kind}
		if tr, ok := s.transforms.Get(id); ok {
			ev.Pos, ev.Scale = tr.Pos, tr.Scale
		}
		if sp, ok := s.sprites.Get(id); ok {
			ev.Sprite = *sp
		}
		switch *kind {
		case KindLaser:
			ev.Size = ev.Scale.Scale(s.params.CollisionUnit)
		case KindEnemy:
			if d, ok := s.dims.Get(id); ok {
				ev.Size = d.Size()
			}
		case KindExplosion:
			if a, ok := s.anims.Get(id); ok {
				ev.Frame, ev.Frames, ev.State = a.Frame, a.Frames, a.State
			}
		}
		v.Entities = append(v.Entities, ev)
	}
	return v
}
