package sim

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ecs"
)

// Input is what the outside world tells the simulation for one tick.
type Input struct {
	Move         int  // -1, 0 or +1; larger magnitudes are clamped
	FirePressed  bool // Fire pressed this tick
	FireReleased bool // Fire released this tick
}

// ExplosionRequest asks the animator for an explosion at Pos.
type ExplosionRequest struct {
	Pos core.Vec2
}

// Simulation owns the entity store, the population counter and the tick
// loop. It is not safe for concurrent use.
type Simulation struct {
	params Params
	dt     float64
	rng    Source

	world      *ecs.World
	kinds      *ecs.Store[Kind]
	transforms *ecs.Store[Transform]
	speeds     *ecs.Store[Speed]
	dims       *ecs.Store[Dimensions]
	headings   *ecs.Store[Heading]
	gates      *ecs.Store[FireGate]
	anims      *ecs.Store[Animation]
	sprites    *ecs.Store[Sprite]

	population Population
	explosions []ExplosionRequest
	scheduler  *Scheduler
	player     ecs.EntityID

	input       Input
	pending     Input // Edge inputs waiting for the next tick to run
	accumulator time.Duration
	tick        uint64
	kills       int
}

// New builds a simulation with the player already in place.
func New(p Params, src Source) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	s := &Simulation{
		params:     p,
		dt:         p.TickDelta(),
		rng:        src,
		world:      w,
		kinds:      ecs.Register[Kind](w),
		transforms: ecs.Register[Transform](w),
		speeds:     ecs.Register[Speed](w),
		dims:       ecs.Register[Dimensions](w),
		headings:   ecs.Register[Heading](w),
		gates:      ecs.Register[FireGate](w),
		anims:      ecs.Register[Animation](w),
		sprites:    ecs.Register[Sprite](w),
		population: NewPopulation(p.PopulationCap),
	}

	s.scheduler = NewScheduler(
		NewSpawnSystem(p),
		NewMovementSystem(p),
		NewCollisionSystem(),
		NewExplosionSystem(p),
	)

	s.spawnPlayer()
	s.player = w.Flush()[0]
	return s, nil
}

func (s *Simulation) spawnPlayer() {
	pos := core.V2(0, -s.params.Height/2+s.params.PlayerMargin+s.params.PlayerLift)
	s.world.Spawn(func(id ecs.EntityID) {
		s.attach(id, KindPlayer, Transform{Pos: pos, Scale: core.V2(1, 1)}, s.params.PlayerSpeed, s.params.Sprites.Player)
		s.gates.Set(id, &FireGate{Ready: true})
	})
}

// attach sets the components every kind carries.
func (s *Simulation) attach(id ecs.EntityID, k Kind, tr Transform, speed float64, sprite Sprite) {
	kind := k
	sp := Speed(speed)
	spr := sprite
	s.kinds.Set(id, &kind)
	s.transforms.Set(id, &tr)
	s.speeds.Set(id, &sp)
	s.sprites.Set(id, &spr)
}

// Step runs exactly one tick with the given input.
func (s *Simulation) Step(in Input) {
	in.Move = core.Clamp(in.Move, -1, 1)
	s.input = in
	s.tick++
	s.scheduler.RunTick(s)
}

// Advance feeds elapsed wall time into the fixed-step accumulator and runs
// as many whole ticks as fit, at most MaxCatchUpTicks. Time beyond the cap
// is dropped. Fire edges are delivered to the first tick that runs, even if
// that happens on a later call. It returns the number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration, in Input) int {
	s.pending.FirePressed = s.pending.FirePressed || in.FirePressed
	s.pending.FireReleased = s.pending.FireReleased || in.FireReleased

	if elapsed > 0 {
		s.accumulator += elapsed
	}
	step := s.params.TickDuration()
	n := int(s.accumulator / step)
	if n > s.params.MaxCatchUpTicks {
		n = s.params.MaxCatchUpTicks
		s.accumulator = 0
	} else {
		s.accumulator -= time.Duration(n) * step
	}

	for i := 0; i < n; i++ {
		tickIn := Input{Move: in.Move}
		if i == 0 {
			tickIn.FirePressed = s.pending.FirePressed
			tickIn.FireReleased = s.pending.FireReleased
			s.pending = Input{}
		}
		s.Step(tickIn)
	}
	return n
}

// Params returns the parameters the simulation was built with.
func (s *Simulation) Params() Params { return s.params }

// Tick returns the number of ticks run so far.
func (s *Simulation) Tick() uint64 { return s.tick }

// Population returns the active-enemy counter.
func (s *Simulation) Population() Population { return s.population }

// Kills returns the number of enemies destroyed this run.
func (s *Simulation) Kills() int { return s.kills }

// Player returns the player's entity ID.
func (s *Simulation) Player() ecs.EntityID { return s.player }

// Scheduler exposes the ordered system list.
func (s *Simulation) Scheduler() *Scheduler { return s.scheduler }

// Count returns the number of live entities of kind k.
func (s *Simulation) Count(k Kind) int {
	return len(s.ofKind(k))
}

// ofKind returns live entities of kind k in slot order.
func (s *Simulation) ofKind(k Kind) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range s.kinds.IDs() {
		if kind, _ := s.kinds.Get(id); *kind == k {
			out = append(out, id)
		}
	}
	return out
}
