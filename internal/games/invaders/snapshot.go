package invaders

import "math"

// Snapshot captures the game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Seed       int64
	Kills      int
	Population int
	Paused     bool

	// Each entity is 5 values: Kind, X bits, Y bits, Frame, Frames
	EntityCount int
	EntityData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{Seed: g.seed, Paused: g.paused}
	}
	view := g.sim.View()

	data := make([]uint64, 0, len(view.Entities)*5)
	for _, e := range view.Entities {
		data = append(data,
			uint64(e.Kind),
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			uint64(e.Frame),  //#nosec G115 -- frame index is never negative
			uint64(e.Frames), //#nosec G115 -- frame count is never negative
		)
	}

	return Snapshot{
		Tick:        view.Tick,
		Seed:        g.seed,
		Kills:       view.Kills,
		Population:  view.Population,
		Paused:      g.paused,
		EntityCount: len(view.Entities),
		EntityData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Seed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Population)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	return h
}
