package sim

import (
	"errors"
	"fmt"
)

// ErrPopulationInvariant marks a live-enemy count outside [0, cap].
// Spawn and collision guard every mutation, so seeing it means a bug.
var ErrPopulationInvariant = errors.New("sim: population invariant violated")

// Population is the active-enemy counter. It is changed only through
// Spawned and Killed, and always equals the number of live enemies.
type Population struct {
	count int
	cap   int
}

// NewPopulation creates an empty counter with the given cap.
func NewPopulation(limit int) Population {
	return Population{cap: limit}
}

func (p Population) Count() int { return p.count }
func (p Population) Cap() int   { return p.cap }

// CanSpawn reports whether one more enemy fits under the cap.
func (p Population) CanSpawn() bool {
	return p.count < p.cap
}

// Spawned records a new enemy. Panics if the cap would be exceeded.
func (p *Population) Spawned() {
	if p.count >= p.cap {
		panic(fmt.Errorf("%w: spawn with %d/%d live", ErrPopulationInvariant, p.count, p.cap))
	}
	p.count++
}

// Killed records a destroyed enemy. Panics if the count would go negative.
func (p *Population) Killed() {
	if p.count <= 0 {
		panic(fmt.Errorf("%w: kill with no live enemies", ErrPopulationInvariant))
	}
	p.count--
}
