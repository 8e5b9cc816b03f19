// Package invaders is the terminal arcade front for the simulation in
// internal/sim. It turns platform input frames into simulation input, drives
// the fixed-step loop from wall time and projects the view onto a cell grid.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// GameMode selects a registered variant.
type GameMode int

const (
	ModeClassic GameMode = iota // Stock tuning
	ModeSwarm                   // Larger population, faster spawns
)

// Swarm overrides applied on top of the loaded configuration.
const (
	swarmCap             = 12
	swarmSpawnIntervalMs = 1000
)

// Game drives one simulation run.
type Game struct {
	mode   GameMode
	cfg    config.InvadersConfig
	params sim.Params

	sim    *sim.Simulation
	seed   int64
	paused bool
}

// New creates a classic game from cfg. It fails if cfg does not describe a
// runnable simulation.
func New(cfg config.InvadersConfig) (*Game, error) {
	return newGame(ModeClassic, cfg)
}

// NewSwarm creates the swarm variant.
func NewSwarm(cfg config.InvadersConfig) (*Game, error) {
	cfg.Population.Cap = swarmCap
	cfg.Timing.SpawnIntervalMs = swarmSpawnIntervalMs
	return newGame(ModeSwarm, cfg)
}

func newGame(mode GameMode, cfg config.InvadersConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{mode: mode, cfg: cfg, params: cfg.Params()}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSwarm {
		return "swarm"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSwarm {
		return "Invaders (Swarm)"
	}
	return "Invaders"
}

// Reset starts a new run. A zero seed is replaced by the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	s, err := sim.New(g.params, sim.NewSource(g.seed))
	if err != nil {
		return err
	}
	g.sim = s
	g.paused = false
	return nil
}

// Step maps the frame's actions onto the simulation and advances it by the
// elapsed wall time. Restarting is the platform's job: it calls Reset.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	n := g.sim.Advance(elapsed, intent(in))
	return core.StepResult{State: g.State(), Ticks: n}
}

// intent converts platform actions into simulation input.
func intent(in core.InputFrame) sim.Input {
	return sim.Input{
		Move:         in.Direction(),
		FirePressed:  in.Has(core.ActionFire),
		FireReleased: in.Has(core.ActionFireRelease),
	}
}

// State returns the current game state. A run has no losing condition; it
// ends when the player quits.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim != nil {
		score = g.sim.Kills()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Register the games with the registry
func init() {
	registry.Register(registry.GameInfo{ID: "invaders", Title: "Invaders"}, factory(New))
	registry.Register(registry.GameInfo{ID: "swarm", Title: "Invaders (Swarm)"}, factory(NewSwarm))
}

func factory(build func(config.InvadersConfig) (*Game, error)) registry.Factory {
	return func(cfg config.InvadersConfig) (registry.Game, error) {
		g, err := build(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
