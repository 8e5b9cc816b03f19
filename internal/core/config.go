package core

// RuntimeConfig is what the platform hands a game when it starts.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Terminal redraws per second; the simulation keeps its own tick rate
	Seed      int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each rendered frame.
type StepResult struct {
	State GameState
	Ticks int // Simulation ticks executed during the frame
}
