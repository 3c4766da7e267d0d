package core

// RuntimeConfig is handed to a game mode on Reset. It carries everything the
// platform knows that the simulation needs: terminal geometry, the tick
// cadence, and the seed that makes a run replayable.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 tells the platform to pick one from the clock
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is a mode's externally visible status, polled by the platform
// after every Step. Score is the run's depth in tenths of a row.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
