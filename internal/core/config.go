package core

// RuntimeConfig contains platform parameters passed to a game session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform loop
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// FrameInterval returns the nominal frame length in milliseconds.
func (c RuntimeConfig) FrameInterval() int {
	if c.TickRate <= 0 {
		return 1000 / 30
	}
	return 1000 / c.TickRate
}

// GameState is the coarse status reported to the platform after each step.
type GameState struct {
	Paused   bool // Simulation is frozen
	Quitting bool // Player asked to end the session
}

// StepResult is what a game reports back to the platform after one step.
type StepResult struct {
	State GameState
}
