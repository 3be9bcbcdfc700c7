package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Services the platform lends to the game. Nil values mean "not available".
	Audio      AudioLoop
	HighScores HighScoreStore
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMillis returns the simulated time of one tick in milliseconds.
func (c RuntimeConfig) FrameMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// AudioLoop is a single loop-capable sound. Implementations swallow playback
// failures: audio never affects simulation state.
type AudioLoop interface {
	Play()
	Pause()
	Rewind()
	Playing() bool
}

// HighScoreStore persists the best score of a game across sessions.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
}

// Visuals are whole-screen effects applied by the platform at render time.
type Visuals struct {
	FlipX bool // Mirror horizontally
	FlipY bool // Mirror vertically (upside down)
	Dark  bool // Dark background
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	GameOver  bool    // Whether the game has ended (loss or win)
	Won       bool    // Whether the ending was a victory
	Paused    bool    // Whether the game is paused
	Phase     string  // Name of the active phase
	Collected int     // Objective progress in the current run
	Visual    Visuals // Screen effects for this frame
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
