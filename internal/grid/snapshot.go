package grid

// StateType represents the engine's outcome so far.
type StateType string

const (
	StatePlaying StateType = "playing"
	StateLost    StateType = "lost"
	StateWon     StateType = "won"
)

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Ticks     uint64
	SnakeLen  int
	Head      Point
	Dir       Direction
	Judge     Point
	JudgeIdx  int // -1 when no judge is on the board
	Saboteur  Point
	Collected int
	Interval  float64
	State     StateType
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case e.GameOver():
		state = StateLost
	case e.Victory():
		state = StateWon
	}

	snap := Snapshot{
		Ticks:     e.ticks,
		SnakeLen:  e.snake.Len(),
		Head:      e.snake.Head(),
		Dir:       e.snake.Direction(),
		JudgeIdx:  -1,
		Collected: e.Collected(),
		Interval:  e.interval,
		State:     state,
	}
	if e.judge != nil {
		snap.Judge = e.judge.Point
		snap.JudgeIdx = e.judge.Index
	}
	if e.saboteur != nil {
		snap.Saboteur = *e.saboteur
	}
	return snap
}
