package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Score is the running points counter. It only grows until Reset.
type Score struct {
	value float64
	rate  float64 // points per ms
	high  int
}

// NewScore creates a score growing at rate points per millisecond.
func NewScore(rate float64) *Score {
	return &Score{rate: rate}
}

// Update adds dt milliseconds worth of points.
func (s *Score) Update(dt float64) {
	if dt > 0 {
		s.value += dt * s.rate
	}
}

// Value returns the whole points scored so far.
func (s *Score) Value() int {
	return int(math.Floor(s.value))
}

// SetValue forces the raw score, used by practice modes and tests.
func (s *Score) SetValue(v float64) {
	s.value = v
}

// Reset returns the score to zero. The high score is kept.
func (s *Score) Reset() {
	s.value = 0
}

// High returns the best score seen.
func (s *Score) High() int {
	return s.high
}

// SetHigh loads a stored best score.
func (s *Score) SetHigh(v int) {
	s.high = v
}

// Record raises the high score to the current score if it is higher and
// reports whether it did.
func (s *Score) Record() bool {
	if v := s.Value(); v > s.high {
		s.high = v
		return true
	}
	return false
}

// Draw writes the score and high score in the top-right corner.
func (s *Score) Draw(dst *core.Screen) {
	text := fmt.Sprintf("HI %06d  %06d", s.high, s.Value())
	dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.ColorWhite)
}
