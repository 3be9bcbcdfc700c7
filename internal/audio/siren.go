// Package audio provides the alert loop played during the siren band.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Siren is a looping two-tone wail on the system speaker.
type Siren struct {
	mu          sync.Mutex
	gen         *WailGenerator
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSiren creates a siren. It is silent until Initialize succeeds.
func NewSiren() *Siren {
	return &Siren{gen: NewWailGenerator(sampleRate, 600, 900, time.Second)}
}

// Initialize opens the speaker and queues the paused loop.
func (s *Siren) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	s.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, s.gen), Paused: true}
	speaker.Play(s.ctrl)
	s.initialized = true
	return nil
}

// Play resumes the loop. Without a speaker it does nothing.
func (s *Siren) Play() {
	s.setPaused(false)
}

// Pause stops the loop where it is.
func (s *Siren) Pause() {
	s.setPaused(true)
}

func (s *Siren) setPaused(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = p
	speaker.Unlock()
}

// Rewind moves the loop back to its start.
func (s *Siren) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		_ = s.gen.Seek(0)
		return
	}
	speaker.Lock()
	_ = s.gen.Seek(0)
	speaker.Unlock()
}

// Playing reports whether the loop is audible.
func (s *Siren) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initialized && !s.ctrl.Paused
}

// Close stops playback and releases the speaker stream.
func (s *Siren) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	s.initialized = false
}

// WailGenerator sweeps between two tones and back over one cycle.
// It implements beep.StreamSeeker so it can be looped.
type WailGenerator struct {
	sr        beep.SampleRate
	low, high float64
	pos       int
	length    int
}

// NewWailGenerator creates a wail cycling between low and high Hz.
func NewWailGenerator(sr beep.SampleRate, low, high float64, cycle time.Duration) *WailGenerator {
	return &WailGenerator{
		sr:     sr,
		low:    low,
		high:   high,
		length: sr.N(cycle),
	}
}

func (g *WailGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		phase := float64(g.pos) / float64(g.length)
		t := float64(g.pos) / float64(g.sr)

		// Triangle sweep up and down the band
		sweep := 1 - math.Abs(2*phase-1)
		freq := g.low + (g.high-g.low)*sweep

		sample := 0.2 * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WailGenerator) Err() error {
	return nil
}

// Len returns the cycle length in samples.
func (g *WailGenerator) Len() int {
	return g.length
}

// Position returns the current sample position.
func (g *WailGenerator) Position() int {
	return g.pos
}

// Seek moves to sample p within the cycle.
func (g *WailGenerator) Seek(p int) error {
	if p < 0 || p > g.length {
		p = 0
	}
	g.pos = p
	return nil
}

// Silent is an AudioLoop that tracks play state without producing sound.
type Silent struct {
	mu      sync.Mutex
	playing bool
}

func (s *Silent) Play() {
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()
}

func (s *Silent) Pause() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
}

func (s *Silent) Rewind() {}

func (s *Silent) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Open returns the alert loop for a local session: the speaker siren, or a
// silent loop when muted or when no audio device is available.
func Open(mute bool, logger *log.Logger) core.AudioLoop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if mute {
		return &Silent{}
	}
	s := NewSiren()
	if err := s.Initialize(); err != nil {
		logger.Debug("audio unavailable, siren muted", "err", err)
		return &Silent{}
	}
	return s
}
