// Package chaosrun implements Chaos Run: an endless runner whose screen
// flips, strobes and wails as the score climbs, then collapses into a
// snake-style grid game once the stop score is reached.
package chaosrun

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/chaos"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/timer"
)

// Mode selects where a run starts.
type Mode string

const (
	ModeFull Mode = "chaos"      // Runner, then grid
	ModeGrid Mode = "chaos_grid" // Grid practice
)

// Game is the phase orchestrator.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.ChaosConfig
	difficulty *config.DifficultyManager
	sched      *timer.Scheduler
	director   *chaos.Director
	audio      core.AudioLoop
	phase      phase

	high       int  // best runner score, loaded from the store
	waiting    bool // before the first start
	gameOver   bool
	won        bool
	paused     bool
	resetArmed bool
	armPending bool
	runs       int64 // restarts since Reset, varies the seed
	lastScore  int   // runner score carried into the grid phase
}

// Package-level configuration set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. A nil logger discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a full Chaos Run game.
func New() *Game {
	return &Game{mode: ModeFull}
}

// NewGridPractice creates a game that starts in the grid phase.
func NewGridPractice() *Game {
	return &Game{mode: ModeGrid}
}

func init() {
	registry.Register(string(ModeFull), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeGrid), func() registry.Game {
		return NewGridPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeGrid {
		return "Chaos Run (Grid Practice)"
	}
	return "Chaos Run"
}

// Description is the one-line blurb shown in the mode picker.
func (g *Game) Description() string {
	if g.mode == ModeGrid {
		return "Practice the snake phase"
	}
	return "Outrun the chaos, then survive the snake"
}

// Reset loads the config, cancels everything outstanding and shows the
// start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadChaos(configPath)
	if err != nil {
		logger.Warn("config unusable, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultChaosConfig()
	}
	config.ApplyChaosPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if g.director != nil {
		g.director.Reset()
	}
	g.sched = timer.NewScheduler()
	g.audio = runtime.Audio
	g.director = chaos.NewDirector(cfg.Chaos, g.sched, g.audio)

	g.high = 0
	if runtime.HighScores != nil {
		if h, err := runtime.HighScores.HighScore(g.ID()); err != nil {
			logger.Warn("high score unavailable", "err", err)
		} else {
			g.high = h
		}
	}

	g.runs = 0
	g.waiting = true
	g.paused = false
	g.clearRun()
	g.phase = g.firstPhase()
}

// Resize re-projects onto a new screen size. Simulation state is untouched.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// restart is the consumed restart binding: every timer, the transition,
// the alert loop and the visuals are reset before the new run begins.
func (g *Game) restart() {
	g.director.Reset()
	g.sched.CancelAll()
	g.runs++
	g.clearRun()
	g.phase = g.firstPhase()
	logger.Info("run restarted", "run", g.runs)
}

func (g *Game) clearRun() {
	g.gameOver = false
	g.won = false
	g.resetArmed = false
	g.armPending = false
	g.lastScore = 0
}

func (g *Game) seed() int64 {
	return g.runtime.Seed + g.runs
}

func (g *Game) firstPhase() phase {
	if g.mode == ModeGrid {
		return newGridPhase(g.seed(), g.cfg)
	}
	return newRunnerPhase(g.seed(), g.cfg, g.difficulty, g.high)
}

// frameDuration converts a frame length in milliseconds to a Duration,
// rounded to the nearest nanosecond so whole periods land on frame edges.
func frameDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.waiting && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.FrameMillis()
	g.sched.Advance(frameDuration(dt))

	switch {
	case g.waiting:
		if in.Has(core.ActionAnyKey) || in.Has(core.ActionJump) {
			g.waiting = false
			logger.Info("run started", "mode", g.mode)
		}
	case g.gameOver:
		if g.resetArmed && in.Has(core.ActionAnyKey) {
			g.restart()
		}
	default:
		switch p := g.phase.(type) {
		case *runnerPhase:
			g.stepRunner(p, in, dt)
		case *gridPhase:
			g.stepGrid(p, in, dt)
		}
	}

	return core.StepResult{State: g.State()}
}

// endGame stops the run and attaches the restart binding after the arm
// delay. It is attached once per game over.
func (g *Game) endGame(won bool) {
	g.gameOver = true
	g.won = won
	if g.armPending || g.resetArmed {
		return
	}
	g.armPending = true
	delay := time.Duration(g.cfg.Reset.ArmDelayMs) * time.Millisecond
	g.sched.After(delay, func() {
		g.armPending = false
		g.resetArmed = true
	})
}

// startGrid is the delayed transition out of the frozen runner.
func (g *Game) startGrid() {
	g.phase = newGridPhase(g.seed(), g.cfg)
	logger.Info("grid phase started", "interval_ms", g.cfg.Grid.InitialIntervalMs)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
		Score:    g.lastScore,
	}
	if g.director != nil {
		st.Visual = g.director.Visuals()
	}
	if g.phase != nil {
		st.Phase = g.phase.name()
	}
	switch p := g.phase.(type) {
	case *runnerPhase:
		st.Score = p.score.Value()
	case *gridPhase:
		st.Collected = p.engine.Collected()
	}
	if g.waiting {
		st.Phase = phaseWaiting
	}
	return st
}
