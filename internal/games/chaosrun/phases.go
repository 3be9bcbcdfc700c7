package chaosrun

import (
	"time"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/grid"
	"github.com/vovakirdan/chaos-arcade/internal/runner"
)

// Phase names reported in GameState.
const (
	phaseWaiting = "waiting"
	phaseRunner  = "runner"
	phaseGrid    = "grid"
)

// phase is either *runnerPhase or *gridPhase. Step dispatches on it once
// per frame.
type phase interface {
	name() string
}

type runnerPhase struct {
	player    *runner.Player
	spawner   *runner.Spawner
	ground    *runner.Ground
	score     *runner.Score
	gameSpeed float64
	brainrot  bool // first hit taken
	frozen    bool // stop score reached, waiting for the grid
}

func newRunnerPhase(seed int64, cfg config.ChaosConfig, diff *config.DifficultyManager, high int) *runnerPhase {
	score := runner.NewScore(cfg.Runner.ScoreRate)
	score.SetHigh(high)
	return &runnerPhase{
		player:    runner.NewPlayer(cfg.Runner),
		spawner:   runner.NewSpawner(seed, cfg.Runner, cfg.Hazard),
		ground:    runner.NewGround(cfg.Runner),
		score:     score,
		gameSpeed: diff.Initial(),
	}
}

func (*runnerPhase) name() string { return phaseRunner }

type gridPhase struct {
	engine *grid.Engine
}

func newGridPhase(seed int64, cfg config.ChaosConfig) *gridPhase {
	return &gridPhase{engine: grid.New(seed, cfg.Grid)}
}

func (*gridPhase) name() string { return phaseGrid }

// stepRunner advances the runner by dt milliseconds.
func (g *Game) stepRunner(p *runnerPhase, in core.InputFrame, dt float64) {
	score := p.score.Value()

	if score >= g.cfg.Chaos.StopScore {
		if !p.frozen {
			p.frozen = true
			g.director.Update(score)
			g.lastScore = score
			g.recordHigh(p)
			delay := time.Duration(g.cfg.Chaos.TransitionDelayMs) * time.Millisecond
			g.sched.After(delay, g.startGrid)
			logger.Info("runner phase ended", "score", score)
		}
		return
	}

	g.director.Update(score)
	hazard := g.director.Hazard(score)

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) || in.HasTap {
		p.player.Jump()
	}

	p.ground.Update(dt, p.gameSpeed)
	p.player.Update(dt, p.gameSpeed)
	p.spawner.Update(dt, p.gameSpeed, hazard, p.player.Box)
	p.score.Update(dt)
	p.gameSpeed = g.difficulty.Next(p.gameSpeed, dt)

	hit := p.spawner.CollideWith(p.player.Box)
	if hit == nil {
		return
	}
	if !p.brainrot {
		p.brainrot = true
		p.player.Disguise()
		p.spawner.TransformVisuals(p.player.Sprite())
		p.spawner.Remove(hit)
		logger.Debug("first hit, disguise on", "score", p.score.Value())
		return
	}

	g.lastScore = p.score.Value()
	g.recordHigh(p)
	g.endGame(false)
	g.director.Update(p.score.Value())
	logger.Info("game over", "phase", phaseRunner, "score", g.lastScore)
}

// recordHigh stores the runner score if it beats the best one.
func (g *Game) recordHigh(p *runnerPhase) {
	if !p.score.Record() {
		return
	}
	g.high = p.score.High()
	if g.runtime.HighScores == nil {
		return
	}
	if err := g.runtime.HighScores.SetHighScore(g.ID(), g.high); err != nil {
		logger.Warn("high score not saved", "err", err)
	}
}

// stepGrid advances the grid by dt milliseconds.
func (g *Game) stepGrid(p *gridPhase, in core.InputFrame, dt float64) {
	e := p.engine
	switch {
	case in.Has(core.ActionUp):
		e.ChangeDirection(grid.DirUp)
	case in.Has(core.ActionDown):
		e.ChangeDirection(grid.DirDown)
	case in.Has(core.ActionLeft):
		e.ChangeDirection(grid.DirLeft)
	case in.Has(core.ActionRight):
		e.ChangeDirection(grid.DirRight)
	case in.HasTap:
		vp := e.Viewport(g.layout().board)
		x, y := vp.Unproject(in.Tap.X, in.Tap.Y)
		e.ChangeDirection(e.DirectionToward(x, y))
	}

	e.Advance(dt)

	switch {
	case e.GameOver():
		g.endGame(false)
		logger.Info("game over", "phase", phaseGrid, "collected", e.Collected())
	case e.Victory():
		g.endGame(true)
		logger.Info("victory", "collected", e.Collected())
	}
}
