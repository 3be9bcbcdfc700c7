package chaosrun

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Overlay texts.
const (
	textStart      = "Tap Screen or Press Space To Start"
	textGameOver   = "GAME OVER"
	textRestart    = "Press any key or click to restart"
	textPortal     = "PORTAL INITIATED!"
	textTransform  = "SNAKE TRANSFORMATION"
	textVictory    = "VICTORY? CHAOS COMPLETE!"
	textVerdict1   = "The Judges unanimously agree your performance in the Dino Game was questionable,"
	textVerdict2   = "your Snake controls were sloppy, and your victory was dependent entirely on the Migraine Mode."
	textDisqualify = "DISQUALIFIED. NOW CLEAN UP YOUR MESS."
	textPaused     = "PAUSED"
)

// layout is where each phase draws on the current screen.
type layout struct {
	runner core.Rect // runner area below the HUD row
	board  core.Rect // grid tiles, inside the border
	hudY   int       // first grid HUD row
}

// layout fits both phases into the screen. Terminal cells are about twice
// as tall as wide, so a world unit spans half as many rows as columns.
func (g *Game) layout() layout {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	var l layout

	// Runner: keep the game area's aspect, one HUD row on top.
	gw, gh := g.cfg.Runner.GameWidth, g.cfg.Runner.GameHeight
	availH := core.Max(1, h-1)
	ratio := core.ScaleRatio(float64(w), float64(availH*2), gw, gh)
	rw := core.Clamp(int(gw*ratio), 1, core.Max(1, w))
	rh := core.Clamp(int(gh*ratio/2), 1, availH)
	l.runner = core.NewRect((w-rw)/2, 1+(availH-rh)/2, rw, rh)

	// Grid: square board of 2x1-cell tiles, border around it, two HUD rows below.
	n := core.Max(1, g.cfg.Grid.Size)
	tile := core.Min((w-2)/(2*n), (h-4)/n)
	tile = core.Max(1, tile)
	bw, bh := 2*n*tile, n*tile
	l.board = core.NewRect(core.Max(1, (w-bw)/2), 1, bw, bh)
	l.hudY = l.board.Bottom() + 1
	return l
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	l := g.layout()

	switch p := g.phase.(type) {
	case *runnerPhase:
		g.renderRunner(dst, p, l)
	case *gridPhase:
		g.renderGrid(dst, p, l)
	}

	switch {
	case g.waiting:
		dst.DrawTextCenteredColored(dst.Height()/2, textStart, core.ColorGray)
	case g.paused:
		g.drawCenteredMessage(dst, textPaused, "Press P to resume")
	}
}

func (g *Game) renderRunner(dst *core.Screen, p *runnerPhase, l layout) {
	vp := core.FitViewport(l.runner, g.cfg.Runner.GameWidth*g.cfg.Runner.DisplayScale,
		g.cfg.Runner.GameHeight*g.cfg.Runner.DisplayScale)

	p.ground.Draw(dst, vp)
	p.spawner.Draw(dst, vp)
	p.player.Draw(dst, vp)
	p.score.Draw(dst)

	mid := l.runner.Y + l.runner.H/2
	switch {
	case p.frozen:
		dst.DrawTextCenteredColored(mid-1, textPortal, core.ColorRed)
		dst.DrawTextCenteredColored(mid+1, textTransform, core.ColorRed)
	case g.gameOver:
		dst.DrawTextCenteredColored(mid, textGameOver, core.ColorGray)
		if g.resetArmed {
			dst.DrawTextCenteredColored(mid+2, textRestart, core.ColorGray)
		}
	}
}

func (g *Game) renderGrid(dst *core.Screen, p *gridPhase, l layout) {
	e := p.engine

	if g.won {
		mid := dst.Height() / 2
		dst.DrawTextCenteredColored(mid-3, textVictory, core.ColorBrightWhite)
		dst.DrawTextCentered(mid-1, textVerdict1)
		dst.DrawTextCentered(mid, textVerdict2)
		dst.DrawTextCenteredColored(mid+2, textDisqualify, core.ColorRed)
		if g.resetArmed {
			dst.DrawTextCenteredColored(mid+4, textRestart, core.ColorGray)
		}
		return
	}

	e.Draw(dst, l.board)
	dst.DrawText(l.board.X, l.hudY, fmt.Sprintf("Judges Collected: %d / %d", e.Collected(), e.Total()))
	dst.DrawText(l.board.X, l.hudY+1, fmt.Sprintf("Chaos Speed: %dx", e.SpeedMultiplier()))

	if g.gameOver {
		sub := ""
		if g.resetArmed {
			sub = textRestart
		}
		g.drawCenteredMessage(dst, textGameOver, sub)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
