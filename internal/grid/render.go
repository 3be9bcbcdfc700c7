package grid

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Visual characters for rendering
const (
	HeadChar     = '@'
	BodyChar     = 'o'
	SaboteurChar = '●'
	ObstacleChar = '♣'
)

var obstacleColors = [obstacleVariants]core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorYellow}

// judgeLook returns the glyph and color of a judge variant. Variants
// without a glyph are drawn as placeholders.
func (e *Engine) judgeLook(index int) (rune, core.Color) {
	glyphs := []rune(e.cfg.JudgeGlyphs)
	if index < 0 || index >= len(glyphs) {
		return core.Placeholder, core.ColorRed
	}
	return glyphs[index], core.PaletteColor(index)
}

// Viewport maps the board onto a screen region, one tile per projected
// rectangle.
func (e *Engine) Viewport(region core.Rect) core.Viewport {
	n := float64(e.cfg.Size)
	return core.FitViewport(region, n, n)
}

func tile(vp core.Viewport, p Point) core.Rect {
	return vp.Project(core.Box{X: float64(p.X), Y: float64(p.Y), W: 1, H: 1})
}

// Draw renders the board, its border and everything on it into region.
func (e *Engine) Draw(dst *core.Screen, region core.Rect) {
	vp := e.Viewport(region)
	dst.DrawBox(core.NewRect(region.X-1, region.Y-1, region.W+2, region.H+2))

	for _, o := range e.obstacles {
		dst.FillRect(tile(vp, o.Point), ObstacleChar, obstacleColors[o.Variant%obstacleVariants])
	}

	if e.judge != nil {
		r, c := e.judgeLook(e.judge.Index)
		dst.FillRect(tile(vp, e.judge.Point), r, c)
	}
	if e.saboteur != nil {
		dst.FillRect(tile(vp, *e.saboteur), SaboteurChar, core.ColorBrightYellow)
	}

	body := e.snake.Body()
	for i := len(body) - 1; i >= 0; i-- {
		ch, color := BodyChar, core.ColorGreen
		if i == 0 {
			ch, color = HeadChar, core.ColorBrightGreen
		}
		if tag := e.snake.Tag(i); tag != TagSnake {
			ch, color = e.judgeLook(tag)
		}
		dst.FillRect(tile(vp, body[i]), ch, color)
	}
}
