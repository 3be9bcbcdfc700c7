package runner

import (
	"math"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// groundPattern is the texture repeated along the ground line.
var groundPattern = []rune("‾‾‾‾.‾‾‾‾‾‾,‾‾‾‾‾‾‾`‾‾‾")

// Ground is the scrolling strip under the player.
type Ground struct {
	offset float64
	speed  float64
	scale  float64
	box    core.Box
	line   rune
}

// NewGround creates the ground strip along the bottom of the area.
func NewGround(cfg config.RunnerConfig) *Ground {
	scale := cfg.DisplayScale
	g := &Ground{speed: cfg.BaseSpeed, scale: scale, line: '‾'}
	if r := []rune(cfg.Ground.Rune); len(r) > 0 {
		g.line = r[0]
	}
	h := cfg.Ground.Height * scale
	g.box = core.Box{X: 0, Y: cfg.GameHeight*scale - h, W: cfg.GameWidth * scale, H: h}
	return g
}

// Update scrolls the ground by dt milliseconds.
func (g *Ground) Update(dt, gameSpeed float64) {
	g.offset += g.speed * gameSpeed * dt * g.scale
	if g.box.W > 0 {
		g.offset = math.Mod(g.offset, g.box.W)
	}
}

// Reset stops the scroll at its origin.
func (g *Ground) Reset() {
	g.offset = 0
}

// Draw renders the bottom row of the strip with a texture that moves left.
func (g *Ground) Draw(dst *core.Screen, vp core.Viewport) {
	r := vp.Project(g.box)
	y := r.Bottom() - 1
	shift := 0
	if vp.ScaleX > 0 {
		shift = int(g.offset * vp.ScaleX)
	}
	for x := r.X; x < r.Right(); x++ {
		ch := groundPattern[(x-r.X+shift)%len(groundPattern)]
		if ch == '‾' {
			ch = g.line
		}
		dst.SetColored(x, y, ch, core.ColorBrown)
	}
}
