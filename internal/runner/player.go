package runner

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Player is the jumping actor. The embedded Box is the hitbox; the
// disguise changes only what is drawn.
type Player struct {
	core.Box
	vel       float64 // vertical velocity, px per ms (negative = up)
	grounded  bool
	disguised bool

	sprite   core.Sprite
	disguise Template
	standY   float64
	jumpVel  float64
	gravity  float64
	scale    float64
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.RunnerConfig) *Player {
	scale := cfg.DisplayScale
	p := &Player{
		sprite:   core.Sprite{Name: "player", Art: cfg.Player.Art},
		disguise: TemplateFromConfig(cfg.Disguise, scale),
		jumpVel:  cfg.Player.JumpVelocity,
		gravity:  cfg.Player.Gravity,
		scale:    scale,
	}
	p.sprite.Color, _ = core.ParseColor(cfg.Player.Color)
	p.W = cfg.Player.Width * scale
	p.H = cfg.Player.Height * scale
	p.X = cfg.Player.X * scale
	p.standY = cfg.GameHeight*scale - p.H - cfg.Player.GroundOffset*scale
	p.Reset()
	return p
}

// Reset puts the player back on the ground, undisguised.
func (p *Player) Reset() {
	p.Y = p.standY
	p.vel = 0
	p.grounded = true
	p.disguised = false
}

// Jump starts a jump if the player is on the ground.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.vel = -p.jumpVel
	p.grounded = false
	return true
}

// Update integrates jump physics over dt milliseconds. Gravity scales with
// the game speed; landing clamps to the ground.
func (p *Player) Update(dt, gameSpeed float64) {
	if p.grounded {
		return
	}
	p.vel += p.gravity * dt * gameSpeed
	p.Y += p.vel * dt * p.scale
	if p.Y >= p.standY {
		p.Y = p.standY
		p.vel = 0
		p.grounded = true
	}
}

// Grounded reports whether the player stands on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Disguise swaps the player's look for the disguise sprite.
func (p *Player) Disguise() {
	p.disguised = true
}

// Disguised reports whether the disguise is on.
func (p *Player) Disguised() bool {
	return p.disguised
}

// Sprite returns the player's sprite template, used to re-skin obstacles.
func (p *Player) Sprite() Template {
	return Template{Sprite: p.sprite, W: p.W, H: p.H}
}

// drawBox is the rendered rectangle: the hitbox, or the disguise sized box
// sharing the hitbox's bottom-left corner.
func (p *Player) drawBox() (core.Box, core.Sprite) {
	if !p.disguised {
		return p.Box, p.sprite
	}
	b := core.Box{X: p.X, Y: p.Bottom() - p.disguise.H, W: p.disguise.W, H: p.disguise.H}
	return b, p.disguise.Sprite
}

// Draw renders the player through the viewport.
func (p *Player) Draw(dst *core.Screen, vp core.Viewport) {
	b, sp := p.drawBox()
	sp.Draw(dst, vp.Project(b))
}
