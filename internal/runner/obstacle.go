// Package runner implements the side-scrolling phase: a jumping player,
// ground-anchored obstacles streaming in from the right, and the score that
// drives the chaos bands.
//
// Positions are world units: logical pixels of the game area multiplied by
// the display scale. The platform maps world units onto terminal cells.
package runner

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Template is a spawnable obstacle variant.
type Template struct {
	Sprite core.Sprite
	W, H   float64
}

// Obstacle is a spawned obstacle. Even marks the parity-tagged obstacles
// that may rise while the hazard is active; rising never reverts.
type Obstacle struct {
	core.Box
	Sprite        core.Sprite
	Even          bool
	Rising        bool
	VerticalSpeed float64
}

// Update moves the obstacle left with the game speed and, when rising,
// upward at its own constant speed.
func (o *Obstacle) Update(speed, gameSpeed, dt, scale float64) {
	o.X -= speed * gameSpeed * dt * scale
	if o.Rising {
		o.Y -= o.VerticalSpeed * dt * scale
	}
}

// Reskin swaps the sprite and size, keeping the obstacle on the ground.
func (o *Obstacle) Reskin(t Template, groundY float64) {
	o.Sprite = t.Sprite
	o.W, o.H = t.W, t.H
	o.Y = groundY - o.H
}

// Gone reports whether the obstacle has left the area through the left edge
// or the top.
func (o *Obstacle) Gone() bool {
	return o.X <= -o.W || o.Y+o.H <= 0
}

// SpriteFromConfig converts a sprite config. Unknown colors fall back to
// the default color.
func SpriteFromConfig(sc config.SpriteConfig) core.Sprite {
	c, _ := core.ParseColor(sc.Color)
	return core.Sprite{Name: sc.Name, Art: sc.Art, Color: c}
}

// TemplateFromConfig converts a sprite config into a template at scale.
func TemplateFromConfig(sc config.SpriteConfig, scale float64) Template {
	return Template{Sprite: SpriteFromConfig(sc), W: sc.Width * scale, H: sc.Height * scale}
}
