package runner

import (
	"math/rand"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Spawner owns the obstacles: it decides when to create them, moves them,
// retires them and answers collision queries.
type Spawner struct {
	obstacles []*Obstacle
	templates []Template
	initial   []Template
	rng       *rand.Rand
	countdown float64 // ms until the next spawn
	spawned   int     // monotonic spawn counter

	cfg     config.RunnerConfig
	hazard  config.HazardConfig
	scale   float64
	viewW   float64
	groundY float64
}

// NewSpawner creates a spawner for the configured game area.
func NewSpawner(seed int64, cfg config.RunnerConfig, hazard config.HazardConfig) *Spawner {
	s := &Spawner{cfg: cfg, hazard: hazard}
	s.scale = cfg.DisplayScale
	s.viewW = cfg.GameWidth * s.scale
	s.groundY = cfg.GameHeight * s.scale
	for _, sc := range cfg.Obstacles {
		s.initial = append(s.initial, TemplateFromConfig(sc, s.scale))
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles, restores the original templates and reseeds
// the RNG.
func (s *Spawner) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.templates = append(s.templates[:0], s.initial...)
	s.rng = rand.New(rand.NewSource(seed))
	s.spawned = 0
	s.nextCountdown()
}

// nextCountdown samples the spawn delay uniformly from the configured range.
func (s *Spawner) nextCountdown() {
	lo, hi := s.cfg.Spawn.IntervalMinMs, s.cfg.Spawn.IntervalMaxMs
	s.countdown = float64(lo + s.rng.Intn(hi-lo+1))
}

// Update advances every obstacle by dt milliseconds. The countdown is
// decremented first and spawns when it is used up. While the hazard is
// active, parity-tagged obstacles start rising once they come within the
// proximity threshold of the player.
func (s *Spawner) Update(dt, gameSpeed float64, hazard bool, player core.Box) {
	s.countdown -= dt
	if s.countdown <= 0 {
		s.spawn()
		s.nextCountdown()
	}

	threshold := s.hazard.Proximity * s.scale
	for _, o := range s.obstacles {
		if hazard && o.Even && !o.Rising && o.X-player.X < threshold {
			o.Rising = true
			o.VerticalSpeed = s.hazard.RiseSpeed
		}
		o.Update(s.cfg.BaseSpeed, gameSpeed, dt, s.scale)
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.Gone() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// spawn creates one obstacle from a random template beyond the right edge.
func (s *Spawner) spawn() {
	s.spawned++
	t := s.templates[s.rng.Intn(len(s.templates))]
	o := &Obstacle{
		Box:    core.Box{X: s.viewW * s.cfg.Spawn.Offset, Y: s.groundY - t.H, W: t.W, H: t.H},
		Sprite: t.Sprite,
		Even:   s.spawned%s.hazard.Parity == 0,
	}
	s.obstacles = append(s.obstacles, o)
}

// CollideWith returns the first obstacle, in spawn order, that overlaps
// the actor, or nil.
func (s *Spawner) CollideWith(actor core.Box) *Obstacle {
	for _, o := range s.obstacles {
		if Collides(actor, o.Box, s.cfg.HitboxDivisor) {
			return o
		}
	}
	return nil
}

// Remove drops an obstacle, preserving the order of the rest.
func (s *Spawner) Remove(target *Obstacle) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o != target {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// TransformVisuals re-skins every spawned obstacle and every future spawn.
func (s *Spawner) TransformVisuals(t Template) {
	for i := range s.templates {
		s.templates[i] = t
	}
	for _, o := range s.obstacles {
		o.Reskin(t, s.groundY)
	}
}

// Obstacles returns the active obstacles in spawn order.
func (s *Spawner) Obstacles() []*Obstacle {
	return s.obstacles
}

// Spawned returns how many obstacles have been created since Reset.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Draw renders every obstacle through the viewport.
func (s *Spawner) Draw(dst *core.Screen, vp core.Viewport) {
	for _, o := range s.obstacles {
		o.Sprite.Draw(dst, vp.Project(o.Box))
	}
}
