// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ChaosConfig contains all configuration for the Chaos Run game.
type ChaosConfig struct {
	Runner     RunnerConfig     `yaml:"runner"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Chaos      BandsConfig      `yaml:"chaos"`
	Grid       GridConfig       `yaml:"grid"`
	Reset      ResetConfig      `yaml:"reset"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerConfig defines the side-scrolling phase.
// Lengths are logical pixels of the GameWidth x GameHeight area.
type RunnerConfig struct {
	GameWidth     float64        `yaml:"game_width"`
	GameHeight    float64        `yaml:"game_height"`
	DisplayScale  float64        `yaml:"display_scale"`  // World units per logical pixel
	BaseSpeed     float64        `yaml:"base_speed"`     // Obstacle speed, px per ms
	ScoreRate     float64        `yaml:"score_rate"`     // Points per ms
	HitboxDivisor float64        `yaml:"hitbox_divisor"` // Per-operand hitbox shrink
	Player        PlayerConfig   `yaml:"player"`
	Disguise      SpriteConfig   `yaml:"disguise"`
	Spawn         SpawnConfig    `yaml:"spawn"`
	Obstacles     []SpriteConfig `yaml:"obstacles"`
	Ground        GroundConfig   `yaml:"ground"`
}

// PlayerConfig defines the runner's size and jump physics.
type PlayerConfig struct {
	X            float64  `yaml:"x"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	GroundOffset float64  `yaml:"ground_offset"`
	JumpVelocity float64  `yaml:"jump_velocity"` // Initial upward speed, px per ms
	Gravity      float64  `yaml:"gravity"`       // px per ms^2
	Art          []string `yaml:"art"`
	Color        string   `yaml:"color"`
}

// SpriteConfig is a sized piece of text art.
type SpriteConfig struct {
	Name   string   `yaml:"name"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Art    []string `yaml:"art"`
	Color  string   `yaml:"color"`
}

// SpawnConfig defines when and where obstacles appear.
type SpawnConfig struct {
	IntervalMinMs int     `yaml:"interval_min_ms"`
	IntervalMaxMs int     `yaml:"interval_max_ms"`
	Offset        float64 `yaml:"offset"` // Spawn x as a multiple of the view width
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Height float64 `yaml:"height"`
	Rune   string  `yaml:"rune"`
}

// HazardConfig tunes the rising obstacles of the siren band.
type HazardConfig struct {
	Parity    int     `yaml:"parity"`     // Every Nth spawned obstacle is tagged
	Proximity float64 `yaml:"proximity"`  // Trigger distance, logical px
	RiseSpeed float64 `yaml:"rise_speed"` // px per ms
}

// Band is a half-open score interval [Start, End) with a timer period.
type Band struct {
	Start    int `yaml:"start"`
	End      int `yaml:"end"`
	PeriodMs int `yaml:"period_ms"`
}

// Contains reports whether score lies in [Start, End).
func (b Band) Contains(score int) bool {
	return score >= b.Start && score < b.End
}

// BandsConfig defines the score-banded chaos effects.
type BandsConfig struct {
	FlipY             Band `yaml:"flip_y"`
	FlipX             Band `yaml:"flip_x"`
	Siren             Band `yaml:"siren"`
	Alternate         Band `yaml:"alternate"`
	StopScore         int  `yaml:"stop_score"`
	TransitionDelayMs int  `yaml:"transition_delay_ms"`
}

// GridConfig defines the grid phase.
type GridConfig struct {
	Size              int     `yaml:"size"`
	InitialIntervalMs float64 `yaml:"initial_interval_ms"`
	SpeedFactor       float64 `yaml:"speed_factor"`
	MinIntervalMs     float64 `yaml:"min_interval_ms"`
	Collectibles      int     `yaml:"collectibles"`
	Obstacles         int     `yaml:"obstacles"`
	SelfCollisionSkip int     `yaml:"self_collision_skip"`
	JudgeGlyphs       string  `yaml:"judge_glyphs"`
}

// ResetConfig defines the restart binding.
type ResetConfig struct {
	ArmDelayMs int `yaml:"arm_delay_ms"`
}

// DifficultyConfig defines the runner speed curve.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	StartSpeed float64 `yaml:"start_speed"`
	Increment  float64 `yaml:"increment"` // Added to the multiplier per ms
	MaxSpeed   float64 `yaml:"max_speed"` // 0 = unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// StartSpeedForPreset returns the starting speed multiplier for a preset.
func StartSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the config for values the simulation cannot run with.
func (c ChaosConfig) Validate() error {
	var errs []error

	r := c.Runner
	if r.GameWidth <= 0 || r.GameHeight <= 0 {
		errs = append(errs, errors.New("runner game area must be positive"))
	}
	if r.DisplayScale <= 0 {
		errs = append(errs, errors.New("runner display_scale must be positive"))
	}
	if r.HitboxDivisor <= 0 {
		errs = append(errs, errors.New("runner hitbox_divisor must be positive"))
	}
	if r.Spawn.IntervalMinMs < 0 || r.Spawn.IntervalMinMs > r.Spawn.IntervalMaxMs {
		errs = append(errs, fmt.Errorf("spawn interval [%d, %d] is invalid", r.Spawn.IntervalMinMs, r.Spawn.IntervalMaxMs))
	}
	if len(r.Obstacles) == 0 {
		errs = append(errs, errors.New("runner needs at least one obstacle sprite"))
	}
	if c.Hazard.Parity < 1 {
		errs = append(errs, errors.New("hazard parity must be at least 1"))
	}

	bands := []struct {
		name string
		band Band
	}{
		{"flip_y", c.Chaos.FlipY},
		{"flip_x", c.Chaos.FlipX},
		{"siren", c.Chaos.Siren},
		{"alternate", c.Chaos.Alternate},
	}
	for _, nb := range bands {
		b := nb.band
		if b.Start >= b.End {
			errs = append(errs, fmt.Errorf("chaos band %s [%d, %d) is empty", nb.name, b.Start, b.End))
		}
		if b.PeriodMs <= 0 {
			errs = append(errs, fmt.Errorf("chaos band %s needs a positive period", nb.name))
		}
	}
	if c.Chaos.StopScore <= c.Chaos.Alternate.End {
		errs = append(errs, fmt.Errorf("chaos stop_score %d must be above the alternate band end %d",
			c.Chaos.StopScore, c.Chaos.Alternate.End))
	}
	if c.Chaos.TransitionDelayMs < 0 {
		errs = append(errs, errors.New("chaos transition_delay_ms must not be negative"))
	}
	if c.Reset.ArmDelayMs < 0 {
		errs = append(errs, errors.New("reset arm_delay_ms must not be negative"))
	}

	g := c.Grid
	if g.Size < 5 {
		errs = append(errs, fmt.Errorf("grid size %d is below 5", g.Size))
	}
	if g.Collectibles < 1 {
		errs = append(errs, errors.New("grid needs at least one collectible"))
	}
	if g.InitialIntervalMs <= 0 || g.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("grid intervals must be positive"))
	}
	if g.SpeedFactor <= 0 || g.SpeedFactor > 1 {
		errs = append(errs, fmt.Errorf("grid speed_factor %v must be in (0, 1]", g.SpeedFactor))
	}
	if g.SelfCollisionSkip < 1 {
		errs = append(errs, errors.New("grid self_collision_skip must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
