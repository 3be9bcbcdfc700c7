package config

import (
	_ "embed"
)

//go:embed defaults/chaos.yaml
var defaultChaosYAML []byte

var (
	dinoArt = []string{
		"   ▄██▄",
		"   ███▀",
		"█ ████ ",
		"██████ ",
		" ████  ",
		" █  █  ",
	}
	cactusArt = []string{
		" █  ",
		"██ █",
		"████",
		" ██ ",
		" ██ ",
		" ██ ",
	}
)

// DefaultChaosConfig returns the default Chaos Run configuration.
func DefaultChaosConfig() ChaosConfig {
	return ChaosConfig{
		Runner: RunnerConfig{
			GameWidth:     800,
			GameHeight:    200,
			DisplayScale:  1,
			BaseSpeed:     0.5,
			ScoreRate:     0.01,
			HitboxDivisor: 1.4,
			Player: PlayerConfig{
				X:            10,
				Width:        88.0 / 1.5,
				Height:       94.0 / 1.5,
				GroundOffset: 1.5,
				JumpVelocity: 0.6,
				Gravity:      0.0012,
				Art:          dinoArt,
				Color:        "green",
			},
			Disguise: SpriteConfig{
				Name:   "cactus_disguise",
				Width:  48.0 / 1.5,
				Height: 100.0 / 1.5,
				Art:    cactusArt,
				Color:  "green",
			},
			Spawn: SpawnConfig{
				IntervalMinMs: 500,
				IntervalMaxMs: 2000,
				Offset:        1.5,
			},
			Obstacles: []SpriteConfig{
				{Name: "cactus_1", Width: 48.0 / 1.5, Height: 100.0 / 1.5, Art: cactusArt, Color: "yellow"},
				{Name: "cactus_2", Width: 98.0 / 1.5, Height: 100.0 / 1.5, Art: cactusArt, Color: "yellow"},
				{Name: "cactus_3", Width: 68.0 / 1.5, Height: 70.0 / 1.5, Art: cactusArt, Color: "yellow"},
			},
			Ground: GroundConfig{
				Height: 24,
				Rune:   "_",
			},
		},
		Hazard: HazardConfig{
			Parity:    2,
			Proximity: 250,
			RiseSpeed: 0.1,
		},
		Chaos: BandsConfig{
			FlipY:             Band{Start: 50, End: 150, PeriodMs: 1000},
			FlipX:             Band{Start: 200, End: 300, PeriodMs: 1000},
			Siren:             Band{Start: 350, End: 450, PeriodMs: 100},
			Alternate:         Band{Start: 500, End: 600, PeriodMs: 500},
			StopScore:         650,
			TransitionDelayMs: 1500,
		},
		Grid: GridConfig{
			Size:              20,
			InitialIntervalMs: 150,
			SpeedFactor:       0.99,
			MinIntervalMs:     50,
			Collectibles:      22,
			Obstacles:         4,
			SelfCollisionSkip: 4,
			JudgeGlyphs:       "ABCDEFGHIJKLMNOPQRSTUV",
		},
		Reset: ResetConfig{
			ArmDelayMs: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartSpeed: 1.0,
			Increment:  0.00001,
			MaxSpeed:   0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chaos", "chaos_grid":
		return defaultChaosYAML
	default:
		return nil
	}
}
