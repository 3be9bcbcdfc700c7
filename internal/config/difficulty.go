package config

// DifficultyManager calculates the runner speed multiplier over time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.StartSpeed <= 0 {
		cfg.StartSpeed = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Increment > 0
}

// Initial returns the multiplier at the start of a run.
func (d *DifficultyManager) Initial() float64 {
	return d.cfg.StartSpeed
}

// Next grows the multiplier by one frame of dt milliseconds.
func (d *DifficultyManager) Next(speed, dt float64) float64 {
	if !d.IsEnabled() {
		return speed
	}
	speed += dt * d.cfg.Increment
	if d.cfg.MaxSpeed > 0 && speed > d.cfg.MaxSpeed {
		speed = d.cfg.MaxSpeed
	}
	return speed
}
