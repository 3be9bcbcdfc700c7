package chaos

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/timer"
)

// Director applies Evaluate's commands to a scheduler and an alert loop.
// Visual flags change only inside timer callbacks and clear commands.
type Director struct {
	cfg     config.BandsConfig
	sched   *timer.Scheduler
	audio   core.AudioLoop
	state   State
	handles [numEffects]timer.Handle
	visuals core.Visuals

	lastWasY bool // alternate flip: which axis was set last
}

// NewDirector creates a director. A nil audio loop plays nothing.
func NewDirector(cfg config.BandsConfig, sched *timer.Scheduler, audio core.AudioLoop) *Director {
	if audio == nil {
		audio = nopAudio{}
	}
	return &Director{cfg: cfg, sched: sched, audio: audio}
}

// Update re-evaluates the bands at score and returns the commands applied.
func (d *Director) Update(score int) []Command {
	next, cmds := Evaluate(d.cfg, d.state, score)
	for _, c := range cmds {
		d.apply(c)
	}
	d.state = next
	return cmds
}

func (d *Director) apply(c Command) {
	switch c.Kind {
	case StartTimer:
		d.sched.Cancel(d.handles[c.Effect])
		d.handles[c.Effect] = d.sched.Every(c.Period, d.tick(c.Effect))
	case CancelTimer:
		d.sched.Cancel(d.handles[c.Effect])
		d.handles[c.Effect] = 0
		if c.Effect == Alternate {
			d.lastWasY = false
		}
	case ClearFlags:
		d.clear(c.Flags)
	case PlayAudio:
		d.audio.Play()
	case PauseAudio:
		d.audio.Pause()
	}
}

func (d *Director) tick(e Effect) func() {
	switch e {
	case FlipY:
		return func() { d.visuals.FlipY = !d.visuals.FlipY }
	case FlipX:
		return func() { d.visuals.FlipX = !d.visuals.FlipX }
	case Siren:
		return func() { d.visuals.Dark = !d.visuals.Dark }
	default:
		return func() {
			if d.lastWasY {
				d.visuals.FlipX, d.visuals.FlipY = true, false
			} else {
				d.visuals.FlipX, d.visuals.FlipY = false, true
			}
			d.lastWasY = !d.lastWasY
		}
	}
}

func (d *Director) clear(f Flags) {
	if f&FlagFlipY != 0 {
		d.visuals.FlipY = false
	}
	if f&FlagFlipX != 0 {
		d.visuals.FlipX = false
	}
	if f&FlagDark != 0 {
		d.visuals.Dark = false
	}
}

// Reset cancels every effect timer, pauses and rewinds the alert loop and
// restores default visuals. The director can be reused afterwards.
func (d *Director) Reset() {
	for e := range d.handles {
		d.sched.Cancel(d.handles[e])
		d.handles[e] = 0
	}
	d.audio.Pause()
	d.audio.Rewind()
	d.state = State{}
	d.visuals = core.Visuals{}
	d.lastWasY = false
}

// Visuals returns the current screen effects.
func (d *Director) Visuals() core.Visuals {
	return d.visuals
}

// State returns the current band state.
func (d *Director) State() State {
	return d.state
}

// Stopped reports whether the stop score has been reached.
func (d *Director) Stopped() bool {
	return d.state.Stopped
}

// Hazard reports whether obstacles may rise at score.
func (d *Director) Hazard(score int) bool {
	return HazardActive(d.cfg, score)
}

type nopAudio struct{}

func (nopAudio) Play()         {}
func (nopAudio) Pause()        {}
func (nopAudio) Rewind()       {}
func (nopAudio) Playing() bool { return false }
