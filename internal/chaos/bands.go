// Package chaos decides which score-banded screen effects run during the
// runner phase and drives them on the simulation clock.
//
// Evaluate is the decision half: a pure transition from (state, score) to the
// next state plus the side-effect commands that realise it. Director is the
// execution half: it owns the timers, the visual flags and the alert loop.
package chaos

import (
	"time"

	"github.com/vovakirdan/chaos-arcade/internal/config"
)

// Effect identifies one chaos band.
type Effect int

const (
	FlipY Effect = iota
	FlipX
	Siren
	Alternate
	numEffects
)

// String returns the effect name used in logs.
func (e Effect) String() string {
	switch e {
	case FlipY:
		return "flip_y"
	case FlipX:
		return "flip_x"
	case Siren:
		return "siren"
	case Alternate:
		return "alternate"
	default:
		return "unknown"
	}
}

// Flags is a set of visual flags a command clears.
type Flags uint8

const (
	FlagFlipY Flags = 1 << iota
	FlagFlipX
	FlagDark
)

// flagsOf returns the visual flags an effect's timer may set.
func flagsOf(e Effect) Flags {
	switch e {
	case FlipY:
		return FlagFlipY
	case FlipX:
		return FlagFlipX
	case Siren:
		return FlagDark
	case Alternate:
		return FlagFlipX | FlagFlipY
	default:
		return 0
	}
}

// Kind is the type of a side-effect command.
type Kind int

const (
	StartTimer Kind = iota
	CancelTimer
	ClearFlags
	PlayAudio
	PauseAudio
)

// Command is one side effect requested by Evaluate.
type Command struct {
	Kind   Kind
	Effect Effect        // StartTimer, CancelTimer
	Period time.Duration // StartTimer
	Flags  Flags         // ClearFlags
}

// State records which effect timers are running and whether the alert loop
// is playing. Stopped latches once the stop score is reached.
type State struct {
	Running      [numEffects]bool
	AudioPlaying bool
	Stopped      bool
}

// Active reports whether the timer of e is running.
func (s State) Active(e Effect) bool {
	return e >= 0 && e < numEffects && s.Running[e]
}

// Idle reports whether no timer runs and no audio plays.
func (s State) Idle() bool {
	for _, r := range s.Running {
		if r {
			return false
		}
	}
	return !s.AudioPlaying
}

func band(cfg config.BandsConfig, e Effect) config.Band {
	switch e {
	case FlipY:
		return cfg.FlipY
	case FlipX:
		return cfg.FlipX
	case Siren:
		return cfg.Siren
	default:
		return cfg.Alternate
	}
}

// Evaluate returns the state the effects should be in at score, and the
// commands that move st there. It is idempotent: evaluating the returned
// state at the same score yields no commands.
func Evaluate(cfg config.BandsConfig, st State, score int) (State, []Command) {
	if st.Stopped {
		return st, nil
	}

	var cmds []Command
	stop := func(e Effect) {
		if st.Running[e] {
			st.Running[e] = false
			cmds = append(cmds,
				Command{Kind: CancelTimer, Effect: e},
				Command{Kind: ClearFlags, Flags: flagsOf(e)},
			)
		}
	}
	start := func(e Effect) {
		if !st.Running[e] {
			st.Running[e] = true
			cmds = append(cmds, Command{
				Kind:   StartTimer,
				Effect: e,
				Period: time.Duration(band(cfg, e).PeriodMs) * time.Millisecond,
			})
		}
	}

	if score >= cfg.StopScore {
		if st.AudioPlaying {
			st.AudioPlaying = false
			cmds = append(cmds, Command{Kind: PauseAudio})
		}
		for e := Effect(0); e < numEffects; e++ {
			stop(e)
		}
		st.Stopped = true
		return st, cmds
	}

	inAlt := cfg.Alternate.Contains(score)
	if !inAlt {
		stop(Alternate)
	}

	// Single-axis flips yield to the alternate band; the flip timers are
	// cancelled and their flags cleared before the alternate timer starts.
	for _, e := range []Effect{FlipY, FlipX} {
		if band(cfg, e).Contains(score) && !inAlt {
			start(e)
		} else {
			stop(e)
		}
	}

	if inAlt {
		start(Alternate)
	}

	if cfg.Siren.Contains(score) {
		start(Siren)
		if !st.AudioPlaying {
			st.AudioPlaying = true
			cmds = append(cmds, Command{Kind: PlayAudio})
		}
	} else {
		stop(Siren)
		if st.AudioPlaying {
			st.AudioPlaying = false
			cmds = append(cmds, Command{Kind: PauseAudio})
		}
	}

	return st, cmds
}

// HazardActive reports whether obstacles may rise at score.
func HazardActive(cfg config.BandsConfig, score int) bool {
	return cfg.Siren.Contains(score) && score < cfg.StopScore
}
