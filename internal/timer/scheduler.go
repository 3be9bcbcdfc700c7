// Package timer provides interval and one-shot timers driven by the
// simulation clock. Callbacks run inside Advance, on the caller's goroutine,
// so timer side effects never race with frame updates.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	due    time.Duration
	period time.Duration // zero for one-shot timers
	fn     func()
}

// Scheduler holds pending timers against a virtual clock.
type Scheduler struct {
	now    time.Duration
	next   Handle
	timers map[Handle]*entry
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[Handle]*entry)}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every schedules fn to run once per period, first after one period.
// A non-positive period is treated as one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

// After schedules fn to run once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) Handle {
	s.next++
	e := &entry{handle: s.next, due: s.now + delay, period: period, fn: fn}
	s.timers[e.handle] = e
	return e.handle
}

// Cancel stops a timer. Cancelling an unknown or already cancelled handle
// is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	delete(s.timers, h)
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for h := range s.timers {
		delete(s.timers, h)
	}
}

// Active reports whether the handle refers to a pending timer.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.timers[h]
	return ok
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt and runs every callback that falls
// due, in due-time order (ties in scheduling order). An interval timer fires
// once for each full period that elapsed.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		e := s.earliest(target)
		if e == nil {
			break
		}
		s.now = e.due
		if e.period > 0 {
			e.due += e.period
		} else {
			delete(s.timers, e.handle)
		}
		e.fn()
	}

	s.now = target
}

// earliest returns the pending timer with the smallest due time not after
// target, or nil.
func (s *Scheduler) earliest(target time.Duration) *entry {
	var due []*entry
	for _, e := range s.timers {
		if e.due <= target {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].handle < due[j].handle
	})
	return due[0]
}
