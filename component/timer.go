package component

import "time"

// Timer counts elapsed time toward a duration
// A one-shot timer latches Finished; a repeating timer wraps and reports each completion
type Timer struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool

	finished      bool
	justFinished  bool
	timesFinished int
}

// NewTimer creates a one-shot timer
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// NewRepeatingTimer creates a timer that restarts after each completion
func NewRepeatingTimer(d time.Duration) Timer {
	return Timer{Duration: d, Repeating: true}
}

// Tick advances the timer by dt and reports whether it finished during this tick
func (t *Timer) Tick(dt time.Duration) bool {
	t.justFinished = false
	t.timesFinished = 0

	if t.finished && !t.Repeating {
		return false
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		t.finished = false
		return false
	}

	if t.Repeating {
		if t.Duration <= 0 {
			t.timesFinished = 1
			t.Elapsed = 0
		} else {
			t.timesFinished = int(t.Elapsed / t.Duration)
			t.Elapsed %= t.Duration
		}
	} else {
		t.timesFinished = 1
		t.Elapsed = t.Duration
	}
	t.finished = true
	t.justFinished = true
	return true
}

// JustFinished reports completion during the most recent Tick
func (t *Timer) JustFinished() bool { return t.justFinished }

// Finished reports whether the timer has reached its duration
func (t *Timer) Finished() bool { return t.finished }

// TimesFinished is the number of completions in the most recent Tick (repeating timers may wrap more than once)
func (t *Timer) TimesFinished() int { return t.timesFinished }

// Reset restarts the timer from zero
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}

// Remaining is the time left before the next completion
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}
