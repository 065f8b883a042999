package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock drives a fixed-timestep loop
// Deadlines advance by whole steps; a stall longer than MaxCatchUp intervals resyncs to now
type Clock struct {
	Interval   time.Duration // nominal step, truncated to whole nanoseconds
	MaxCatchUp int

	rate   int

	now    func() time.Time
	paused atomic.Bool
	ticks  atomic.Int64
}

// NewClock creates a clock running at rate Hz
func NewClock(rate int, maxCatchUp int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Clock{
		Interval:   time.Second / time.Duration(rate),
		MaxCatchUp: maxCatchUp,
		rate:       rate,
		now:        time.Now,
	}
}

func (c *Clock) Pause() { c.paused.Store(true) }
func (c *Clock) Resume() { c.paused.Store(false) }
func (c *Clock) Paused() bool { return c.paused.Load() }
func (c *Clock) TickCount() int64 { return c.ticks.Load() }

// StepDuration is the length of the n-th tick (1-based) at rate Hz
// Steps differ by at most a nanosecond and every rate consecutive steps sum to exactly one second,
// so a duration that is a whole number of ticks elapses on that tick
func StepDuration(rate int, n int64) time.Duration {
	r := time.Duration(rate)
	return time.Duration(n)*time.Second/r - time.Duration(n-1)*time.Second/r
}

// Run calls tick with StepDuration steps until ctx is done or tick returns an error
func (c *Clock) Run(ctx context.Context, tick func(dt time.Duration) error) error {
	timer := time.NewTimer(c.Interval)
	defer timer.Stop()

	deadline := c.now().Add(c.Interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		now := c.now()
		if c.paused.Load() {
			deadline = now.Add(c.Interval)
			timer.Reset(c.Interval)
			continue
		}

		for n := 0; !now.Before(deadline) && n < c.MaxCatchUp; n++ {
			dt := StepDuration(c.rate, c.ticks.Load()+1)
			if err := tick(dt); err != nil {
				return err
			}
			c.ticks.Add(1)
			deadline = deadline.Add(dt)
		}
		if now.Sub(deadline) > c.Interval*time.Duration(c.MaxCatchUp) {
			deadline = now.Add(c.Interval)
		}

		wait := deadline.Sub(c.now())
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}
