// Package sim owns the live set, the generation counter, and the play/pause
// schedule that drives generation steps.
package sim

import (
	"time"

	"github.com/HanzPo/gameoflife/pkg/life"
)

const (
	// MinDelay and MaxDelay bound the time between generations while running.
	MinDelay = 20 * time.Millisecond
	MaxDelay = 1000 * time.Millisecond
	// DefaultDelay is the starting tick interval.
	DefaultDelay = 100 * time.Millisecond
)

// Controller is the single writer of the simulation state. It is either idle
// or running; while running, the host loop's Update calls advance generations
// on a fixed-delay accumulator. All board edits stop the run first, so a tick
// can never interleave with a load or clear.
type Controller struct {
	cells      life.Set
	seed       life.Set // generation-0 snapshot restored by Reset
	generation int
	running    bool

	delay       time.Duration
	accumulator time.Duration
	last        time.Time
}

// New returns an idle controller with an empty board.
func New() *Controller {
	return &Controller{cells: life.Set{}, seed: life.Set{}, delay: DefaultDelay}
}

// Cells exposes the current live set. Callers must treat it as read-only;
// every mutation goes through the controller.
func (c *Controller) Cells() life.Set { return c.cells }

// Seed exposes the generation-0 snapshot. Read-only for callers.
func (c *Controller) Seed() life.Set { return c.seed }

// Generation returns the number of steps applied since the seed was set.
func (c *Controller) Generation() int { return c.generation }

// Population returns the number of live cells.
func (c *Controller) Population() int { return len(c.cells) }

// Running reports whether the schedule is active.
func (c *Controller) Running() bool { return c.running }

// Delay returns the configured tick interval.
func (c *Controller) Delay() time.Duration { return c.delay }

// Toggle flips one cell. While the seed is still untouched by stepping, the
// snapshot is edited alongside so Reset restores the drawn board. Ignored
// while running.
func (c *Controller) Toggle(cell life.Cell) {
	if c.running {
		return
	}
	c.cells.Toggle(cell)
	if c.generation == 0 {
		c.seed.Toggle(cell)
	}
}

// StepOnce advances a single generation while idle.
func (c *Controller) StepOnce() {
	if c.running {
		return
	}
	c.tick()
}

// Play starts the schedule. The accumulator is re-armed so the first tick
// lands one full delay after the transition.
func (c *Controller) Play() {
	if c.running {
		return
	}
	c.running = true
	c.accumulator = 0
}

// Pause stops the schedule.
func (c *Controller) Pause() {
	c.running = false
}

// SetDelay clamps and applies a new tick interval. Changing the delay
// re-arms the schedule so the old interval cannot fire a stale tick.
func (c *Controller) SetDelay(d time.Duration) {
	if d < MinDelay {
		d = MinDelay
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	if d == c.delay {
		return
	}
	c.delay = d
	c.accumulator = 0
}

// Update advances the running schedule from the wall clock. The host loop
// calls it once per frame.
func (c *Controller) Update() {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	c.Advance(delta)
}

// Advance moves the schedule forward by delta, ticking at most once so a
// stalled frame cannot burst through many generations.
func (c *Controller) Advance(delta time.Duration) {
	if !c.running {
		c.accumulator = 0
		return
	}
	c.accumulator += delta
	if c.accumulator >= c.delay {
		c.accumulator -= c.delay
		if c.accumulator > c.delay {
			// A stalled frame ticks once; the backlog is dropped rather
			// than replayed as a burst.
			c.accumulator = 0
		}
		c.tick()
	}
}

// tick replaces the live set with the next generation. The swap is the only
// externally visible effect of a step.
func (c *Controller) tick() {
	c.cells = life.Step(c.cells)
	c.generation++
}

// Reset stops the run and restores the generation-0 snapshot.
func (c *Controller) Reset() {
	c.running = false
	c.cells = c.seed.Clone()
	c.generation = 0
}

// Clear stops the run and empties both the board and the snapshot.
func (c *Controller) Clear() {
	c.running = false
	c.cells = life.Set{}
	c.seed = life.Set{}
	c.generation = 0
}

// Load stops the run and replaces the board and snapshot with the given
// cells, as used by imports, share tokens, and preset insertion.
func (c *Controller) Load(cells []life.Cell) {
	c.running = false
	c.cells = life.NewSet(cells...)
	c.seed = c.cells.Clone()
	c.generation = 0
}
