package sim

import (
	"testing"
	"time"

	"github.com/HanzPo/gameoflife/pkg/life"
)

var blinker = []life.Cell{{Row: 0, Col: -1}, {Row: 0, Col: 0}, {Row: 0, Col: 1}}

func TestLoadAndStepOnce(t *testing.T) {
	c := New()
	c.Load(blinker)
	if c.Generation() != 0 || c.Population() != 3 {
		t.Fatalf("after load: generation=%d population=%d", c.Generation(), c.Population())
	}

	c.StepOnce()
	if c.Generation() != 1 {
		t.Fatalf("generation=%d after one step", c.Generation())
	}
	if !c.Cells().Has(life.Cell{Row: -1, Col: 0}) {
		t.Fatal("blinker did not flip vertical")
	}
}

func TestToggleEditsSeedOnlyAtGenerationZero(t *testing.T) {
	c := New()
	c.Toggle(life.Cell{Row: 1, Col: 1})
	if !c.Seed().Has(life.Cell{Row: 1, Col: 1}) {
		t.Fatal("toggle at generation 0 must reach the seed")
	}

	c.Load(blinker)
	c.StepOnce()
	c.Toggle(life.Cell{Row: 9, Col: 9})
	if c.Seed().Has(life.Cell{Row: 9, Col: 9}) {
		t.Fatal("toggle after stepping leaked into the seed")
	}

	c.Reset()
	if c.Generation() != 0 || c.Population() != 3 {
		t.Fatalf("reset gave generation=%d population=%d", c.Generation(), c.Population())
	}
}

func TestToggleIgnoredWhileRunning(t *testing.T) {
	c := New()
	c.Play()
	c.Toggle(life.Cell{})
	if c.Population() != 0 {
		t.Fatal("toggle must be ignored while running")
	}
	c.StepOnce()
	if c.Generation() != 0 {
		t.Fatal("manual step must be ignored while running")
	}
}

func TestAdvanceTicksAtDelay(t *testing.T) {
	c := New()
	c.Load(blinker)
	c.SetDelay(100 * time.Millisecond)
	c.Play()

	c.Advance(60 * time.Millisecond)
	if c.Generation() != 0 {
		t.Fatal("ticked before the delay elapsed")
	}
	c.Advance(60 * time.Millisecond)
	if c.Generation() != 1 {
		t.Fatalf("generation=%d after the delay elapsed", c.Generation())
	}

	// A stalled frame still advances a single generation.
	c.Advance(5 * time.Second)
	if c.Generation() != 2 {
		t.Fatalf("generation=%d after a stalled frame", c.Generation())
	}
}

func TestSetDelayRearmsSchedule(t *testing.T) {
	c := New()
	c.Load(blinker)
	c.Play()
	c.Advance(90 * time.Millisecond)

	// Shrinking the delay mid-run must not count time already accumulated
	// toward the old interval.
	c.SetDelay(50 * time.Millisecond)
	c.Advance(20 * time.Millisecond)
	if c.Generation() != 0 {
		t.Fatalf("stale accumulator fired a tick, generation=%d", c.Generation())
	}
	c.Advance(40 * time.Millisecond)
	if c.Generation() != 1 {
		t.Fatalf("generation=%d after new delay elapsed", c.Generation())
	}
}

func TestSetDelayClamped(t *testing.T) {
	c := New()
	c.SetDelay(time.Millisecond)
	if c.Delay() != MinDelay {
		t.Fatalf("delay %v, expected clamp to %v", c.Delay(), MinDelay)
	}
	c.SetDelay(time.Minute)
	if c.Delay() != MaxDelay {
		t.Fatalf("delay %v, expected clamp to %v", c.Delay(), MaxDelay)
	}
}

func TestPauseStopsSchedule(t *testing.T) {
	c := New()
	c.Load(blinker)
	c.Play()
	c.Advance(90 * time.Millisecond)
	c.Pause()
	c.Advance(time.Second)
	if c.Generation() != 0 {
		t.Fatal("ticked while paused")
	}

	// Pausing drops accumulated time; resuming starts a fresh interval.
	c.Play()
	c.Advance(90 * time.Millisecond)
	if c.Generation() != 0 {
		t.Fatal("resume reused the pre-pause accumulator")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Load(blinker)
	c.StepOnce()
	c.Clear()
	if c.Population() != 0 || len(c.Seed()) != 0 || c.Generation() != 0 {
		t.Fatalf("clear left population=%d seed=%d generation=%d",
			c.Population(), len(c.Seed()), c.Generation())
	}
}

func TestLoadStopsRun(t *testing.T) {
	c := New()
	c.Play()
	c.Load(blinker)
	if c.Running() {
		t.Fatal("load must transition to idle")
	}
}
