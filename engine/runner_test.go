package engine

import (
	"math"
	"testing"
)

// recordingSystem logs its label into a shared trace on every update
type recordingSystem struct {
	label string
	trace *[]string
}

func (r *recordingSystem) Update(w *World, dt float64) {
	*r.trace = append(*r.trace, r.label)
}

func newTestRunner(step float64, maxTicks int) *Runner {
	return NewRunner(step, maxTicks, nil)
}

func TestAccumulatorTickCount(t *testing.T) {
	w := NewWorld()
	// Binary-exact step keeps the arithmetic drift-free
	r := newTestRunner(0.125, 1000)

	// floor(0.4375 / 0.125) = 3 ticks, 0.0625 carries
	if got := r.Advance(w, 0.4375); got != 3 {
		t.Errorf("expected 3 ticks, got %d", got)
	}
	if rem := r.Accumulated(); math.Abs(rem-0.0625) > 1e-12 {
		t.Errorf("expected 0.0625 carried, got %v", rem)
	}

	// carried 0.0625 + 0.0625 = one whole tick
	if got := r.Advance(w, 0.0625); got != 1 {
		t.Errorf("expected 1 tick from carried remainder, got %d", got)
	}
	if rem := r.Accumulated(); rem > 1e-12 {
		t.Errorf("expected empty accumulator, got %v", rem)
	}
}

func TestZeroDtRunsZeroTicks(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.125, 1000)

	for i := 0; i < 10; i++ {
		if got := r.Advance(w, 0); got != 0 {
			t.Fatalf("dt=0 executed %d ticks on call %d", got, i)
		}
	}

	// Also after a partial accumulation
	r.Advance(w, 0.1)
	if got := r.Advance(w, 0); got != 0 {
		t.Errorf("dt=0 executed %d ticks with partial accumulator", got)
	}
}

func TestNegativeDtPanics(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.1, 0)

	defer func() {
		if rec := recover(); rec == nil {
			t.Error("expected panic on negative dt")
		}
	}()
	r.Advance(w, -0.01)
}

func TestTickCapDiscardsExcess(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.1, 2)

	// 1.05s banked = 10 whole ticks; cap allows 2, surplus discarded,
	// sub-step remainder (0.05) kept
	if got := r.Advance(w, 1.05); got != 2 {
		t.Errorf("expected 2 capped ticks, got %d", got)
	}
	if rem := r.Accumulated(); rem >= r.Step() {
		t.Errorf("accumulator %v still holds a whole tick after cap", rem)
	}
	if got := r.Advance(w, 0); got != 0 {
		t.Errorf("dt=0 after cap executed %d ticks", got)
	}
}

func TestPhaseOrderWithinTick(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.1, 0)

	var trace []string
	r.Register(PhasePostFixed, &recordingSystem{"post", &trace})
	r.Register(PhasePreFixed, &recordingSystem{"pre1", &trace})
	r.Register(PhaseFixed, &recordingSystem{"fixed", &trace})
	r.Register(PhasePreFixed, &recordingSystem{"pre2", &trace})

	r.Advance(w, 0.25)

	want := []string{"pre1", "pre2", "fixed", "post", "pre1", "pre2", "fixed", "post"}
	if len(trace) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(trace), trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("order mismatch at %d: expected %v, got %v", i, want, trace)
		}
	}
}

func TestTickStepIsUniform(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.02, 1000)

	var dts []float64
	r.Register(PhaseFixed, SystemFunc(func(w *World, dt float64) {
		dts = append(dts, dt)
	}))

	// Irregular frame times must still yield perfectly uniform tick dt
	for _, frame := range []float64{0.013, 0.041, 0.002, 0.09, 0.017} {
		r.Advance(w, frame)
	}

	for i, dt := range dts {
		if dt != 0.02 {
			t.Errorf("tick %d ran with dt %v, want exactly 0.02", i, dt)
		}
	}
	if len(dts) == 0 {
		t.Error("no ticks executed")
	}
}

func TestTotalTicksCounter(t *testing.T) {
	w := NewWorld()
	r := newTestRunner(0.25, 1000)

	r.Advance(w, 0.75)
	r.Advance(w, 0.5)

	if r.TotalTicks() != 5 {
		t.Errorf("expected 5 total ticks, got %d", r.TotalTicks())
	}
	if r.LastAdvanceTicks() != 2 {
		t.Errorf("expected 2 ticks on last advance, got %d", r.LastAdvanceTicks())
	}
}

func TestInvalidStepPanics(t *testing.T) {
	defer func() {
		if rec := recover(); rec == nil {
			t.Error("expected panic on zero step")
		}
	}()
	NewRunner(0, 0, nil)
}
