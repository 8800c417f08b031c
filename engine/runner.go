package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Phase identifies one of the three ordered slots of a fixed tick
type Phase uint8

const (
	// PhasePreFixed runs first: intent resolution, animation phase
	// advance, physics state sync from gameplay transforms
	PhasePreFixed Phase = iota
	// PhaseFixed runs second: broadphase pair generation, integration,
	// resolution
	PhaseFixed
	// PhasePostFixed runs last: writeback of physics results into
	// gameplay-visible transforms
	PhasePostFixed
)

// DefaultMaxTicksPerAdvance bounds catch-up after a frame stall
// A hitch longer than MaxTicks*Step discards the excess instead of
// cascading into an unbounded tick pileup
const DefaultMaxTicksPerAdvance = 5

// Runner executes systems on a fixed timestep using the classic
// accumulator: variable frame dt is banked, whole ticks of exactly Step
// seconds are drained from the bank, and the remainder carries forward.
// Every tick runs pre-fixed, fixed, then post-fixed systems in
// registration order; phase boundaries are strictly sequential.
type Runner struct {
	step     float64
	maxTicks int
	logger   *zap.Logger

	accumulator float64
	pre         []System
	fixed       []System
	post        []System

	totalTicks uint64
	lastTicks  int
}

// NewRunner creates a fixed-step runner
// step is the tick duration in seconds and must be > 0.
// maxTicks <= 0 selects DefaultMaxTicksPerAdvance. A nil logger is replaced
// with a no-op logger.
func NewRunner(step float64, maxTicks int, logger *zap.Logger) *Runner {
	if step <= 0 {
		panic(fmt.Sprintf("engine: invalid fixed step %v", step))
	}
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicksPerAdvance
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		step:     step,
		maxTicks: maxTicks,
		logger:   logger,
	}
}

// Register appends a system to a phase; within a phase, systems run in
// registration order. Cross-phase ordering is fixed and load-bearing.
func (r *Runner) Register(phase Phase, s System) {
	switch phase {
	case PhasePreFixed:
		r.pre = append(r.pre, s)
	case PhaseFixed:
		r.fixed = append(r.fixed, s)
	case PhasePostFixed:
		r.post = append(r.post, s)
	default:
		panic(fmt.Sprintf("engine: unknown phase %d", phase))
	}
}

// Advance banks dt seconds of real time and runs as many whole fixed ticks
// as have accumulated, capped at maxTicks. Excess accumulated time beyond
// the cap is discarded down to one step and logged, never silently kept.
// Returns the number of ticks executed. Panics on negative dt.
func (r *Runner) Advance(w *World, dt float64) int {
	if dt < 0 {
		panic(fmt.Sprintf("engine: negative dt %v", dt))
	}

	r.accumulator += dt

	ticks := 0
	for r.accumulator >= r.step && ticks < r.maxTicks {
		r.runTick(w)
		r.accumulator -= r.step
		ticks++
	}

	if r.accumulator >= r.step {
		// Stall longer than the cap allows; discard the whole-tick
		// surplus but keep the sub-step remainder so pacing stays smooth
		remainder := math.Mod(r.accumulator, r.step)
		dropped := r.accumulator - remainder
		r.accumulator = remainder
		r.logger.Warn("fixed-step cap hit, discarding accumulated time",
			zap.Float64("dropped_seconds", dropped),
			zap.Int("max_ticks", r.maxTicks),
		)
	}

	r.totalTicks += uint64(ticks)
	r.lastTicks = ticks
	return ticks
}

// runTick executes one fixed tick: pre-fixed, fixed, post-fixed
func (r *Runner) runTick(w *World) {
	for _, s := range r.pre {
		s.Update(w, r.step)
	}
	for _, s := range r.fixed {
		s.Update(w, r.step)
	}
	for _, s := range r.post {
		s.Update(w, r.step)
	}
}

// Step returns the fixed tick duration in seconds
func (r *Runner) Step() float64 {
	return r.step
}

// Accumulated returns the banked time not yet consumed by whole ticks
func (r *Runner) Accumulated() float64 {
	return r.accumulator
}

// TotalTicks returns the lifetime tick count
func (r *Runner) TotalTicks() uint64 {
	return r.totalTicks
}

// LastAdvanceTicks returns the tick count of the most recent Advance call
func (r *Runner) LastAdvanceTicks() int {
	return r.lastTicks
}
