// Package runner drives a simulation headlessly: it advances one generation
// per tick, reports progress and stops on extinction, a generation limit or
// context cancellation.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"lifespan-ca/internal/core"
)

// StopReason explains why a run ended.
type StopReason string

const (
	StopNone      StopReason = ""
	StopExtinct   StopReason = "extinct"
	StopLimit     StopReason = "limit"
	StopCancelled StopReason = "cancelled"
)

// Status is a snapshot of a run, passed to the report callback.
type Status struct {
	Generation int
	Alive      int
	Elapsed    time.Duration
	Reason     StopReason
}

// Done reports whether the run has ended.
func (s Status) Done() bool { return s.Reason != StopNone }

// Options configures a run.
type Options struct {
	// Interval between generations. Zero runs as fast as possible.
	Interval time.Duration
	// MaxGenerations stops the run after that many generations. Zero means
	// no limit.
	MaxGenerations int
	// ReportEvery sends a status every N generations. Zero reports only the
	// final status.
	ReportEvery int
}

// DefaultOptions paces the run at ten generations per second and reports
// every tenth generation.
func DefaultOptions() Options {
	return Options{Interval: 100 * time.Millisecond, ReportEvery: 10}
}

// ErrNoPopulation is returned for sims that cannot report living cells.
var ErrNoPopulation = errors.New("sim does not report its population")

// Runner advances a sim until it stops.
type Runner struct {
	sim    core.Sim
	pop    core.Population
	opts   Options
	logger *log.Logger
}

// New wraps sim. The sim must implement core.Population.
func New(sim core.Sim, opts Options, logger *log.Logger) (*Runner, error) {
	pop, ok := sim.(core.Population)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sim.Name(), ErrNoPopulation)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{sim: sim, pop: pop, opts: opts, logger: logger.With("sim", sim.Name())}, nil
}

// Run advances the sim until it goes extinct, reaches the generation limit or
// ctx is done. report may be nil. The final status is always returned; the
// error is ctx.Err() when the run was cancelled.
func (r *Runner) Run(ctx context.Context, report func(Status)) (Status, error) {
	start := time.Now()
	var pacer *core.FixedStep
	if r.opts.Interval > 0 {
		pacer = core.NewFixedInterval(r.opts.Interval)
	}

	status := func(reason StopReason) Status {
		return Status{
			Generation: r.pop.Generation(),
			Alive:      r.pop.AliveCount(),
			Elapsed:    time.Since(start),
			Reason:     reason,
		}
	}
	finish := func(reason StopReason, err error) (Status, error) {
		st := status(reason)
		r.logger.Info("run finished", "reason", reason, "generation", st.Generation, "alive", st.Alive,
			"elapsed", st.Elapsed.Round(time.Millisecond))
		if report != nil {
			report(st)
		}
		return st, err
	}

	r.logger.Debug("run started", "interval", r.opts.Interval, "max", r.opts.MaxGenerations)
	for {
		if r.pop.AliveCount() == 0 {
			return finish(StopExtinct, nil)
		}
		if r.opts.MaxGenerations > 0 && r.pop.Generation() >= r.opts.MaxGenerations {
			return finish(StopLimit, nil)
		}
		if err := ctx.Err(); err != nil {
			return finish(StopCancelled, err)
		}
		if pacer != nil {
			if err := wait(ctx, pacer); err != nil {
				return finish(StopCancelled, err)
			}
		}

		r.sim.Step()

		gen := r.pop.Generation()
		if r.opts.ReportEvery > 0 && gen%r.opts.ReportEvery == 0 {
			st := status(StopNone)
			r.logger.Debug("generation", "n", gen, "alive", st.Alive)
			if report != nil {
				report(st)
			}
		}
	}
}

func wait(ctx context.Context, pacer *core.FixedStep) error {
	for !pacer.ShouldStep() {
		d := pacer.Until()
		if d < time.Millisecond {
			d = time.Millisecond
		}
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}
