package runner

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"lifespan-ca/internal/core"
	"lifespan-ca/internal/sims/lifespan"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

func newWorld(t *testing.T, mutate func(*lifespan.Config)) *lifespan.World {
	t.Helper()
	cfg := lifespan.DefaultConfig()
	cfg.Width = 30
	cfg.Height = 30
	cfg.Workers = 1
	cfg.Params.ColonyCount = 1
	cfg.Params.ColonyStart = 15*30 + 15
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := lifespan.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	w.Reset(0)
	return w
}

func TestRunStopsOnExtinction(t *testing.T) {
	w := newWorld(t, func(c *lifespan.Config) { c.Params.MinParentsToBorn = 8 })
	r, err := New(w, Options{ReportEvery: 1}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var reports []Status
	st, err := r.Run(context.Background(), func(s Status) { reports = append(reports, s) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Reason != StopExtinct || st.Alive != 0 {
		t.Fatalf("final status %+v", st)
	}
	if st.Generation > 10 {
		t.Fatalf("cells with lifespan <= 10 survived %d generations", st.Generation)
	}
	if len(reports) != st.Generation+1 || !reports[len(reports)-1].Done() {
		t.Fatalf("expected one report per generation plus a final one, got %d", len(reports))
	}
}

func TestRunStopsAtLimit(t *testing.T) {
	w := newWorld(t, nil)
	r, err := New(w, Options{MaxGenerations: 3}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Reason == StopLimit && st.Generation != 3 {
		t.Fatalf("limit reached at generation %d", st.Generation)
	}
	if st.Generation > 3 {
		t.Fatalf("ran past the limit: %+v", st)
	}
}

func TestRunCancelled(t *testing.T) {
	w := newWorld(t, nil)
	r, err := New(w, Options{Interval: time.Hour}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	st, err := r.Run(ctx, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if st.Reason != StopCancelled {
		t.Fatalf("reason = %q", st.Reason)
	}
	if st.Generation > 1 {
		t.Fatalf("an hourly pacer should allow at most one generation, got %d", st.Generation)
	}
}

type plainSim struct{}

func (plainSim) Name() string    { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (plainSim) Reset(int64)     {}
func (plainSim) Step()           {}
func (plainSim) Cells() []uint8  { return []uint8{0} }

func TestNewRequiresPopulation(t *testing.T) {
	if _, err := New(plainSim{}, DefaultOptions(), quietLogger()); !errors.Is(err, ErrNoPopulation) {
		t.Fatalf("err = %v", err)
	}
}
