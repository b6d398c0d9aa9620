package lifespan

import "testing"

// sequenceLifespan returns the queued values in order and then repeats the
// last one.
type sequenceLifespan struct {
	values []int
	calls  int
}

func fixed(v int) *sequenceLifespan { return &sequenceLifespan{values: []int{v}} }

func (s *sequenceLifespan) Next() int {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i]
}

func defaultRules(mode DecayMode) Rules {
	return Rules{MinParentsToBorn: 2, MinCycleToLiveToReproduce: 2, Decay: mode}
}

func mustGrid(t *testing.T, w, h int, mode DecayMode, src LifespanSource) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, defaultRules(mode), src)
	if err != nil {
		t.Fatalf("NewGrid(%d,%d): %v", w, h, err)
	}
	return g
}

func mustCell(t *testing.T, g *Grid, x, y int) *Cell {
	t.Helper()
	c, err := g.CellAt(x, y)
	if err != nil {
		t.Fatalf("CellAt(%d,%d): %v", x, y, err)
	}
	return c
}

func setLife(t *testing.T, g *Grid, x, y, life int) {
	t.Helper()
	mustCell(t, g, x, y).remaining = life
}

var bothModes = []DecayMode{DecayDeferred, DecayInEvaluate}
