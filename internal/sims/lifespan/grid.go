package lifespan

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifespan-ca/internal/core"
)

// minRowsPerWorker keeps parallel bands from degenerating into one row each.
const minRowsPerWorker = 8

// Grid owns every cell of a fixed-size bounded grid and advances them one
// generation at a time. It is not safe for concurrent use: seeding and
// AdvanceGeneration must not overlap.
type Grid struct {
	topo       core.Topology
	cells      []Cell
	rules      Rules
	lifespans  LifespanSource
	workers    int
	generation int
}

// NewGrid builds a w*h grid of dead cells with adjacency precomputed.
func NewGrid(w, h int, rules Rules, src LifespanSource) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid size %dx%d: %w", w, h, ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("nil lifespan source: %w", ErrInvalidArgument)
	}
	topo := core.NewTopology(w, h)
	g := &Grid{
		topo:      topo,
		cells:     make([]Cell, topo.Len()),
		rules:     rules,
		lifespans: src,
		workers:   1,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := topo.Index(x, y)
			g.cells[idx] = Cell{idx: idx, neighbors: topo.MooreNeighbors(x, y)}
		}
	}
	return g, nil
}

// NewSquareGrid builds a size*size grid.
func NewSquareGrid(size int, rules Rules, src LifespanSource) (*Grid, error) {
	return NewGrid(size, size, rules, src)
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.topo.W, H: g.topo.H} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Rules returns the active evaluation rules.
func (g *Grid) Rules() Rules { return g.rules }

// SetRules replaces the evaluation rules. Call only between generations.
func (g *Grid) SetRules(r Rules) { g.rules = r }

// SetWorkers sets how many goroutines share the evaluate phase. Values below
// one are treated as one. Parallelism only applies under DecayDeferred.
func (g *Grid) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	g.workers = n
}

// Generation returns the number of generations advanced so far.
func (g *Grid) Generation() int { return g.generation }

// CellAt returns the cell at (x, y).
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.topo.Contains(x, y) {
		return nil, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", x, y, g.topo.W, g.topo.H, ErrIndexOutOfRange)
	}
	return &g.cells[g.topo.Index(x, y)], nil
}

// CellByIndex returns the cell at a row-major index.
func (g *Grid) CellByIndex(idx int) (*Cell, error) {
	if idx < 0 || idx >= len(g.cells) {
		return nil, fmt.Errorf("cell index %d outside [0,%d): %w", idx, len(g.cells), ErrIndexOutOfRange)
	}
	return &g.cells[idx], nil
}

// RemainingAt returns the remaining life at idx.
func (g *Grid) RemainingAt(idx int) int { return g.cells[idx].remaining }

// AliveCount returns the number of cells with life left.
func (g *Grid) AliveCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].remaining > 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].remaining = 0
		g.cells[i].pending = None
	}
	g.generation = 0
}

// AdvanceGeneration evaluates every cell against the previous generation and
// then applies the staged transitions. It panics if a transition is already
// pending when the generation starts.
func (g *Grid) AdvanceGeneration() {
	for i := range g.cells {
		if g.cells[i].pending != None {
			x, y := g.topo.Coord(i)
			panic(fmt.Errorf("cell (%d,%d) has pending %s at generation %d: %w",
				x, y, g.cells[i].pending, g.generation, ErrInvariant))
		}
	}

	if g.rules.Decay == DecayDeferred && g.workers > 1 {
		g.evaluateParallel()
	} else {
		g.evaluateRange(0, len(g.cells))
	}

	for i := range g.cells {
		g.cells[i].Apply(g.lifespans)
	}
	g.generation++
}

func (g *Grid) evaluateRange(from, to int) {
	for i := from; i < to; i++ {
		g.cells[i].Evaluate(g, g.rules)
	}
}

// evaluateParallel splits the grid into row bands. Each goroutine only writes
// the pending field of its own cells and reads remaining life, which no one
// writes during this phase.
func (g *Grid) evaluateParallel() {
	rows := (g.topo.H + g.workers - 1) / g.workers
	if rows < minRowsPerWorker {
		rows = minRowsPerWorker
	}
	var eg errgroup.Group
	for y := 0; y < g.topo.H; y += rows {
		from := y * g.topo.W
		to := min(y+rows, g.topo.H) * g.topo.W
		eg.Go(func() error {
			g.evaluateRange(from, to)
			return nil
		})
	}
	_ = eg.Wait()
}
