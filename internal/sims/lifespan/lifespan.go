package lifespan

import (
	"image/color"

	"lifespan-ca/internal/core"
)

// World adapts a Grid to the core.Sim contract: it owns the random lifespan
// source, lays out the initial colonies and keeps a byte display buffer of
// remaining life for renderers.
type World struct {
	name string
	cfg  Config

	grid      *Grid
	lifespans *RandomLifespan
	display   []uint8
	palette   []color.RGBA
}

// New returns a size*size world using the default rules.
func New(size int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = size
	cfg.Height = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// grid starts empty; call Reset to place the initial colonies.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lifespans := NewRandomLifespan(cfg.Seed, cfg.Params.MaxCellLifeLength)
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.Rules(), lifespans)
	if err != nil {
		return nil, err
	}
	grid.SetWorkers(cfg.Workers)
	w := &World{
		name:      "lifespan",
		cfg:       cfg,
		grid:      grid,
		lifespans: lifespans,
		display:   make([]uint8, grid.Len()),
		palette:   buildPalette(cfg.Params.MaxCellLifeLength),
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the remaining life of every cell, row-major.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying grid for direct inspection and seeding.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// AliveCount returns the number of living cells.
func (w *World) AliveCount() int { return w.grid.AliveCount() }

// Generation returns the number of generations since the last reset.
func (w *World) Generation() int { return w.grid.Generation() }

// Extinct reports whether every cell is dead.
func (w *World) Extinct() bool { return w.grid.AliveCount() == 0 }

// Reset clears the grid and places the initial colonies. A zero seed falls
// back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.lifespans.Reseed(effective)
	w.grid.Clear()
	w.placeColonies()
	w.rebuildDisplay()
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.grid.AdvanceGeneration()
	w.rebuildDisplay()
}

// SeedAt stamps a colony of the given depth centred on (x, y).
func (w *World) SeedAt(x, y, depth int) error {
	c, err := w.grid.CellAt(x, y)
	if err != nil {
		return err
	}
	w.grid.Seed(c, depth)
	w.rebuildDisplay()
	return nil
}

// SeedAtScreen stamps a depth-1 colony under the pixel (px, py) of the
// configured viewport.
func (w *World) SeedAtScreen(px, py int) {
	w.SeedAtScreenIn(px, py, w.cfg.Viewport)
}

// SeedAtScreenIn stamps a depth-1 colony under (px, py) of the given viewport.
func (w *World) SeedAtScreenIn(px, py int, v Viewport) {
	w.grid.SeedDepth1(w.grid.CellFromScreenCoordinate(px, py, v))
	w.rebuildDisplay()
}

func (w *World) placeColonies() {
	p := w.cfg.Params
	total := w.grid.Len()
	for i := 0; i < p.ColonyCount; i++ {
		idx := (p.ColonyStart + i*p.ColonyStride) % total
		w.grid.Seed(&w.grid.cells[idx], p.ColonyDepth)
	}
}

func init() {
	core.Register("lifespan", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("lifespan-legacy", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Decay = DecayInEvaluate
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		w.name = "lifespan-legacy"
		return w, nil
	})
}

// NeighborsAt returns the neighbour indices of the cell at (x, y), or nil
// when the position is outside the grid.
func (w *World) NeighborsAt(x, y int) []int {
	c, err := w.grid.CellAt(x, y)
	if err != nil {
		return nil
	}
	return c.Neighbors()
}
