package lifespan

import "lifespan-ca/internal/core"

// Seed stamps a colony around c. The cell is born, then every neighbour is
// born and, while depth > 1, seeded again with depth-1. Overlapping stamps
// draw new lifespans and overwrite earlier ones.
func (g *Grid) Seed(c *Cell, depth int) {
	c.Born(g.lifespans)
	if depth < 1 {
		return
	}
	for _, n := range c.neighbors {
		nc := &g.cells[n]
		nc.Born(g.lifespans)
		if depth > 1 {
			g.Seed(nc, depth-1)
		}
	}
}

// SeedDepth1 births c and its direct neighbours.
func (g *Grid) SeedDepth1(c *Cell) { g.Seed(c, 1) }

// SeedDepth2 births c, its neighbours and their neighbours.
func (g *Grid) SeedDepth2(c *Cell) { g.Seed(c, 2) }

// SeedDepth3 births everything within three steps of c.
func (g *Grid) SeedDepth3(c *Cell) { g.Seed(c, 3) }

// Viewport maps host pixel coordinates to grid cells.
type Viewport struct {
	ScreenWidth  int
	ScreenHeight int
	// CellPixelSize is the side of one cell on screen. When zero it is derived
	// from the screen size divided by the grid size.
	CellPixelSize int
}

func (v Viewport) cellSize(s core.Size) (int, int) {
	if v.CellPixelSize > 0 {
		return v.CellPixelSize, v.CellPixelSize
	}
	cw, ch := 1, 1
	if s.W > 0 && v.ScreenWidth >= s.W {
		cw = v.ScreenWidth / s.W
	}
	if s.H > 0 && v.ScreenHeight >= s.H {
		ch = v.ScreenHeight / s.H
	}
	return cw, ch
}

// ScreenToGrid converts pixel coordinates to grid coordinates. Pointer input
// is imprecise, so out-of-range positions are clamped to the nearest cell.
func (g *Grid) ScreenToGrid(px, py int, v Viewport) (int, int) {
	cw, ch := v.cellSize(g.Size())
	gx, gy := px/cw, py/ch
	if px < 0 {
		gx = 0
	}
	if py < 0 {
		gy = 0
	}
	return g.topo.Clamp(gx, gy)
}

// CellFromScreenCoordinate returns the cell under the pixel (px, py).
func (g *Grid) CellFromScreenCoordinate(px, py int, v Viewport) *Cell {
	x, y := g.ScreenToGrid(px, py, v)
	return &g.cells[g.topo.Index(x, y)]
}
