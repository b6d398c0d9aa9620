package core

// Topology describes a bounded rectangular grid stored in row-major order.
// Unlike a toroidal grid, positions on the border have fewer neighbours.
type Topology struct {
	W, H int
}

// NewTopology returns a topology for a w*h grid. Non-positive dimensions
// produce an empty topology.
func NewTopology(w, h int) Topology {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Topology{W: w, H: h}
}

// Len returns the number of grid positions.
func (t Topology) Len() int { return t.W * t.H }

// Index returns the linear slice index for coordinates (x, y).
func (t Topology) Index(x, y int) int { return y*t.W + x }

// Coord converts a linear index back to coordinates.
func (t Topology) Coord(idx int) (int, int) { return idx % t.W, idx / t.W }

// Contains reports whether (x, y) lies inside the grid.
func (t Topology) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Clamp moves (x, y) to the nearest position inside the grid.
func (t Topology) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.H {
		y = t.H - 1
	}
	return x, y
}

// mooreOffsets lists neighbour offsets in N, NE, NW, S, SE, SW, E, W order.
var mooreOffsets = [8][2]int{
	{0, -1}, {1, -1}, {-1, -1},
	{0, 1}, {1, 1}, {-1, 1},
	{1, 0}, {-1, 0},
}

// MooreNeighbors returns the indices of the up to eight positions adjacent to
// (x, y). No wrapping is applied: corners get 3, edges 5, interior cells 8.
func (t Topology) MooreNeighbors(x, y int) []int {
	out := make([]int, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if !t.Contains(nx, ny) {
			continue
		}
		out = append(out, t.Index(nx, ny))
	}
	return out
}
