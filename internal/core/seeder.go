package core

import "image/color"

// ScreenSeeder is implemented by sims that accept colonies stamped from
// pointer input given in screen pixels.
type ScreenSeeder interface {
	SeedAtScreen(px, py int)
}

// Paletted is implemented by sims whose cell values index a colour palette.
type Paletted interface {
	Palette() []color.RGBA
}

// NeighborProvider exposes the neighbour indices of a cell for debug overlays.
type NeighborProvider interface {
	NeighborsAt(x, y int) []int
}
