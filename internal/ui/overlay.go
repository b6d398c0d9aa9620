//go:build ebiten

package ui

import (
	"lifespan-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay highlights the neighbourhood of the cell under the cursor, which
// makes the bounded adjacency visible at the grid edges.
type Overlay struct {
	sim       core.Sim
	scale     int
	show      bool
	highlight []int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay with H and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	o.highlight = o.highlight[:0]
	if !o.show {
		return
	}
	provider, ok := o.sim.(core.NeighborProvider)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	o.highlight = append(o.highlight, provider.NeighborsAt(mx/o.scale, my/o.scale)...)
}

// Highlight returns the cell indices to paint over the grid.
func (o *Overlay) Highlight() []int {
	return o.highlight
}
