package lifespan

import "image/color"

// Palette maps remaining life to a grey level: black when dead, brighter the
// longer the cell has left. Values above the max share the brightest entry.
func (w *World) Palette() []color.RGBA {
	return w.palette
}

func buildPalette(maxLife int) []color.RGBA {
	if maxLife < 1 {
		maxLife = 1
	}
	palette := make([]color.RGBA, maxLife+1)
	for life := range palette {
		v := uint8(life * 255 / maxLife)
		palette[life] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}

func (w *World) rebuildDisplay() {
	for i := range w.grid.cells {
		life := w.grid.cells[i].remaining
		if life > MaxLifespanLimit {
			life = MaxLifespanLimit
		}
		w.display[i] = uint8(life)
	}
}
