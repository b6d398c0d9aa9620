package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 128, G: 128, B: 128, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	buf := make([]byte, 4*3)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{0, 0, 0, 255, 128, 128, 128, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("expected cleared buffer, got %v", buf)
	}
}

func TestHighlightRGBA(t *testing.T) {
	buf := make([]byte, 4*3)
	highlightRGBA(buf, []int{1, 7, -1}, color.RGBA{G: 255, A: 255})
	want := []byte{0, 0, 0, 0, 0, 255, 0, 255, 0, 0, 0, 0}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}
