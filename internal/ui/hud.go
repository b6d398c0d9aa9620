//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"lifespan-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 13
	infoSpacing    = 22
	rowSpacing     = 20
	buttonSize     = 14
	valueColumn    = 150
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// HUD renders the parameter panel to the right of the simulation view and
// the status line over it.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControlState
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes control values from the simulation and handles clicks on
// the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX
}

// Draw paints the panel anchored at offsetX and the status line in the top
// left corner of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	h.drawStatus(screen)
	if h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus(screen *ebiten.Image) {
	pop, ok := h.sim.(core.Population)
	if !ok {
		return
	}
	line := StatusLine(pop.Generation(), pop.AliveCount())
	text.Draw(screen, line, basicfont.Face7x13, panelPadding, headerBaseline+panelPadding, color.RGBA{R: 255, A: 255})
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:])
}

func (h *HUD) layoutControls() {
	y := panelPadding + headerBaseline + infoSpacing
	for i := range h.controls {
		top := y - buttonSize + 3
		minusX := valueColumn - buttonSize - 6
		plusX := valueColumn + 40
		h.controls[i].minusRect = image.Rect(minusX, top, minusX+buttonSize, top+buttonSize)
		h.controls[i].plusRect = image.Rect(plusX, top, plusX+buttonSize, top+buttonSize)
		y += rowSpacing
	}
}

func (h *HUD) refreshControlValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pt.In(state.minusRect):
			h.applyAdjustment(state, -1)
			return
		case pt.In(state.plusRect):
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	if target == state.value {
		return
	}
	if h.setter.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	labelColor := color.RGBA{R: 180, G: 180, B: 190, A: 255}
	buttonColor := color.RGBA{R: 60, G: 60, B: 72, A: 255}
	for _, state := range h.controls {
		baseline := state.minusRect.Min.Y + buttonSize - 3
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, labelColor)
		value := "--"
		if state.hasValue {
			value = strconv.Itoa(state.value)
		}
		text.Draw(h.panel, value, face, valueColumn, baseline, color.White)
		h.fillRect(state.minusRect, buttonColor)
		h.fillRect(state.plusRect, buttonColor)
		text.Draw(h.panel, "-", face, state.minusRect.Min.X+4, baseline, color.White)
		text.Draw(h.panel, "+", face, state.plusRect.Min.X+4, baseline, color.White)
	}
}

func (h *HUD) fillRect(r image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}
