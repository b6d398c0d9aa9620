// Package term runs a lifespan world inside a terminal using tcell. Each grid
// cell occupies one terminal column; the bottom row carries a status line.
package term

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"lifespan-ca/internal/core"
	"lifespan-ca/internal/sims/lifespan"
	"lifespan-ca/internal/ui"
)

// Host owns the terminal screen and the world it displays.
type Host struct {
	screen tcell.Screen
	world  *lifespan.World
	logger *log.Logger
	pacer  *core.FixedStep

	seed     int64
	paused   bool
	tickOnce bool

	mouseDown      bool
	mouseX, mouseY int

	controls []core.ParameterControl
	selected int
}

// New builds a host for world on an initialised screen, stepping tps
// generations per second.
func New(screen tcell.Screen, world *lifespan.World, tps int, seed int64, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		screen:   screen,
		world:    world,
		logger:   logger,
		pacer:    core.NewFixedStep(tps),
		seed:     seed,
		controls: world.ParameterControls(),
	}
}

// Viewport maps terminal columns and rows one-to-one onto grid cells.
func (h *Host) Viewport() lifespan.Viewport {
	size := h.world.Size()
	return lifespan.Viewport{ScreenWidth: size.W, ScreenHeight: size.H, CellPixelSize: 1}
}

// Paused reports whether automatic stepping is suspended.
func (h *Host) Paused() bool { return h.paused }

// HandleEvent applies one input event and reports whether the host should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		h.paused = false
		return false
	case tcell.KeyTab:
		if len(h.controls) > 0 {
			h.selected = (h.selected + 1) % len(h.controls)
		}
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.tickOnce = true
	case 'r':
		h.world.Reset(h.seed)
	case 's':
		h.seed = time.Now().UnixNano()
		h.world.Reset(h.seed)
		h.logger.Info("reseeded", "seed", h.seed)
	case '+', '=':
		h.adjustSelected(1)
	case '-', '_':
		h.adjustSelected(-1)
	}
	return false
}

func (h *Host) adjustSelected(dir int) {
	if len(h.controls) == 0 {
		return
	}
	ctrl := h.controls[h.selected]
	p, ok := h.world.Parameters().Lookup(ctrl.Key)
	if !ok {
		return
	}
	cur, err := strconv.Atoi(p.Value)
	if err != nil {
		return
	}
	if h.world.SetIntParameter(ctrl.Key, cur+dir*ctrl.Step) {
		h.logger.Debug("parameter changed", "key", ctrl.Key, "value", ctrl.Clamp(cur+dir*ctrl.Step))
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		h.mouseDown = false
		return
	}
	h.mouseX, h.mouseY = x, y
	if !h.mouseDown {
		h.world.SeedAtScreenIn(x, y, h.Viewport())
	}
	h.mouseDown = true
}

// Update advances the world when a tick is due. While the mouse button is
// held, each generation also stamps a colony under the pointer. It reports
// whether a generation was computed.
func (h *Host) Update() bool {
	if h.paused && !h.tickOnce {
		return false
	}
	if !h.tickOnce && !h.pacer.ShouldStep() {
		return false
	}
	h.tickOnce = false
	if h.mouseDown {
		h.world.SeedAtScreenIn(h.mouseX, h.mouseY, h.Viewport())
	}
	h.world.Step()
	return true
}

// Draw renders the grid and the status line.
func (h *Host) Draw() {
	h.screen.Clear()
	size := h.world.Size()
	cols, rows := h.screen.Size()
	cells := h.world.Cells()
	palette := terminalPalette(h.world.Palette())
	for y := 0; y < size.H && y < rows-1; y++ {
		for x := 0; x < size.W && x < cols; x++ {
			h.screen.SetContent(x, y, ' ', nil, cellStyle(palette, cells[y*size.W+x]))
		}
	}
	h.drawText(0, rows-1, h.statusLine(), tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	h.screen.Show()
}

func (h *Host) statusLine() string {
	line := ui.StatusLine(h.world.Generation(), h.world.AliveCount())
	if len(h.controls) > 0 {
		ctrl := h.controls[h.selected]
		if p, ok := h.world.Parameters().Lookup(ctrl.Key); ok {
			line += fmt.Sprintf("  %s=%s", ctrl.Label, p.Value)
		}
	}
	if h.paused {
		line += "  [paused]"
	}
	return line
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func terminalPalette(p []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(p))
	for i, c := range p {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

func cellStyle(palette []tcell.Color, life uint8) tcell.Style {
	idx := int(life)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return tcell.StyleDefault.Background(palette[idx])
}

// Run polls input and steps the world until the user quits, ctx is done or
// the population dies out.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, events, done)

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		case <-frame.C:
			if !h.Update() {
				continue
			}
			h.Draw()
			if h.world.Extinct() {
				h.logger.Info("population extinct", "generation", h.world.Generation())
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed. events is closed only when the screen runs dry.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
