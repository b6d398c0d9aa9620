package lifespan

import (
	"fmt"
	"runtime"
	"strconv"
)

// MaxLifespanLimit bounds MaxCellLifeLength so remaining life fits the byte
// display buffer.
const MaxLifespanLimit = 255

// MaxColonyDepth bounds the initial colony radius. Seeding draws roughly 8^depth
// lifespans per colony.
const MaxColonyDepth = 4

// Params holds the automaton rules and the initial colony layout.
type Params struct {
	MaxCellLifeLength         int
	MinParentsToBorn          int
	MinCycleToLiveToReproduce int

	ColonyCount  int
	ColonyDepth  int
	ColonyStart  int
	ColonyStride int
}

// Config controls the lifespan simulation.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Workers int
	Decay   DecayMode

	Params   Params
	Viewport Viewport
}

// DefaultConfig returns the standard configuration: a 160x160 grid on an
// 800x800 screen with ten depth-3 colonies.
func DefaultConfig() Config {
	return Config{
		Width:   160,
		Height:  160,
		Seed:    1337,
		Workers: runtime.NumCPU(),
		Decay:   DecayDeferred,
		Params: Params{
			MaxCellLifeLength:         10,
			MinParentsToBorn:          2,
			MinCycleToLiveToReproduce: 2,
			ColonyCount:               10,
			ColonyDepth:               3,
			ColonyStart:               9000,
			ColonyStride:              100,
		},
		Viewport: Viewport{ScreenWidth: 800, ScreenHeight: 800, CellPixelSize: 5},
	}
}

// Rules returns the evaluation rules described by the config.
func (c Config) Rules() Rules {
	return Rules{
		MinParentsToBorn:          c.Params.MinParentsToBorn,
		MinCycleToLiveToReproduce: c.Params.MinCycleToLiveToReproduce,
		Decay:                     c.Decay,
	}
}

// Validate reports configuration values the engine cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d: %w", c.Width, c.Height, ErrInvalidArgument)
	}
	if c.Params.MaxCellLifeLength < MinLifespan || c.Params.MaxCellLifeLength > MaxLifespanLimit {
		return fmt.Errorf("max cell life %d not in [%d,%d]: %w",
			c.Params.MaxCellLifeLength, MinLifespan, MaxLifespanLimit, ErrInvalidArgument)
	}
	if c.Params.MinParentsToBorn < 0 || c.Params.MinCycleToLiveToReproduce < 0 {
		return fmt.Errorf("negative reproduction threshold: %w", ErrInvalidArgument)
	}
	if c.Params.ColonyDepth < 0 || c.Params.ColonyDepth > MaxColonyDepth {
		return fmt.Errorf("colony depth %d not in [0,%d]: %w", c.Params.ColonyDepth, MaxColonyDepth, ErrInvalidArgument)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["decay"]; ok {
		if mode, ok := ParseDecayMode(v); ok {
			c.Decay = mode
		}
	}
	if v, ok := cfg["max_life"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinLifespan && parsed <= MaxLifespanLimit {
			c.Params.MaxCellLifeLength = parsed
		}
	}
	if v, ok := cfg["min_parents"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinParentsToBorn = parsed
		}
	}
	if v, ok := cfg["min_cycle"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinCycleToLiveToReproduce = parsed
		}
	}
	if v, ok := cfg["colonies"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ColonyCount = parsed
		}
	}
	if v, ok := cfg["colony_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxColonyDepth {
			c.Params.ColonyDepth = parsed
		}
	}
	if v, ok := cfg["colony_start"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ColonyStart = parsed
		}
	}
	if v, ok := cfg["colony_stride"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ColonyStride = parsed
		}
	}
	if v, ok := cfg["screen_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Viewport.ScreenWidth = parsed
		}
	}
	if v, ok := cfg["screen_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Viewport.ScreenHeight = parsed
		}
	}
	if v, ok := cfg["cell_px"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Viewport.CellPixelSize = parsed
		}
	}
	return c
}
