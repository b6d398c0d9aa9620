package app

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides collects repeatable key=value flags that are forwarded to the
// simulation factory.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q is not key=value", value)
	}
	o[key] = val
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	LogLevel string
	Set      Overrides
}

// NewConfig returns a Config populated with sensible defaults: 5 pixels per
// cell at ten generations per second.
func NewConfig() *Config {
	return &Config{Sim: "lifespan", Scale: 5, TPS: 10, Seed: 1337, HUDWidth: 240, LogLevel: "info", Set: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.Var(c.Set, "set", "simulation parameter override in key=value form (repeatable)")
}

// FactoryConfig returns the map handed to the simulation factory. The pixel
// scale doubles as the cell size used to map pointer input to cells.
func (c *Config) FactoryConfig() map[string]string {
	cfg := map[string]string{
		"seed":    fmt.Sprint(c.Seed),
		"cell_px": fmt.Sprint(c.Scale),
	}
	for k, v := range c.Set {
		cfg[k] = v
	}
	return cfg
}
