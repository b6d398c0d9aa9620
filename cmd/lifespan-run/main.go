package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/integrii/flaggy"

	"lifespan-ca/internal/app"
	"lifespan-ca/internal/core"
	"lifespan-ca/internal/runner"
	_ "lifespan-ca/internal/sims/lifespan"
)

type envOptions struct {
	sim      string
	seed     int64
	size     int
	noColor  bool
	logLevel string
	sets     []string
}

func main() {
	eo, ro := initOptions()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "lifespan-run"})
	if lvl, err := log.ParseLevel(eo.logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cfg := map[string]string{"seed": strconv.FormatInt(eo.seed, 10)}
	if eo.size > 0 {
		cfg["size"] = strconv.Itoa(eo.size)
	}
	overrides := app.Overrides{}
	for _, s := range eo.sets {
		if err := overrides.Set(s); err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
	}
	for k, v := range overrides {
		cfg[k] = v
	}

	sim, err := core.New(eo.sim, cfg)
	if err != nil {
		logger.Fatal("create simulation", "err", err, "available", core.Names())
	}
	sim.Reset(eo.seed)

	r, err := runner.New(sim, ro, logger)
	if err != nil {
		logger.Fatal("create runner", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep := runner.NewReporter(os.Stdout, sim.Name(), !eo.noColor)
	rep.Started(eo.seed)
	if _, err := r.Run(ctx, rep.Report); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("run", "err", err)
	}
}

func initOptions() (*envOptions, runner.Options) {
	ro := runner.DefaultOptions()
	eo := &envOptions{sim: "lifespan", seed: 1337, logLevel: "info"}

	flaggy.SetName("lifespan-run")
	flaggy.SetDescription("Runs a cellular automaton headlessly until it dies out or hits a generation limit")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.sim, "e", "sim", "Simulation to run ["+strings.Join(core.Names(), "|")+"]")
	flaggy.Int64(&eo.seed, "s", "seed", "Seed for the lifespan generator")
	flaggy.Int(&eo.size, "x", "size", "Width and height of the grid (0 keeps the default)")
	flaggy.Duration(&ro.Interval, "i", "interval", "Interval between generations, for example 100ms (0 runs flat out)")
	flaggy.Int(&ro.MaxGenerations, "m", "max", "Stop after this many generations (0 means until extinction)")
	flaggy.Int(&ro.ReportEvery, "r", "every", "Print a status line every N generations")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable coloured output")
	flaggy.String(&eo.logLevel, "l", "log-level", "Log level (debug, info, warn, error)")
	flaggy.StringSlice(&eo.sets, "", "set", "Simulation parameter override in key=value form (repeatable)")
	flaggy.Parse()

	if _, ok := core.Sims()[eo.sim]; !ok {
		flaggy.ShowHelpAndExit("unknown sim " + eo.sim)
	}
	return eo, ro
}
