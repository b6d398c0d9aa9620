//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"lifespan-ca/internal/app"
	"lifespan-ca/internal/core"
	_ "lifespan-ca/internal/sims/lifespan"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ca"})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	sim, err := core.New(cfg.Sim, cfg.FactoryConfig())
	if err != nil {
		logger.Fatal("create simulation", "err", err, "available", core.Names())
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("lifespan-ca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}
