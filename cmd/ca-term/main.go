package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/integrii/flaggy"

	"lifespan-ca/internal/app"
	"lifespan-ca/internal/sims/lifespan"
	"lifespan-ca/internal/term"
)

func main() {
	var (
		seed     int64 = 1337
		tps            = 10
		logLevel       = "warn"
		logFile  string
		sets     []string
	)
	flaggy.SetName("ca-term")
	flaggy.SetDescription("Variable-lifespan cellular automaton in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int64(&seed, "s", "seed", "Seed for the lifespan generator")
	flaggy.Int(&tps, "t", "tps", "Generations per second")
	flaggy.String(&logLevel, "l", "log-level", "Log level (debug, info, warn, error)")
	flaggy.String(&logFile, "", "log-file", "Write logs to this file while the terminal UI runs (discarded otherwise)")
	flaggy.StringSlice(&sets, "", "set", "Simulation parameter override in key=value form (repeatable)")
	flaggy.Parse()

	// stderr is only safe before the screen is initialised and after Fini.
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ca-term"})
	if lvl, err := log.ParseLevel(logLevel); err == nil {
		logger.SetLevel(lvl)
	}
	sessionLogger, closeLog, err := term.SessionLogger(logFile, logger.GetLevel())
	if err != nil {
		logger.Fatal("open log file", "path", logFile, "err", err)
	}
	defer closeLog.Close()

	overrides := app.Overrides{}
	for _, s := range sets {
		if err := overrides.Set(s); err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", "err", err)
	}
	screen.EnableMouse()

	cols, rows := screen.Size()
	cfg := map[string]string{
		"w":        strconv.Itoa(cols),
		"h":        strconv.Itoa(max(rows-1, 1)),
		"seed":     strconv.FormatInt(seed, 10),
		"screen_w": strconv.Itoa(cols),
		"screen_h": strconv.Itoa(max(rows-1, 1)),
		"cell_px":  "1",
	}
	for k, v := range overrides {
		cfg[k] = v
	}

	world, err := lifespan.NewWithConfig(lifespan.FromMap(cfg))
	if err != nil {
		screen.Fini()
		logger.Fatal("create world", "err", err)
	}
	world.Reset(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := term.New(screen, world, tps, seed, sessionLogger)
	runErr := host.Run(ctx)
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		logger.Fatal("run", "err", runErr)
	}
	logger.Info("finished", "generation", world.Generation(), "alive", world.AliveCount())
}
