//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"skillhud/app"
	"skillhud/hal"
	"skillhud/internal/buildinfo"
	"skillhud/internal/config"
	"skillhud/internal/ledger"
	"skillhud/internal/logx"
)

type options struct {
	configPath string
	headless   hal.HeadlessConfig
	window     hal.WindowConfig
	demo       bool
	seed       uint
	day        int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML or JSON config file (reloaded on change).")
	flag.BoolVar(&opts.headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&opts.headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&opts.headless.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&opts.headless.Simulated, "simulated", false, "Headless frames on a fixed clock, as fast as possible (needs -ticks).")
	flag.IntVar(&opts.window.Width, "width", hal.DefaultWidth, "Framebuffer width.")
	flag.IntVar(&opts.window.Height, "height", hal.DefaultHeight, "Framebuffer height.")
	flag.IntVar(&opts.window.Zoom, "zoom", 2, "Window zoom factor.")
	flag.BoolVar(&opts.demo, "demo", true, "Generate demo experience gains.")
	flag.UintVar(&opts.seed, "seed", 1, "Demo random seed.")
	flag.IntVar(&opts.day, "day", 1, "In-game day at startup.")
	flag.Parse()

	if err := run(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	mgr := config.NewManager(opts.configPath)
	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logx.New(cfg.LogOptions())
	mgr.SetLogger(log)
	log.Info("skillhud starting",
		logx.String("build", buildinfo.Short()),
		logx.String("config", opts.configPath),
		logx.Bool("headless", opts.headless.Enabled),
	)
	for _, w := range cfg.Warnings() {
		log.Warn(w, logx.String("path", opts.configPath))
	}

	led, err := ledger.Open(cfg.LedgerOptions(), log)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer led.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := mgr.Subscribe(1)
	defer mgr.Unsubscribe(updates)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return mgr.Watch(gctx) })

	newApp := func(h hal.HAL) func() error {
		return app.New(gctx, h, app.Config{
			Settings:  cfg,
			Updates:   updates,
			Announcer: led,
			Demo:      opts.demo,
			DemoSeed:  uint32(opts.seed),
			Day:       opts.day,
			Log:       log,
		}).Step
	}

	// The window loop must own the main goroutine.
	var runErr error
	if opts.headless.Enabled {
		opts.headless.Width = opts.window.Width
		opts.headless.Height = opts.window.Height
		runErr = hal.RunHeadless(gctx, newApp, opts.headless)
	} else {
		opts.window.Title = "skillhud " + buildinfo.Short()
		runErr = hal.RunWindow(newApp, opts.window)
	}
	cancel()

	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	log.Info("skillhud stopped")
	return runErr
}
