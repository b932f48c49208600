package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-fps/audio"
	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/engine"
	"github.com/lixenwraith/vi-fps/input"
	"github.com/lixenwraith/vi-fps/system"
)

var (
	configFlag = flag.String("config", "vi-fps.yaml", "config file, defaults apply when missing")
	muteFlag   = flag.Bool("mute", false, "disable audio output")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-fps: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	// Panic Recovery: every goroutine touching the world or screen runs under the guard
	guard := newCrashGuard(screen)
	defer guard.recoverPanic("main")

	var player audio.Player = audio.Discard{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the demo runs without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
		}
		player = sm
	}

	source := input.NewTerminalSource(keys)
	setup, err := system.NewSetup(&cfg, engine.Options{
		Input:     source,
		Audio:     player,
		Presenter: screenPresenter{screen: screen},
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	world := setup.World
	camera, _ := world.Camera.(*engine.CameraState)
	events := &eventLog{}
	world.Observe(events.observe)

	world.Init()
	defer world.Shutdown()

	scheduler, updateDone := engine.NewClockScheduler(world, cfg.TickInterval(), nil)
	v := &view{screen: screen, world: world, terrain: setup.Terrain, camera: camera, log: events}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(guard.Wrap("scheduler", func() error {
		return scheduler.Run(ctx)
	}))

	// Input pump: PollEvent returns nil once the screen is finalized
	eventChan := make(chan tcell.Event, 64)
	guard.Go("input", func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	g.Go(guard.Wrap("render", func() error {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-eventChan:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
					continue
				}
				switch source.HandleEvent(ev) {
				case input.ActionQuit:
					logger.Info("quit requested", "ticks", scheduler.TickCount())
					return nil
				case input.ActionPause:
					paused := scheduler.TogglePause()
					world.RunSafe(func() { v.draw(paused) })
				}
			case <-updateDone:
				world.RunSafe(func() { v.draw(scheduler.IsPaused()) })
			}
		}
	}))

	logger.Info("running", "tick_rate", cfg.Tick.RateHz, "weapons", len(cfg.Weapons))
	return g.Wait()
}
