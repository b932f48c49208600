package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/vi-fps/config"
	"github.com/lixenwraith/vi-fps/event"
	"github.com/lixenwraith/vi-fps/input"
)

var (
	configFlag = flag.String("config", "", "config file, defaults when empty")
	scriptFlag = flag.String("script", "cmd/fps-replay/walk_and_shoot.yaml", "input script")
	traceFlag  = flag.Bool("trace", false, "log every tick at debug level")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		slog.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if *traceFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	script, err := input.LoadScript(*scriptFlag)
	if err != nil {
		return err
	}
	logger.Info("replaying", "script", script.Name, "ticks", script.TotalTicks(), "tick_rate", cfg.Tick.RateHz)

	result, err := replay(&cfg, script, logger, *traceFlag)
	if err != nil {
		return err
	}

	fmt.Printf("ticks     %d\n", result.Ticks)
	fmt.Printf("position  %.3f %.3f %.3f\n", result.Position.X, result.Position.Y, result.Position.Z)
	fmt.Printf("heading   %.2f  pitch %.2f\n", result.Heading, result.Pitch)
	fmt.Printf("weapon    %s ammo %.0f\n", result.Weapon, result.Ammo)
	fmt.Printf("footsteps %d\n", result.Steps)
	for t := event.EventShot; t <= event.EventJumped; t++ {
		if n := result.Events[t]; n > 0 {
			fmt.Printf("%-17s %d\n", t, n)
		}
	}
	fmt.Printf("clips     %d\n", len(result.Clips))
	return nil
}
