// Command pointfill fills a mesh volume with random particles and shows them
// as point sprites.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"pointfill.com/pointfill/app"
	"pointfill.com/pointfill/sampler"
)

// GL and GLFW calls must come from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "scene config file (.toml, .yaml)")
		points     = flag.Int("points", -1, "override the number of points")
		seed       = flag.Uint64("seed", 0, "override the sampling seed (0 keeps the config value)")
		workers    = flag.Int("workers", 0, "override the sampling goroutines (0 keeps the config value)")
		debug      = flag.Bool("debug", false, "debug logging")
		headless   = flag.Bool("headless", false, "sample and print a summary without opening a window")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	sampler.SetLogger(logger)

	if err := run(*configPath, *points, *seed, *workers, *headless); err != nil {
		slog.Error("pointfill failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, points int, seed uint64, workers int, headless bool) error {
	cfg := app.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = app.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if points >= 0 {
		cfg.Sampling.Points = points
	}
	if seed != 0 {
		cfg.Sampling.Seed = seed
	}
	if workers > 0 {
		cfg.Sampling.Workers = workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !headless {
		return app.Run(ctx, cfg)
	}

	scene, err := app.NewScene(ctx, cfg)
	if err != nil {
		return err
	}
	b := scene.Field.Bounds()
	fmt.Printf("mesh %s: %d triangles\n", cfg.Mesh.Kind, scene.Mesh.TriangleCount())
	fmt.Printf("points %d within %s - %s\n", scene.Field.Count(), b.Min, b.Max)
	for i := 0; i < min(5, scene.Field.Count()); i++ {
		fmt.Printf("  %s alpha %.2f\n", scene.Field.Positions[i], scene.Field.Alpha[i])
	}
	return nil
}
