package main

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/der-antikeks/nightcity/camera"
	"github.com/der-antikeks/nightcity/city"
	"github.com/der-antikeks/nightcity/config"
	"github.com/der-antikeks/nightcity/engine"
	"github.com/der-antikeks/nightcity/logging"
	"github.com/der-antikeks/nightcity/stats"
	"github.com/der-antikeks/nightcity/system"
)

func init() {
	// glfw and gl calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".")
	if err != nil {
		log := logging.New(os.Stdout, "info")
		log.Error().Err(err).Msg("failed to load config")
		return -1
	}

	log := logging.New(os.Stdout, cfg.LogLevel)

	rng, seed := city.NewRand(cfg.Seed)
	scene := city.Generate(cfg.City, rng)
	log.Info().
		Int64("seed", seed).
		Int("buildings", len(scene.Buildings)).
		Int("vehicles", len(scene.Vehicles)).
		Int("billboards", len(scene.Billboards)).
		Msg("city generated")

	input := camera.NewInput()
	ctx, err := engine.NewContext(engine.WindowOptions{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, input, logging.Component(log, "context"))
	if err != nil {
		log.Error().Err(err).Msg("failed to create window")
		return -1
	}
	defer ctx.Cleanup()

	renderer, err := engine.NewRenderer(logging.Component(log, "renderer"), engine.DefaultLight)
	if err != nil {
		log.Error().Err(err).Msg("failed to create renderer")
		return -1
	}
	defer renderer.Dispose()

	shutdownMetrics, err := stats.Setup(cfg.Stats.Export, os.Stdout, cfg.Stats.Interval)
	if err != nil {
		log.Error().Err(err).Msg("failed to set up metrics")
		return -1
	}
	defer shutdownMetrics(context.Background())

	frames, err := stats.New(logging.Component(log, "stats"), cfg.Stats.Interval, stats.Meter(), 60.0)
	if err != nil {
		log.Error().Err(err).Msg("failed to create frame stats")
		return -1
	}

	e := system.NewEngine()
	cam := camera.NewFlyCamera()

	for _, s := range []system.System{
		NewControlSystem(cam, input),
		NewAnimationSystem(scene),
		NewRenderSystem(ctx, renderer, cam, scene),
		system.UpdateSystem("stats", system.PriorityAfterRender, frames.Update),
		NewPresentSystem(ctx),
	} {
		if err := e.AddSystem(s); err != nil {
			log.Error().Err(err).Msg("failed to add system")
			return -1
		}
	}

	// main loop
	var (
		lastTime    = time.Now()
		currentTime time.Time
		delta       time.Duration
	)

	for e.IsRunning() {
		currentTime = time.Now()
		delta = currentTime.Sub(lastTime)
		lastTime = currentTime

		if err := e.Update(delta); err != nil {
			log.Error().Err(err).Msg("frame failed")
			return -1
		}
	}

	log.Info().
		Int64("frames", frames.Frames()).
		Float64("fps", frames.FPS()).
		Msg("shutting down")

	return 0
}
