package main

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/cluster-gol/model"
	"github.com/sheikhrachel/cluster-gol/polygons"
	"github.com/sheikhrachel/cluster-gol/render"
	"github.com/sheikhrachel/cluster-gol/utils"
)

// initializeGame sets up the engine and colorer for a life run.
// A named pattern replaces the random initial population.
func initializeGame(config utils.Config) (*model.Engine, *model.Colorer, error) {
	var (
		engine *model.Engine
		err    error
	)
	if config.Pattern != "" {
		var grid *model.Grid
		if grid, err = model.PatternGrid(config.Pattern, config.Width, config.Height); err == nil {
			engine, err = model.NewEngineFromGrid(grid, model.WithWorkers(config.Workers))
		}
	} else {
		rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))
		engine, err = model.NewEngine(config.Height, config.Width, config.InitialPopulation, rng,
			model.WithWorkers(config.Workers))
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}
	colorer := &model.Colorer{Connectivity: model.Connectivity(config.Connectivity)}
	return engine, colorer, nil
}

// displayGameInfo shows the run configuration
func displayGameInfo(config utils.Config) {
	switch config.Mode {
	case utils.ModePolygons:
		fmt.Println("Creating rotating polygons animation...")
		fmt.Printf("Frames: %d | Output: %s\n", config.Generations, config.Output)
	default:
		fmt.Println("Initializing Game of Life...")
		fmt.Printf("Grid size: %d x %d\n", config.Height, config.Width)
		if config.Pattern != "" {
			fmt.Printf("Pattern: %s\n", config.Pattern)
		} else {
			fmt.Printf("Initial population: %d | Seed: %d\n", config.InitialPopulation, config.Seed)
		}
		fmt.Printf("Generations: %d | Connectivity: %d | Output: %s\n",
			config.Generations, config.Connectivity, config.Output)
	}
	if config.Output == utils.OutputTerm {
		fmt.Println("Press Ctrl+C to exit gracefully")
	}
	fmt.Println()
}

// runLife renders the cluster-colored simulation to the configured output
func runLife(ctx context.Context, config utils.Config) error {
	engine, colorer, err := initializeGame(config)
	if err != nil {
		return err
	}
	fmt.Printf("Initial living cells: %d\n", engine.Grid().CountLivingCells())

	if config.Output == utils.OutputTerm {
		return runTerminal(ctx, config, engine, colorer, &model.TerminalRenderer{})
	}

	stats := utils.NewStats()
	lastFrame := time.Now()
	source := render.LifeSource(engine, colorer, func(generation int, grid *model.Grid, clusters *model.Clusters) {
		stats.Update(generation, grid.CountLivingCells(), clusters.Count(), clusters.Largest(), time.Since(lastFrame))
		lastFrame = time.Now()
	})

	fmt.Println("Creating animation...")
	animator := &render.Animator{Scale: config.Scale, FPS: config.FPS, Caption: config.Caption}
	frames, err := animator.Collect(ctx, source, config.Generations)
	if err != nil {
		return err
	}
	if err = writeAnimation(ctx, config, animator, frames); err != nil {
		return err
	}
	displayFinalStats(stats)
	return nil
}

// runTerminal animates the simulation through renderer until the generation limit or Ctrl+C
func runTerminal(ctx context.Context, config utils.Config, engine *model.Engine, colorer *model.Colorer,
	renderer *model.TerminalRenderer) error {
	var (
		pool          = model.NewColorBufferPool()
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(max(config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

	for engine.Generation() < config.Generations {
		frameStart := time.Now()
		grid := engine.Grid()

		buf := pool.Get(grid.GetWidth(), grid.GetHeight())
		clusters := colorer.ColorsInto(grid, buf)
		livingCells := grid.CountLivingCells()
		stats.Update(engine.Generation(), livingCells, clusters.Count(), clusters.Largest(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		renderer.Clear()
		displayGameStatus(engine.Generation(), livingCells, clusters, grid, stats)
		renderer.Display(buf)
		model.BufferToPool(buf, pool)

		engine.Update()

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			displayFinalStats(stats)
			return nil
		case <-ticker.C:
		}
	}

	fmt.Printf("\n🏁 Reached generation limit (%d)\n", config.Generations)
	displayFinalStats(stats)
	return nil
}

// runPolygons renders the rotating polygons animation
func runPolygons(ctx context.Context, config utils.Config) error {
	generator := polygons.NewGenerator(polygons.DefaultParams())
	animator := &render.Animator{Scale: config.Scale, FPS: config.FPS, Caption: config.Caption}
	frames, err := animator.Collect(ctx, generator.Frame, config.Generations)
	if err != nil {
		return err
	}
	return writeAnimation(ctx, config, animator, frames)
}

// writeAnimation saves frames as a GIF or a PNG sequence
func writeAnimation(ctx context.Context, config utils.Config, animator *render.Animator, frames []*image.RGBA) error {
	switch config.Output {
	case utils.OutputPNG:
		if err := animator.SaveFrames(config.FrameDir, "frame", frames); err != nil {
			return err
		}
		fmt.Printf("Saved %d frames to %s\n", len(frames), config.FrameDir)
	default:
		if err := animator.SaveGIF(ctx, config.OutFile, frames); err != nil {
			return err
		}
		fmt.Printf("Animation saved as %s\n", config.OutFile)
	}
	return nil
}

// displayGameStatus shows the current generation's figures
func displayGameStatus(generation, livingCells int, clusters *model.Clusters, grid *model.Grid, stats *utils.Stats) {
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Clusters: %d | Largest: %d\n",
		generation, livingCells, density, clusters.Count(), clusters.Largest())
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// displayFinalStats prints the summary of a life run
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations+1, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average population: %.1f | Peak: %d | Last: %d living in %d clusters (largest %d)\n",
		stats.AveragePopulation, stats.PeakPopulation, stats.ActiveCells, stats.Clusters, stats.LargestCluster)
}
