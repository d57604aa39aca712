package model

import (
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is returned for construction inputs the engine cannot represent
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Engine owns the grid and advances it one generation at a time
type Engine struct {
	grid       *Grid
	generation int
	workers    int
}

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithWorkers sets how many row bands are computed concurrently per generation.
// Zero or less means runtime.NumCPU().
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates a height x width engine seeded with initialPopulation random live cells.
// Coordinates are drawn with replacement, so duplicate picks leave fewer live cells.
func NewEngine(height, width, initialPopulation int, rng *rand.Rand, opts ...EngineOption) (*Engine, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewEngine] dimensions must be positive, got %dx%d", height, width)
	}
	if initialPopulation < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewEngine] initial population must not be negative, got %d", initialPopulation)
	}
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "[NewEngine] random source is nil")
	}

	grid := NewGrid(width, height)
	for range initialPopulation {
		y := rng.IntN(height)
		x := rng.IntN(width)
		grid.Set(x, y, true)
	}

	return newEngine(grid, opts), nil
}

// NewEngineFromGrid creates an engine that starts from a copy of grid
func NewEngineFromGrid(grid *Grid, opts ...EngineOption) (*Engine, error) {
	if grid == nil || grid.width <= 0 || grid.height <= 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "[NewEngineFromGrid] grid must be non-empty")
	}
	return newEngine(grid.Clone(), opts), nil
}

func newEngine(grid *Grid, opts []EngineOption) *Engine {
	e := &Engine{grid: grid}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}
	return e
}

// Grid returns the current generation. Callers must treat it as read-only.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Generation returns how many times Update has run
func (e *Engine) Generation() int {
	return e.generation
}

// Height returns the number of rows
func (e *Engine) Height() int {
	return e.grid.height
}

// Width returns the number of columns
func (e *Engine) Width() int {
	return e.grid.width
}

// Update advances the grid by one generation.
// The next state is computed from the unchanged current grid into a fresh grid, then swapped in.
func (e *Engine) Update() {
	var (
		cur           = e.grid
		next          = NewGrid(cur.width, cur.height)
		eg            errgroup.Group
		numWorkers    = min(e.workers, cur.height)
		rowsPerWorker = (cur.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, cur.height)
		)
		if startRow >= cur.height {
			break
		}

		eg.Go(func() error {
			cur.nextRows(next, startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait only joins them
	_ = eg.Wait()

	e.grid = next
	e.generation++
}
