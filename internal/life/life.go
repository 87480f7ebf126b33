package life

import (
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
	"torus-life/internal/patterns"
	"torus-life/internal/render"
)

// Engine runs Conway's Game of Life, or its aged variant, on a toroidal grid
// and paints it into a magnified pixel buffer.
type Engine struct {
	cfg  Config
	grid *core.Grid
	nxt  []uint8

	pixels     []uint32
	generation int
	paused     bool
	gate       *core.TickGate
	seed       int64
}

// New returns an engine with a dead grid and a zeroed pixel buffer. It does
// not seed the grid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid life config")
	}
	if cfg.Name == "" {
		cfg.Name = "life"
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	return &Engine{
		cfg:    cfg,
		grid:   grid,
		nxt:    make([]uint8, len(grid.Cells())),
		pixels: make([]uint32, render.BufferLen(cfg.Width, cfg.Height, cfg.CellSize)),
		gate:   core.NewTickGate(cfg.TickInterval, cfg.Now),
		seed:   cfg.Seed,
	}, nil
}

// NewSeeded returns an engine populated by its configured seeding.
func NewSeeded(cfg Config) (*Engine, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := e.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return e.cfg.Name }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// CellSize returns the pixel magnification per cell.
func (e *Engine) CellSize() int { return e.cfg.CellSize }

// Pixels exposes the pixel buffer written by Render. Callers must not modify it.
func (e *Engine) Pixels() []uint32 { return e.pixels }

// Generation returns the number of updates since construction or the last
// clear.
func (e *Engine) Generation() int { return e.generation }

// LiveCells returns the number of live cells.
func (e *Engine) LiveCells() int { return e.grid.Population() }

// Seed returns the seed used by the most recent reset.
func (e *Engine) Seed() int64 { return e.seed }

// Status formats the generation and population for a title bar.
func (e *Engine) Status() string {
	return fmt.Sprintf("Gen: %d | Cells: %d", e.generation, e.LiveCells())
}

// Paused reports whether Advance is currently suspended.
func (e *Engine) Paused() bool { return e.paused }

// TogglePause flips the paused flag.
func (e *Engine) TogglePause() { e.paused = !e.paused }

// TickInterval returns the minimum time between accepted updates.
func (e *Engine) TickInterval() time.Duration { return e.gate.Interval() }

// SetTickInterval changes the minimum time between accepted updates.
func (e *Engine) SetTickInterval(d time.Duration) {
	e.gate.SetInterval(d)
	e.cfg.TickInterval = e.gate.Interval()
}

// Age returns the raw state of an in-bounds cell, or 0 outside the grid.
func (e *Engine) Age(x, y int) uint8 {
	if !e.grid.InBounds(x, y) {
		return 0
	}
	return e.grid.Cells()[e.grid.Index(x, y)]
}

// Alive reports whether an in-bounds cell is alive.
func (e *Engine) Alive(x, y int) bool { return e.Age(x, y) != 0 }

// CountLiveNeighbors returns the number of live cells among the eight
// toroidal neighbors of (x, y).
func (e *Engine) CountLiveNeighbors(x, y int) int { return e.grid.LiveNeighbors(x, y) }

// Advance applies one generation unless the engine is paused or the tick
// interval has not yet elapsed.
func (e *Engine) Advance() {
	if e.paused || !e.gate.Ready() {
		return
	}
	e.Step()
	e.gate.Mark()
}

// Step applies one generation unconditionally. Every next state is computed
// from the unchanged current grid before the two are swapped.
func (e *Engine) Step() {
	h := e.grid.H
	workers := e.cfg.Workers
	if workers < 2 || h < 2 {
		e.stepRows(0, h)
	} else {
		e.stepParallel(min(workers, h, runtime.NumCPU()*4))
	}
	e.nxt = e.grid.Swap(e.nxt)
	e.generation++
}

func (e *Engine) stepParallel(numWorkers int) {
	var (
		eg            errgroup.Group
		h             = e.grid.H
		rowsPerWorker = (h + numWorkers - 1) / numWorkers
	)
	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, h)
		)
		if startRow >= h {
			break
		}
		eg.Go(func() error {
			e.stepRows(startRow, endRow)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	_ = eg.Wait()
}

func (e *Engine) stepRows(startRow, endRow int) {
	g := e.grid
	cur := g.Cells()
	kind := e.cfg.Cells
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.W; x++ {
			idx := y*g.W + x
			e.nxt[idx] = kind.next(cur[idx], g.LiveNeighbors(x, y))
		}
	}
}

// Render rewrites the pixel buffer from the current grid and generation.
func (e *Engine) Render() {
	render.Fill(e.pixels, render.Frame{
		Cells:      e.grid.Cells(),
		W:          e.grid.W,
		H:          e.grid.H,
		CellSize:   e.cfg.CellSize,
		Generation: e.generation,
		Mode:       e.cfg.Color,
		Palette:    e.cfg.Palette,
		Background: e.cfg.Background,
	})
}

// Clear kills every cell and resets the generation counter. The pixel buffer
// keeps its contents until the next Render.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.generation = 0
}

// Reset returns the engine to its freshly constructed state and re-applies
// the configured seeding using seed.
func (e *Engine) Reset(seed int64) {
	if err := e.reset(seed); err != nil {
		// Seeding is validated by New, so Apply cannot fail here.
		panic(err)
	}
}

func (e *Engine) reset(seed int64) error {
	e.Clear()
	for i := range e.pixels {
		e.pixels[i] = 0
	}
	e.paused = false
	e.gate.Mark()
	e.seed = seed
	if err := e.cfg.Seeding.Apply(e.grid, core.NewRNG(seed)); err != nil {
		return errors.Wrapf(err, "seed %s", e.cfg.Name)
	}
	return nil
}

// AddCell marks a single in-bounds cell alive. Out-of-range coordinates are
// ignored, not wrapped.
func (e *Engine) AddCell(x, y int) {
	e.grid.Set(x, y)
}

// Stamp writes a catalog pattern anchored at (x, y), wrapping at the edges.
func (e *Engine) Stamp(name string, x, y int) error {
	return patterns.StampNamed(e.grid, name, x, y)
}
