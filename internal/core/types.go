package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Sim is the contract a host display loop drives: per-frame update and
// render, the pixel output surface and the interactive commands.
type Sim interface {
	Name() string
	Size() Size
	CellSize() int

	Advance()
	Step()
	Render()
	Pixels() []uint32

	TogglePause()
	Paused() bool
	Clear()
	Reset(seed int64)
	Seed() int64
	AddCell(x, y int)

	Generation() int
	LiveCells() int
	Status() string
}

// Factory constructs a Sim using an optional override map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the named factory and constructs the Sim.
func Build(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, errors.Errorf("unknown sim %q (have %v)", name, SimNames())
	}
	sim, err := factory(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "build sim %q", name)
	}
	return sim, nil
}
