package patterns

import (
	"github.com/pkg/errors"

	"torus-life/internal/core"
)

// ErrUnknownPattern is returned when a name is not in the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// Target is a grid that patterns can be written into. Spawn must wrap
// coordinates toroidally.
type Target interface {
	Size() core.Size
	Spawn(x, y int)
}

// Stamp writes every cell of p at (x, y) + offset, wrapped onto the target.
func Stamp(t Target, p Pattern, x, y int) {
	for _, c := range p.cells {
		t.Spawn(x+c.DX, y+c.DY)
	}
}

// StampNamed looks up a catalog pattern and stamps it.
func StampNamed(t Target, name string, x, y int) error {
	p, ok := Lookup(name)
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	Stamp(t, p, x, y)
	return nil
}

// Placement anchors a named pattern on the grid.
type Placement struct {
	Name string
	X, Y int
}

// Apply stamps every placement in order. It stops at the first unknown name.
func Apply(t Target, scene []Placement) error {
	for _, pl := range scene {
		if err := StampNamed(t, pl.Name, pl.X, pl.Y); err != nil {
			return err
		}
	}
	return nil
}

// Showcase returns the curated arrangement used by the showcase presets,
// with anchors derived from the grid size.
func Showcase(size core.Size) []Placement {
	w, h := size.W, size.H
	return []Placement{
		// center
		{"flower", w / 2, h / 2},
		{"pulsar", w / 2, h/2 - 20},
		{"pulsar", w / 2, h/2 + 20},
		{"pentadecathlon", w/2 - 20, h / 2},
		{"pentadecathlon", w/2 + 20, h / 2},

		// corners
		{"glider", 5, 5},
		{"glider", w - 10, 5},
		{"glider", 5, h - 10},
		{"glider", w - 10, h - 10},

		// edges
		{"blinker", w / 4, 5},
		{"blinker", 3 * w / 4, h - 5},
		{"block", 5, h / 2},
		{"block", w - 5, h / 2},

		// scattered
		{"beehive", w / 3, h / 3},
		{"beehive", 2 * w / 3, 2 * h / 3},
		{"loaf", w / 4, 3 * h / 4},
		{"loaf", 3 * w / 4, h / 4},
		{"boat", w / 5, h / 5},
		{"tub", 4 * w / 5, 4 * h / 5},
		{"toad", w / 6, h / 2},
		{"beacon", 5 * w / 6, h / 2},
		{"lwss", w / 2, h / 6},
		{"mwss", w / 2, 5 * h / 6},
		{"hwss", w / 3, h / 2},

		{"heart", w / 4, h / 4},
		{"star", 3 * w / 4, 3 * h / 4},

		{"glider", w / 3, h / 4},
		{"glider", 2 * w / 3, 3 * h / 4},
		{"lwss", w / 4, 2 * h / 3},
		{"mwss", 3 * w / 4, h / 3},

		{"block", w / 8, h / 8},
		{"block", 7 * w / 8, 7 * h / 8},
		{"beehive", 3 * w / 4, h / 8},
		{"beehive", w / 8, 3 * h / 4},
		{"loaf", 5 * w / 6, h / 6},
		{"loaf", w / 6, 5 * h / 6},
	}
}

// RandomScene draws count placements with names chosen uniformly from names
// (the whole catalog when empty) and anchors chosen uniformly over the grid.
func RandomScene(rng *core.RNG, size core.Size, names []string, count int) []Placement {
	if len(names) == 0 {
		names = Names()
	}
	scene := make([]Placement, 0, max(count, 0))
	for i := 0; i < count; i++ {
		scene = append(scene, Placement{
			Name: names[rng.IntN(len(names))],
			X:    rng.IntN(size.W),
			Y:    rng.IntN(size.H),
		})
	}
	return scene
}

// Scatter independently marks each cell of the w×h rectangle anchored at
// (x, y) alive with probability p. The rectangle wraps; cells are never
// cleared.
func Scatter(t Target, rng *core.RNG, x, y, w, h int, p float64) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if rng.Chance(p) {
				t.Spawn(x+dx, y+dy)
			}
		}
	}
}
