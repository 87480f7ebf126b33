package patterns

import (
	"github.com/pkg/errors"

	"torus-life/internal/core"
)

// SeedMode selects how a fresh grid is populated.
type SeedMode string

const (
	// SeedNone leaves the grid empty.
	SeedNone SeedMode = "none"
	// SeedShowcase places the fixed showcase layout.
	SeedShowcase SeedMode = "showcase"
	// SeedRandom places random catalog patterns, plus noise when Density > 0.
	SeedRandom SeedMode = "random"
	// SeedScatter fills the area with noise at Density.
	SeedScatter SeedMode = "scatter"
)

// ParseSeedMode validates a mode name.
func ParseSeedMode(s string) (SeedMode, error) {
	switch m := SeedMode(s); m {
	case SeedNone, SeedShowcase, SeedRandom, SeedScatter:
		return m, nil
	}
	return "", errors.Errorf("unknown seed mode %q", s)
}

// Area is a sub-rectangle of the grid. A zero width or height means the whole
// grid along that axis, as does one larger than the grid. Centered areas
// ignore X and Y and sit in the middle of the grid they are resolved against.
type Area struct {
	X, Y     int
	W, H     int
	Centered bool
}

func (a Area) resolve(size core.Size) Area {
	if a.W <= 0 || a.W > size.W {
		a.X, a.W = 0, size.W
	}
	if a.H <= 0 || a.H > size.H {
		a.Y, a.H = 0, size.H
	}
	if a.Centered {
		a.X = (size.W - a.W) / 2
		a.Y = (size.H - a.H) / 2
	}
	return a
}

// Seeding describes the initial population of a grid.
type Seeding struct {
	Mode SeedMode
	// Count is the number of random placements for SeedRandom.
	Count int
	// Names restricts random placements to a catalog subset.
	Names []string
	// Density is the scatter probability. SeedRandom scatters too when it
	// is positive.
	Density float64
	Area    Area
}

// Validate reports configuration mistakes.
func (s Seeding) Validate() error {
	if _, err := ParseSeedMode(string(s.Mode)); err != nil {
		return err
	}
	if s.Density < 0 || s.Density > 1 {
		return errors.Errorf("seed density %v outside [0,1]", s.Density)
	}
	if s.Count < 0 {
		return errors.Errorf("seed count %d is negative", s.Count)
	}
	for _, name := range s.Names {
		if _, ok := Lookup(name); !ok {
			return errors.Wrapf(ErrUnknownPattern, "%q", name)
		}
	}
	return nil
}

// Apply populates t according to the seeding. rng is only consulted by the
// randomized modes.
func (s Seeding) Apply(t Target, rng *core.RNG) error {
	size := t.Size()
	switch s.Mode {
	case SeedNone, "":
		return nil
	case SeedShowcase:
		return Apply(t, Showcase(size))
	case SeedRandom:
		if err := Apply(t, RandomScene(rng, size, s.Names, s.Count)); err != nil {
			return err
		}
		if s.Density > 0 {
			a := s.Area.resolve(size)
			Scatter(t, rng, a.X, a.Y, a.W, a.H, s.Density)
		}
		return nil
	case SeedScatter:
		a := s.Area.resolve(size)
		Scatter(t, rng, a.X, a.Y, a.W, a.H, s.Density)
		return nil
	}
	return errors.Errorf("unknown seed mode %q", s.Mode)
}
