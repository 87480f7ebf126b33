package life

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/patterns"
	"torus-life/internal/render"
)

// CellKind selects the cell state representation and transition rule.
type CellKind int

const (
	// CellBool cells are either dead (0) or alive (1).
	CellBool CellKind = iota
	// CellAged cells count consecutive generations alive, saturating at 255.
	CellAged
)

func (k CellKind) String() string {
	switch k {
	case CellBool:
		return "bool"
	case CellAged:
		return "aged"
	}
	return "unknown"
}

// ParseCellKind converts a kind name back to a CellKind.
func ParseCellKind(s string) (CellKind, error) {
	switch s {
	case "bool":
		return CellBool, nil
	case "aged":
		return CellAged, nil
	}
	return 0, errors.Errorf("unknown cell kind %q", s)
}

// Config controls the engine's dimensions, rule, colors and seeding.
type Config struct {
	Name string

	Width    int
	Height   int
	CellSize int

	Cells      CellKind
	Color      render.ColorMode
	Palette    []uint32
	Background uint32

	// TickInterval is the minimum wall-clock time between accepted
	// updates. Zero accepts every Advance call.
	TickInterval time.Duration
	// Workers splits each step into row bands computed concurrently.
	// Values below 2 step serially.
	Workers int

	Seed    int64
	Seeding patterns.Seeding

	// Now is the clock used by the tick gate; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Name:         "life",
		Width:        100,
		Height:       100,
		CellSize:     5,
		Cells:        CellBool,
		Color:        render.ColorCycle,
		Palette:      render.FlowerPalette,
		Background:   render.Black,
		TickInterval: 70 * time.Millisecond,
		Workers:      1,
		Seed:         42,
		Seeding:      patterns.Seeding{Mode: patterns.SeedShowcase},
	}
}

// Validate reports configuration mistakes. These can only come from code or
// config files, so callers treat them as fatal.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Cells != CellBool && c.Cells != CellAged {
		return errors.Errorf("unknown cell kind %d", c.Cells)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	if c.TickInterval < 0 {
		return errors.Errorf("tick interval must not be negative, got %v", c.TickInterval)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if err := c.Seeding.Validate(); err != nil {
		return errors.Wrap(err, "seeding")
	}
	return nil
}

// FromMap populates the default config from a string map (flag-style
// key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyOverrides(DefaultConfig(), cfg)
}

// ApplyOverrides updates c from a string map. Unparseable values are skipped;
// range checks are left to Validate.
func ApplyOverrides(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := ParseCellKind(v); err == nil {
			c.Cells = parsed
		}
	}
	if v, ok := cfg["color"]; ok {
		if parsed, err := render.ParseColorMode(v); err == nil {
			c.Color = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TickInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok {
		if parsed, err := patterns.ParseSeedMode(v); err == nil {
			c.Seeding.Mode = parsed
		}
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Seeding.Count = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Seeding.Density = parsed
		}
	}
	return c
}
