package life

import (
	"time"

	"torus-life/internal/core"
	"torus-life/internal/patterns"
	"torus-life/internal/render"
)

// Flower is the timed showcase: curated patterns and a slowly cycling
// pastel palette.
func Flower() Config {
	c := DefaultConfig()
	c.Name = "flower"
	return c
}

// Pulsar is the untimed showcase on a larger board.
func Pulsar() Config {
	c := DefaultConfig()
	c.Name = "pulsar"
	c.Width = 200
	c.Height = 200
	c.CellSize = 4
	c.TickInterval = 0
	return c
}

// Aged colors cells by how many generations they have survived, seeded
// with random patterns over a noisy center.
func Aged() Config {
	c := DefaultConfig()
	c.Name = "aged"
	c.Width = 160
	c.Height = 120
	c.Cells = CellAged
	c.Color = render.ColorAge
	c.Palette = render.AgePalette
	c.TickInterval = 0
	c.Seeding = patterns.Seeding{
		Mode:    patterns.SeedRandom,
		Count:   30,
		Density: 0.25,
		Area:    patterns.Area{W: 40, H: 40, Centered: true},
	}
	return c
}

// Lavender paints every live cell one color over a chaotic random seed.
func Lavender() Config {
	c := DefaultConfig()
	c.Name = "lavender"
	c.Width = 150
	c.Height = 100
	c.CellSize = 6
	c.Color = render.ColorSolid
	c.Palette = []uint32{render.Lavender}
	c.Background = 0x1a1a2e
	c.TickInterval = 0
	c.Seeding = patterns.Seeding{Mode: patterns.SeedRandom, Count: 40}
	return c
}

// Gun runs a Gosper glider gun alone, gated to a watchable speed.
func Gun() Config {
	c := DefaultConfig()
	c.Name = "gun"
	c.Width = 120
	c.Height = 80
	c.CellSize = 6
	c.TickInterval = 50 * time.Millisecond
	c.Seeding = patterns.Seeding{Mode: patterns.SeedRandom, Count: 1, Names: []string{"gosper-glider-gun"}}
	return c
}

// Presets lists the named configurations registered with core.
var Presets = map[string]func() Config{
	"flower":   Flower,
	"pulsar":   Pulsar,
	"aged":     Aged,
	"lavender": Lavender,
	"gun":      Gun,
}

func init() {
	for name, preset := range Presets {
		preset := preset
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			e, err := NewSeeded(ApplyOverrides(preset(), cfg))
			if err != nil {
				return nil, err
			}
			return e, nil
		})
	}
}
