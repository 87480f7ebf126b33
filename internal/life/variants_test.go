package life

import (
	"strconv"
	"testing"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/patterns"
	"torus-life/internal/render"
)

func TestPresetsAreRegistered(t *testing.T) {
	overrides := map[string]string{"w": "48", "h": "40", "tick_ms": "0"}
	for name := range Presets {
		sim, err := core.Build(name, overrides)
		if err != nil {
			t.Fatalf("Build(%q): %v", name, err)
		}
		if sim.Name() != name {
			t.Fatalf("sim %q reports name %q", name, sim.Name())
		}
		if sim.Size() != (core.Size{W: 48, H: 40}) {
			t.Fatalf("sim %q ignored size overrides: %+v", name, sim.Size())
		}
		if sim.LiveCells() == 0 {
			t.Fatalf("sim %q should start seeded", name)
		}
		sim.Advance()
		if sim.Generation() != 1 {
			t.Fatalf("sim %q did not advance with tick_ms=0", name)
		}
		sim.Render()
		if want := render.BufferLen(48, 40, sim.CellSize()); len(sim.Pixels()) != want {
			t.Fatalf("sim %q buffer length %d, expected %d", name, len(sim.Pixels()), want)
		}
	}
}

func TestBuildRejectsInvalidOverrides(t *testing.T) {
	if _, err := core.Build("flower", map[string]string{"w": "0"}); err == nil {
		t.Fatal("expected a zero width override to fail")
	}
	if _, err := core.Build("flower", map[string]string{"cell": "0"}); err == nil {
		t.Fatal("expected a zero cell size override to fail")
	}
}

func TestApplyOverrides(t *testing.T) {
	c := ApplyOverrides(DefaultConfig(), map[string]string{
		"w":         "12",
		"h":         "9",
		"cell":      "3",
		"cells":     "aged",
		"color":     "solid",
		"tick_ms":   "15",
		"workers":   "4",
		"seed":      "-7",
		"seed_mode": "scatter",
		"count":     "3",
		"density":   "0.4",
		"bogus":     "ignored",
	})
	if c.Width != 12 || c.Height != 9 || c.CellSize != 3 {
		t.Fatalf("dimension overrides not applied: %+v", c)
	}
	if c.Cells != CellAged || c.Color != render.ColorSolid {
		t.Fatalf("mode overrides not applied: cells=%v color=%v", c.Cells, c.Color)
	}
	if c.TickInterval != 15*time.Millisecond || c.Workers != 4 || c.Seed != -7 {
		t.Fatalf("timing overrides not applied: %+v", c)
	}
	if c.Seeding.Mode != patterns.SeedScatter || c.Seeding.Count != 3 || c.Seeding.Density != 0.4 {
		t.Fatalf("seeding overrides not applied: %+v", c.Seeding)
	}

	kept := ApplyOverrides(DefaultConfig(), map[string]string{"w": "wide", "cells": "square"})
	if kept.Width != DefaultConfig().Width || kept.Cells != CellBool {
		t.Fatal("unparseable overrides should be skipped")
	}
}

func TestSetParametersClamp(t *testing.T) {
	e := newTestEngine(t, 10, 10, func(c *Config) { c.Seeding.Mode = patterns.SeedScatter })
	if !e.SetIntParameter(paramTickMS, 5000) {
		t.Fatal("tick_ms should be adjustable")
	}
	if e.TickInterval() != maxTickMS*time.Millisecond {
		t.Fatalf("tick interval %v should clamp to %dms", e.TickInterval(), maxTickMS)
	}
	if !e.SetIntParameter(paramTickMS, -10) || e.TickInterval() != 0 {
		t.Fatalf("negative tick should clamp to 0, got %v", e.TickInterval())
	}
	if !e.SetFloatParameter(paramDensity, 1.7) || e.cfg.Seeding.Density != 1 {
		t.Fatalf("density should clamp to 1, got %v", e.cfg.Seeding.Density)
	}
	if e.SetIntParameter("w", 3) || e.SetFloatParameter("w", 3) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestParametersSnapshot(t *testing.T) {
	e := newTestEngine(t, 10, 10, func(c *Config) { c.TickInterval = 30 * time.Millisecond })
	values := map[string]string{}
	for _, g := range e.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["w"] != "10" || values[paramTickMS] != "30" || values["cells"] != "bool" {
		t.Fatalf("unexpected snapshot values %v", values)
	}
	if values["seed"] != strconv.FormatInt(e.Seed(), 10) {
		t.Fatalf("snapshot seed %q, expected %d", values["seed"], e.Seed())
	}
}

func TestDensityControlOnlyForScatteringSeeds(t *testing.T) {
	hasDensity := func(e *Engine) bool {
		for _, c := range e.ParameterControls() {
			if c.Key == paramDensity {
				return true
			}
		}
		return false
	}
	showcase := newTestEngine(t, 10, 10, func(c *Config) { c.Seeding.Mode = patterns.SeedShowcase })
	if hasDensity(showcase) {
		t.Fatal("showcase seeding ignores density and should not offer the control")
	}
	if showcase.SetFloatParameter(paramDensity, 0.5) {
		t.Fatal("density setter should reject showcase seeding")
	}
	for _, mode := range []patterns.SeedMode{patterns.SeedRandom, patterns.SeedScatter} {
		e := newTestEngine(t, 10, 10, func(c *Config) { c.Seeding.Mode = mode })
		if !hasDensity(e) || !e.SetFloatParameter(paramDensity, 0.5) {
			t.Fatalf("%s seeding should expose an adjustable density", mode)
		}
	}
}

func TestAgedNoiseStaysCenteredAfterResize(t *testing.T) {
	cfg := ApplyOverrides(Aged(), map[string]string{"w": "80", "h": "60", "count": "0"})
	e, err := NewSeeded(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if e.LiveCells() == 0 {
		t.Fatal("aged preset should scatter noise")
	}
	for xy := range liveSet(e) {
		if xy[0] < 20 || xy[0] >= 60 || xy[1] < 10 || xy[1] >= 50 {
			t.Fatalf("live cell (%d,%d) outside the centered 40x40 area", xy[0], xy[1])
		}
	}
}
