package life

import (
	"strconv"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/patterns"
)

const (
	paramTickMS  = "tick_ms"
	paramDensity = "density"

	maxTickMS = 2000
)

// Parameters reports the active configuration for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				intParam("cell", "Cell size", c.CellSize),
				stringParam("cells", "Cells", c.Cells.String()),
				stringParam("color", "Color", c.Color.String()),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam(paramTickMS, "Tick (ms)", int(e.TickInterval()/time.Millisecond)),
				intParam("workers", "Workers", c.Workers),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				stringParam("seed_mode", "Mode", string(c.Seeding.Mode)),
				int64Param("seed", "Seed", e.seed),
				intParam("count", "Patterns", c.Seeding.Count),
				floatParam(paramDensity, "Scatter density", c.Seeding.Density),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
// Density is offered only when the seeding mode scatters noise.
func (e *Engine) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: paramTickMS, Label: "Tick (ms)", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: maxTickMS, HasMin: true, HasMax: true},
	}
	if e.scatters() {
		controls = append(controls, core.ParameterControl{Key: paramDensity, Label: "Scatter density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true})
	}
	return controls
}

func (e *Engine) scatters() bool {
	switch e.cfg.Seeding.Mode {
	case patterns.SeedRandom, patterns.SeedScatter:
		return true
	}
	return false
}

// SetIntParameter updates an integer control. The tick interval applies
// immediately.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case paramTickMS:
		value = min(max(value, 0), maxTickMS)
		e.SetTickInterval(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

// SetFloatParameter updates a float control. The scatter density is used by
// the next Reset.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case paramDensity:
		if !e.scatters() {
			return false
		}
		e.cfg.Seeding.Density = min(max(value, 0), 1)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
