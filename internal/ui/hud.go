//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status and parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	lines        []hudLine
	controls     []hudControlState
	controlsTop  int
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	h.refresh()
	h.layoutControls()
	return h
}

// Update refreshes the cached snapshot from the simulation and handles
// button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refresh()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * h.sim.CellSize()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	h.lines = h.lines[:0]
	h.lines = append(h.lines,
		hudLine{text: h.sim.Name(), header: true},
		hudLine{text: h.sim.Status()},
	)
	if h.sim.Paused() {
		h.lines = append(h.lines, hudLine{text: "paused"})
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	adjustable := map[string]bool{}
	for _, state := range h.controls {
		adjustable[state.control.Key] = true
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		h.lines = append(h.lines, hudLine{text: group.Name, header: true})
		for _, param := range group.Params {
			paramMap[param.Key] = param
			if !adjustable[param.Key] {
				h.lines = append(h.lines, hudLine{text: param.Label + ": " + param.Value})
			}
		}
	}
	h.refreshControlValues(paramMap)
}

func (h *HUD) refreshControlValues(paramMap map[string]core.Parameter) {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := paramMap[state.control.Key]
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if image.Pt(px, my).In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if image.Pt(px, my).In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := int(math.Round(ctrl.Clamp(float64(state.intValue + direction*step))))
		if target != state.intValue && h.intSetter.SetIntParameter(ctrl.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := ctrl.Clamp(state.floatValue + float64(direction)*step)
		if math.Abs(target-state.floatValue) > 1e-9 && h.floatSetter.SetFloatParameter(ctrl.Key, target) {
			state.floatValue = target
			state.value = strconv.FormatFloat(target, 'f', 2, 64)
		}
	}
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if y > h.controlsTop-lineSpacing && len(h.controls) > 0 {
			break
		}
		col := color.RGBA{R: 200, G: 200, B: 210, A: 255}
		if line.header {
			col = color.RGBA{R: 250, G: 214, B: 255, A: 255}
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, col)
		y += lineSpacing
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutControls pins the adjustable controls to the bottom of the panel.
func (h *HUD) layoutControls() {
	height := h.sim.Size().H * h.sim.CellSize()
	h.controlsTop = height - panelPadding - len(h.controls)*lineHeight
	for i := range h.controls {
		top := h.controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	lineSpacing    = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)
