//go:build ebiten

package app

import (
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// Run opens a window for sim and blocks until the player quits.
func Run(sim core.Sim, cfg *Config) error {
	game := New(sim, cfg.HUD, sim.Seed())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.Painter
	hud     *ui.HUD

	canvasW, canvasH int
	hudWidth         int

	tickOnce  bool
	seed      int64
	lastTitle string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, hudWidth int, seed int64) *Game {
	size := sim.Size()
	cs := sim.CellSize()
	w, h := size.W*cs, size.H*cs
	if hudWidth < 0 {
		hudWidth = 0
	}
	return &Game{
		sim:      sim,
		painter:  render.NewPainter(w, h),
		hud:      ui.NewHUD(sim, hudWidth),
		canvasW:  w,
		canvasH:  h,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && mx < g.canvasW && my >= 0 && my < g.canvasH {
			cs := g.sim.CellSize()
			g.sim.AddCell(mx/cs, my/cs)
		}
	}

	g.hud.Update(g.canvasW)

	if g.sim.Paused() && g.tickOnce {
		g.sim.Step()
	} else {
		g.sim.Advance()
	}
	g.tickOnce = false
	g.sim.Render()

	title := "torus-life: " + g.sim.Name() + " | " + g.sim.Status()
	if g.sim.Paused() {
		title += " | paused"
	}
	if title != g.lastTitle {
		ebiten.SetWindowTitle(title)
		g.lastTitle = title
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Pixels())
	g.hud.Draw(screen, g.canvasW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasW + g.hudWidth, g.canvasH
}
