package ebitensurface

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

// Game runs a root canvas as an ebiten.Game. Each tick it advances the input
// script (if any), dispatches one injected event or the real input, and
// advances the Env's timer loop by one tick.
type Game struct {
	Surface *Surface
	Canvas  *canopy.Canvas
	// Script, when set, drives the canvas with injected input. Once it is
	// done the game exits if ExitWhenDone is set.
	Script       *canopy.ScriptRunner
	ExitWhenDone bool
	// ShowFPS overlays the current FPS and TPS.
	ShowFPS bool

	width, height float64
	pointer       pointerState
	keys          []ebiten.Key
	runes         []rune
}

// NewGame wires a surface and the root canvas drawn on it. Script steps that
// take screenshots are routed to the surface.
func NewGame(s *Surface, c *canopy.Canvas, script *canopy.ScriptRunner) *Game {
	if script != nil && script.Screenshot == nil {
		script.Screenshot = s.Screenshot
	}
	return &Game{Surface: s, Canvas: c, Script: script}
}

// tick is the duration of one Update call.
func tick() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Script != nil {
		if err := g.Script.Step(g.Canvas); err != nil {
			return err
		}
		if g.ExitWhenDone && g.Script.Done() && g.Canvas.PendingInput() == 0 {
			return ebiten.Termination
		}
	}
	if !g.Canvas.ProcessInput() {
		g.pollInput()
	}
	g.Canvas.Env().Loop.Advance(tick())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if bg, ok := canopy.ParseColor(g.Canvas.Env().Background()); ok {
		screen.Fill(toNRGBA(bg))
	}
	g.Surface.Draw(screen)
	g.Surface.flushScreenshots(screen)
	if g.ShowFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game. The root canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w > 0 && h > 0 && (w != g.width || h != g.height) {
		if err := g.Canvas.Resize(w, h); err != nil {
			g.Canvas.Env().Logger.Warn("resize", "width", w, "height", h, "err", err)
		} else {
			g.width, g.height = w, h
		}
	}
	return outsideWidth, outsideHeight
}
