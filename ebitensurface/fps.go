package ebitensurface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS prints the current FPS and TPS in the top-left corner.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// RunConfig holds the window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the tick rate; zero keeps Ebitengine's default of 60.
	TPS     int
	ShowFPS bool
}

// Run opens a resizable window and runs g until the window closes or the
// game terminates.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS
	return ebiten.RunGame(g)
}
