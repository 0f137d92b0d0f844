package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/ebitensurface"
	"github.com/phanxgames/canopy/widgets"
)

// galleryCommand creates the "gallery" command, which opens a window.
func (c *CLI) galleryCommand() *cobra.Command {
	var (
		scriptPath    string
		screenshotDir string
		exit          bool
		showFPS       bool
	)
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Open a window showing one of each widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			var script *canopy.ScriptRunner
			if scriptPath != "" {
				if script, err = readScript(scriptPath); err != nil {
					return err
				}
			}

			surface, err := ebitensurface.New()
			if err != nil {
				return err
			}
			surface.ScreenshotDir = screenshotDir
			surface.OnScreenshot(func(path string, err error) {
				if err != nil {
					logger.Error("screenshot", "path", path, "err", err)
					return
				}
				logger.Info("screenshot", "path", path)
			})

			root, gallery, err := newGallery(env, surface)
			if err != nil {
				return err
			}
			gallery.Button.OnClick(func(b *widgets.Button) {
				logger.Debug("click", "clicks", gallery.Clicks())
			})

			game := ebitensurface.NewGame(surface, root, script)
			game.ExitWhenDone = exit && script != nil

			logger.Info("gallery", "width", cfg.Window.Width, "height", cfg.Window.Height, "dark", cfg.Dark)
			return ebitensurface.Run(game, ebitensurface.RunConfig{
				Title:   cfg.Window.Title,
				Width:   cfg.Window.Width,
				Height:  cfg.Window.Height,
				TPS:     cfg.FPS,
				ShowFPS: showFPS,
			})
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON input script to replay")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "directory for script screenshots")
	cmd.Flags().BoolVar(&exit, "exit", false, "quit once the script is done")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	return cmd
}

// newGallery builds the gallery on a root canvas laid out at its design
// size, so the first window layout zooms it to the window.
func newGallery(env *canopy.Env, s canopy.Surface) (*canopy.Canvas, *widgets.Gallery, error) {
	root := canopy.NewCanvas(env, s, canopy.CanvasConfig{Name: "root"})
	if err := root.Resize(widgets.GallerySize.X, widgets.GallerySize.Y); err != nil {
		return nil, nil, err
	}
	return root, widgets.NewGallery(root), nil
}

func readScript(path string) (*canopy.ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return canopy.LoadScript(data)
}
