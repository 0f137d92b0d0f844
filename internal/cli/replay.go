package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
)

// replayCommand creates the "replay" command, which runs an input script
// against the gallery on an in-memory surface and prints the final status.
func (c *CLI) replayCommand() *cobra.Command {
	var maxFrames int
	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Drive the gallery headlessly with an input script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			script, err := readScript(args[0])
			if err != nil {
				return err
			}
			surface := canopy.NewMemorySurface()
			root, gallery, err := newGallery(env, surface)
			if err != nil {
				return err
			}
			script.Screenshot = func(label string) {
				logger.Info("screenshot skipped", "label", label, "items", surface.Len())
			}

			frame := time.Second / time.Duration(cfg.FPS)
			if err := script.Run(root, frame, maxFrames); err != nil {
				return err
			}
			// Let running animations settle before reporting.
			env.Loop.Advance(time.Second)

			fmt.Fprintf(cmd.OutOrStdout(), "%s\nswitch: %v\nsize: %vx%v\n",
				gallery.Status.Text(), gallery.Switch.On(), root.Size().X, root.Size().Y)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "fail if the script needs more frames (0 for no limit)")
	return cmd
}
