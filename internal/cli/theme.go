package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy/theme"
)

// themeCommand creates the "theme" command group.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}
	cmd.AddCommand(c.themeCheckCommand())
	return cmd
}

// themeCheckCommand creates the "theme check" subcommand.
func (c *CLI) themeCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a theme file, or the built-in theme when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			var (
				th  *theme.Theme
				err error
			)
			if len(args) == 0 {
				th = theme.Default()
			} else if th, err = theme.Load(args[0]); err != nil {
				return err
			}
			if err := th.Validate(); err != nil {
				return err
			}
			logger.Debug("theme valid", "name", th.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", th.Name, strings.Join(th.WidgetTypes(), ", "))
			return nil
		},
	}
}
