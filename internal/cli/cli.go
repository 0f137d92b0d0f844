// Package cli implements the canopy command-line interface.
//
// # Commands
//
//   - gallery: open a window showing one of each widget
//   - replay: drive the gallery headlessly with an input script
//   - theme check: validate a theme file
//
// Every command reads the app config named by --config and logs through the
// logger carried in its context. --verbose lowers the level to debug.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
}

// New creates a CLI whose logger writes to w and whose command output goes
// to out.
func New(out, w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: canopy.NewLogger(w, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "canopy",
		Short:        "canopy is a retained-mode widget toolkit",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "canopy.yaml", "app config file (.yaml or .toml)")

	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.themeCommand())
	return root
}

// loadConfig reads the config named by --config and builds its Env. The Env
// logs through the command logger.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, *canopy.Env, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, nil, err
	}
	logger := loggerFromContext(ctx)
	env, err := cfg.Env(logger)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("config loaded", "path", c.configPath, "dark", cfg.Dark, "fps", cfg.FPS)
	return cfg, env, nil
}
