// Package config loads the canopy application config from YAML or TOML.
//
//	dark: true
//	fps: 60
//	gradient_ms: 150
//	theme: themes/solarized.yaml
//	font: {family: Go, size: 13}
//	window: {title: canopy, width: 640, height: 400}
//
// Keys left out keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/theme"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Font holds the default font for Text elements.
type Font struct {
	Family string  `yaml:"family" toml:"family"`
	Size   float64 `yaml:"size" toml:"size"`
}

// Window holds the initial window settings.
type Window struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Config is the application config.
type Config struct {
	Dark       bool   `yaml:"dark" toml:"dark"`
	Debug      bool   `yaml:"debug" toml:"debug"`
	FPS        int    `yaml:"fps" toml:"fps"`
	GradientMS int    `yaml:"gradient_ms" toml:"gradient_ms"`
	Theme      string `yaml:"theme" toml:"theme"`
	Font       Font   `yaml:"font" toml:"font"`
	Window     Window `yaml:"window" toml:"window"`
}

// Default returns the config used when no file is given.
func Default() Config {
	return Config{
		FPS:        canopy.DefaultFPS,
		GradientMS: int(canopy.DefaultGradientDuration / time.Millisecond),
		Font:       Font{Family: canopy.DefaultFontFamily, Size: canopy.DefaultFontSize},
		Window:     Window{Title: "canopy", Width: 640, Height: 400},
	}
}

// Load reads the config at path over the defaults. An empty path or a
// missing file yields the defaults. The format follows the extension: .yaml,
// .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, fmt.Errorf("config %s: unknown format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Theme != "" && !filepath.IsAbs(cfg.Theme) {
		cfg.Theme = filepath.Join(filepath.Dir(path), cfg.Theme)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.FPS)
	case c.GradientMS < 0:
		return fmt.Errorf("%w: gradient_ms %d must not be negative", ErrInvalid, c.GradientMS)
	case c.Font.Size <= 0:
		return fmt.Errorf("%w: font.size %v must be positive", ErrInvalid, c.Font.Size)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// LoadTheme returns the built-in theme, merged with the configured theme
// file when one is set.
func (c Config) LoadTheme() (*theme.Theme, error) {
	base := theme.Default()
	if c.Theme == "" {
		return base, nil
	}
	over, err := theme.Load(c.Theme)
	if err != nil {
		return nil, err
	}
	return base.Merge(over), nil
}

// Env builds an environment from the config. A nil logger keeps the Env's
// default stderr logger.
func (c Config) Env(logger *log.Logger) (*canopy.Env, error) {
	th, err := c.LoadTheme()
	if err != nil {
		return nil, err
	}
	env := canopy.NewEnv(th)
	if logger != nil {
		env.Logger = logger
	}
	env.FPS = c.FPS
	env.GradientDuration = time.Duration(c.GradientMS) * time.Millisecond
	if c.Font.Family != "" {
		env.FontFamily = c.Font.Family
	}
	env.FontSize = c.Font.Size
	env.SetDark(c.Dark)
	if c.Debug {
		env.SetDebug(true)
	}
	return env, nil
}
