// Package theme loads canopy style sources from YAML or TOML files.
//
// A theme file has a name and two variants, light and dark. Each variant maps
// widget type → component → state → attributes:
//
//	light:
//	  Button:
//	    body:
//	      normal: {fill: "#FDFDFD", outline: "#D0D0D0", width: 1}
//	      hover:  {fill: "#E8F0FE"}
//
// Components missing from the dark variant fall back to the light one.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/canopy"
)

// ErrInvalidTheme is wrapped by every validation error.
var ErrInvalidTheme = errors.New("invalid theme")

// ErrUnknownFormat is returned for theme files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown theme format")

// Components maps a component name to its per-state styles.
type Components map[string]canopy.StateStyles

// Widgets maps a widget type to its components.
type Widgets map[string]Components

// Theme is a StyleSource with a light and a dark variant.
type Theme struct {
	Name  string  `yaml:"name" toml:"name"`
	Light Widgets `yaml:"light" toml:"light"`
	Dark  Widgets `yaml:"dark" toml:"dark"`
}

//go:embed default.yaml
var defaultYAML []byte

// Default returns a fresh copy of the built-in theme.
func Default() *Theme {
	t, err := Parse(defaultYAML, "yaml")
	if err != nil {
		panic(fmt.Sprintf("theme: built-in theme: %v", err))
	}
	return t
}

// Lookup implements canopy.StyleSource.
func (t *Theme) Lookup(widgetType, component string, dark bool) canopy.StateStyles {
	if dark {
		if st, ok := t.Dark[widgetType][component]; ok {
			return st
		}
	}
	return t.Light[widgetType][component]
}

// Load reads a theme file. The format follows the extension: .yaml, .yml or
// .toml.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme in the given format ("yaml", "yml" or "toml").
// Numeric attributes are normalized to float64.
func Parse(data []byte, format string) (*Theme, error) {
	var t Theme
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	t.Light.normalize()
	t.Dark.normalize()
	return &t, nil
}

func (w Widgets) normalize() {
	for _, comps := range w {
		for _, states := range comps {
			for _, style := range states {
				for k, v := range style {
					switch n := v.(type) {
					case int:
						style[k] = float64(n)
					case int64:
						style[k] = float64(n)
					}
				}
			}
		}
	}
}

// Merge returns a new theme with over layered on t, attribute by attribute.
// The name is taken from over when set.
func (t *Theme) Merge(over *Theme) *Theme {
	out := &Theme{Name: t.Name, Light: merge(t.Light, nil), Dark: merge(t.Dark, nil)}
	if over == nil {
		return out
	}
	if over.Name != "" {
		out.Name = over.Name
	}
	out.Light = merge(out.Light, over.Light)
	out.Dark = merge(out.Dark, over.Dark)
	return out
}

func merge(base, over Widgets) Widgets {
	out := make(Widgets, len(base))
	for wt, comps := range base {
		out[wt] = make(Components, len(comps))
		for name, st := range comps {
			out[wt][name] = st.Merge(nil)
		}
	}
	for wt, comps := range over {
		if out[wt] == nil {
			out[wt] = make(Components, len(comps))
		}
		for name, st := range comps {
			out[wt][name] = out[wt][name].Merge(st)
		}
	}
	return out
}

// colorKeys are the attributes Validate parses as colors.
var colorKeys = []string{canopy.AttrFill, canopy.AttrOutline}

// Validate checks every color attribute and reports all problems at once,
// sorted by location.
func (t *Theme) Validate() error {
	var problems []string
	check := func(variant string, w Widgets) {
		for wt, comps := range w {
			for name, states := range comps {
				for state, style := range states {
					for _, key := range colorKeys {
						v, ok := style[key]
						if !ok {
							continue
						}
						s, isString := v.(string)
						if !isString {
							problems = append(problems, fmt.Sprintf("%s.%s.%s.%s.%s: not a string", variant, wt, name, state, key))
							continue
						}
						if _, ok := canopy.ParseColor(s); !ok && s != "" {
							problems = append(problems, fmt.Sprintf("%s.%s.%s.%s.%s: bad color %q", variant, wt, name, state, key, s))
						}
					}
				}
			}
		}
	}
	check("light", t.Light)
	check("dark", t.Dark)
	if len(t.Light) == 0 {
		problems = append(problems, "light: no widgets")
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalidTheme, strings.Join(problems, "; "))
}

// WidgetTypes returns the widget types of both variants, sorted.
func (t *Theme) WidgetTypes() []string {
	seen := make(map[string]bool)
	for wt := range t.Light {
		seen[wt] = true
	}
	for wt := range t.Dark {
		seen[wt] = true
	}
	out := make([]string, 0, len(seen))
	for wt := range seen {
		out = append(out, wt)
	}
	sort.Strings(out)
	return out
}
