package canopy

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults applied by NewEnv and Reset.
const (
	DefaultGradientDuration = 150 * time.Millisecond
	DefaultFontFamily       = "Go"
	DefaultFontSize         = 13.0

	defaultLightBackground = "#F1F1F1"
	defaultDarkBackground  = "#202020"
)

// Env is the shared context every Canvas and Widget is built from: the timer
// loop, the theme, the light/dark flag, font defaults and the logger. One Env
// usually serves a whole application; tests build one per case.
type Env struct {
	// Loop runs every animation.
	Loop *Loop
	// Theme resolves element styles. Nil means elements only use the styles
	// passed to their constructors.
	Theme StyleSource
	// Logger receives debug traces and warnings.
	Logger *log.Logger

	// FPS is the frame rate of style gradients and widget animations.
	FPS int
	// GradientDuration is the length of an animated style transition.
	GradientDuration time.Duration
	// FontFamily and FontSize are the defaults for Text elements.
	FontFamily string
	FontSize   float64

	dark    bool
	debug   bool
	widgets []*Widget // live widgets in creation order
}

// NewEnv creates an environment with a fresh Loop, the given theme, and
// default settings. The logger writes warnings and above to stderr.
func NewEnv(theme StyleSource) *Env {
	e := &Env{
		Loop:   NewLoop(),
		Theme:  theme,
		Logger: NewLogger(os.Stderr, log.WarnLevel),
	}
	e.setDefaults()
	return e
}

func (e *Env) setDefaults() {
	e.FPS = DefaultFPS
	e.GradientDuration = DefaultGradientDuration
	e.FontFamily = DefaultFontFamily
	e.FontSize = DefaultFontSize
}

// Dark reports whether the dark variant of the theme is active.
func (e *Env) Dark() bool {
	return e.dark
}

// SetDark switches the theme variant. Every live widget re-resolves its
// element styles and is updated to its current state without animation.
func (e *Env) SetDark(dark bool) {
	if e.dark == dark {
		return
	}
	e.dark = dark
	e.restyle()
}

// SetTheme replaces the style source and restyles every live widget.
func (e *Env) SetTheme(theme StyleSource) {
	e.Theme = theme
	e.restyle()
}

func (e *Env) restyle() {
	if e.debug {
		e.Logger.Debug("restyle", "dark", e.dark, "widgets", len(e.widgets))
	}
	// Updates may destroy widgets through hooks; iterate over a snapshot.
	live := append([]*Widget(nil), e.widgets...)
	for _, w := range live {
		if w.destroyed {
			continue
		}
		for _, el := range w.elements {
			el.base().restyle()
		}
	}
	for _, w := range live {
		if w.destroyed {
			continue
		}
		w.refreshStyle()
	}
}

// Reset restores the default settings, the light variant and a quiet logger.
// Live widgets are restyled; the Loop and its pending timers are kept.
func (e *Env) Reset() {
	e.setDefaults()
	e.SetDebug(false)
	e.SetDark(false)
}

// Background returns the canvas background color for the active variant:
// the theme's Canvas/background fill for state "normal" when present.
func (e *Env) Background() string {
	if e.Theme != nil {
		if st, ok := e.Theme.Lookup("Canvas", "background", e.dark)[StateNormal]; ok {
			if fill, ok := st[AttrFill].(string); ok && fill != "" {
				return fill
			}
		}
	}
	if e.dark {
		return defaultDarkBackground
	}
	return defaultLightBackground
}

// LiveWidgets returns the number of widgets created and not yet destroyed.
func (e *Env) LiveWidgets() int {
	return len(e.widgets)
}

func (e *Env) register(w *Widget) {
	e.widgets = append(e.widgets, w)
}

func (e *Env) unregister(w *Widget) {
	e.widgets = removeWidget(e.widgets, w)
}
