// Package widgets provides ready-made canopy widgets: labels, buttons,
// switches and tooltips. Each one is a canopy.Widget styled from the "Label",
// "Button", "Switch" and "Tooltip" entries of the env's theme.
package widgets

import "github.com/phanxgames/canopy"

// Options are the settings shared by every widget in this package.
type Options struct {
	// Anchor selects which point of the box the position refers to.
	Anchor canopy.Anchor
	// FontSize overrides the env's default font size.
	FontSize float64
	// Styles override theme styles per component.
	Styles map[string]canopy.StateStyles
	// Disabled creates the widget disabled.
	Disabled bool
}

func (o Options) element(component string) canopy.ElementOptions {
	return canopy.ElementOptions{Component: component, Styles: o.Styles[component]}
}

func (o Options) text(component string) canopy.TextOptions {
	return canopy.TextOptions{ElementOptions: o.element(component), FontSize: o.FontSize}
}

// finish realizes w against its canvas and applies the disabled option.
func finish(w *canopy.Widget, o Options) {
	w.Realize()
	if o.Disabled {
		w.SetDisabled(true)
	}
}

// Label is static text.
type Label struct {
	*canopy.Widget
	text *canopy.Text
}

// NewLabel creates a label on c. position and size are in c's design units.
func NewLabel(c *canopy.Canvas, text string, position, size canopy.Vec2, opts Options) *Label {
	w := canopy.NewWidget(c, position, size, canopy.WidgetOptions{Type: "Label", Anchor: opts.Anchor})
	l := &Label{Widget: w}
	l.text = canopy.NewText(w, text, canopy.Vec2{}, size, opts.text("text"))
	w.UserData = l
	finish(w, opts)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text.Text() }

// SetText replaces the label's text.
func (l *Label) SetText(s string) { l.text.SetText(s) }

// TextElement returns the underlying text element.
func (l *Label) TextElement() *canopy.Text { return l.text }
