package canopy

import "math"

// Text is a single text item centered in its box. Its font size follows the
// geometric mean of the cumulative zoom factors, so non-uniform resizes never
// stretch glyphs along one axis.
type Text struct {
	element
	text         string
	family       string
	baseFontSize float64
}

// TextOptions configures a Text element.
type TextOptions struct {
	ElementOptions
	// FontFamily defaults to the Env's FontFamily.
	FontFamily string
	// FontSize in points at zoom ratio 1. Defaults to the Env's FontSize.
	FontSize float64
}

// NewText creates a text element showing s and displays it.
func NewText(w *Widget, s string, position, size Vec2, opts TextOptions) *Text {
	env := w.canvas.env
	t := &Text{text: s, family: opts.FontFamily, baseFontSize: opts.FontSize}
	if t.family == "" {
		t.family = env.FontFamily
	}
	if t.baseFontSize <= 0 {
		t.baseFontSize = env.FontSize
	}
	t.init(w, position, size, opts.ElementOptions, []part{{kind: KindText, attrs: fillOnly}})
	t.parts[0].fixed = Attrs{AttrText: s, AttrFontFamily: t.family, AttrFontSize: t.fontSize()}
	t.layout = textLayout
	attach(t)
	return t
}

func textLayout(r Rect, _ Vec2) [][]Vec2 {
	return [][]Vec2{{{r.X + r.Width/2, r.Y + r.Height/2}}}
}

// fontSize is the running font size: the base size scaled by the geometric
// mean of the cumulative zoom factors, rounded to whole points.
func (t *Text) fontSize() float64 {
	return math.Round(t.baseFontSize * meanScale(t.scale))
}

// FontSize returns the font size currently on the surface.
func (t *Text) FontSize() float64 {
	return t.fontSize()
}

// BaseFontSize returns the font size at zoom ratio 1.
func (t *Text) BaseFontSize() float64 {
	return t.baseFontSize
}

// SetBaseFontSize changes the font size at zoom ratio 1 and pushes the
// resulting running size.
func (t *Text) SetBaseFontSize(size float64) {
	t.baseFontSize = size
	t.pushFont()
}

// Text returns the displayed string.
func (t *Text) Text() string {
	return t.text
}

// SetText replaces the displayed string.
func (t *Text) SetText(s string) {
	t.text = s
	if t.items != nil {
		t.surface().ConfigureItem(t.items[0], Attrs{AttrText: s})
	}
}

// Zoom scales the box like any element and rescales the font by the
// geometric mean of the ratios.
func (t *Text) Zoom(r Vec2, zoomPosition, zoomSize bool) {
	t.element.Zoom(r, zoomPosition, zoomSize)
	if zoomSize {
		t.pushFont()
	}
}

func (t *Text) pushFont() {
	if t.items == nil {
		return
	}
	t.surface().ConfigureItem(t.items[0], Attrs{AttrFontSize: t.fontSize()})
}
