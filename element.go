package canopy

import "math"

// Element is an atomic visual primitive owned by exactly one Widget. Its
// render items are created once by Display; afterward only their
// coordinates and attributes change, never their number.
type Element interface {
	// Widget returns the owning widget.
	Widget() *Widget
	// Component returns the theme component name the element styles from.
	Component() string
	// Items returns the element's render item handles.
	Items() []ItemID
	// Styles returns the resolved state → style table.
	Styles() StateStyles
	// Position returns the element's offset from the widget's top-left corner.
	Position() Vec2
	// Size returns the element's current size.
	Size() Vec2
	// Rect returns the element's box in surface coordinates.
	Rect() Rect
	// Display creates the render items. Called once by the constructor.
	Display()
	// Coords pushes the current geometry to every render item.
	Coords()
	// Move translates the render items by (dx, dy).
	Move(dx, dy float64)
	// Zoom scales the element's offset and/or size and pushes the result.
	Zoom(r Vec2, zoomPosition, zoomSize bool)
	// Configure applies a style, animating color changes unless noDelay is
	// set or gradients are off.
	Configure(style Style, noDelay bool)
	// Detect reports whether the surface point (x, y) hits the element.
	Detect(x, y float64) bool
	// SetVisible shows or hides every render item.
	SetVisible(visible bool)
	// Destroy stops animations on the element's items and deletes them.
	Destroy()

	base() *element
}

// ElementOptions configures an element at construction.
type ElementOptions struct {
	// Component names the theme entry to resolve styles from. Empty means
	// only Styles are used.
	Component string
	// Styles overrides theme styles per state and attribute.
	Styles StateStyles
	// ExtraAttrs are set on every render item at creation and never styled.
	ExtraAttrs Attrs
	// NoGradient disables animated style transitions for this element.
	NoGradient bool
}

// part describes one render item of an element: its kind, which style keys
// it owns and the item attribute each maps to, and constant creation attrs.
type part struct {
	kind  ItemKind
	attrs map[string]string
	fixed Attrs
}

// Common attribute ownership tables.
var (
	fillOutlineWidth = map[string]string{AttrFill: AttrFill, AttrOutline: AttrOutline, AttrWidth: AttrWidth}
	fillOnly         = map[string]string{AttrFill: AttrFill}
	fillWidth        = map[string]string{AttrFill: AttrFill, AttrWidth: AttrWidth}
	outlineAsFill    = map[string]string{AttrOutline: AttrFill, AttrWidth: AttrWidth}
	outlineWidth     = map[string]string{AttrOutline: AttrOutline, AttrWidth: AttrWidth}
)

// element holds the state shared by every Element kind.
type element struct {
	widget    *Widget
	component string
	override  StateStyles
	styles    StateStyles
	extra     Attrs
	animate   bool

	position Vec2 // offset from the widget's top-left corner
	size     Vec2
	scale    Vec2 // cumulative zoom factors since construction

	parts  []part
	items  []ItemID
	layout func(r Rect, scale Vec2) [][]Vec2
	hit    func(r Rect, scale Vec2, x, y float64) bool
}

func (e *element) init(w *Widget, position, size Vec2, opts ElementOptions, parts []part) {
	if w.destroyed {
		panic("canopy: element added to destroyed widget")
	}
	e.widget = w
	e.component = opts.Component
	e.override = opts.Styles
	e.extra = opts.ExtraAttrs
	e.animate = !opts.NoGradient
	e.position = position
	e.size = size
	e.scale = unitRatio
	e.parts = parts
	e.styles = resolveStyles(w.canvas.env, w.Type, e.component, e.override)
}

// attach registers the element with its widget and creates its items.
func attach(e Element) {
	b := e.base()
	b.widget.elements = append(b.widget.elements, e)
	e.Display()
}

func (e *element) base() *element { return e }
func (e *element) Widget() *Widget { return e.widget }
func (e *element) Component() string { return e.component }
func (e *element) Items() []ItemID { return e.items }
func (e *element) Styles() StateStyles { return e.styles }
func (e *element) Position() Vec2 { return e.position }
func (e *element) Size() Vec2 { return e.size }
func (e *element) surface() Surface { return e.widget.canvas.surface }
func (e *element) restyle() {
	e.styles = resolveStyles(e.widget.canvas.env, e.widget.Type, e.component, e.override)
}

func (e *element) Rect() Rect {
	tl := e.widget.canvas.Origin().Add(e.widget.TopLeft()).Add(e.position)
	return Rect{tl.X, tl.Y, e.size.X, e.size.Y}
}

// Display creates one render item per part, styled for the widget's current
// state. Calling it again is a no-op.
func (e *element) Display() {
	if e.items != nil {
		return
	}
	s := e.surface()
	style := e.styles[e.widget.state]
	pts := e.layout(e.Rect(), e.scale)
	e.items = make([]ItemID, len(e.parts))
	for i, p := range e.parts {
		attrs := make(Attrs, len(p.fixed)+len(e.extra)+len(p.attrs))
		for k, v := range e.extra {
			attrs[k] = v
		}
		for k, v := range p.fixed {
			attrs[k] = v
		}
		for key, attr := range p.attrs {
			if v, ok := style[key]; ok {
				attrs[attr] = v
			}
		}
		e.items[i] = s.CreateItem(p.kind, pts[i], attrs)
	}
}

func (e *element) Coords() {
	s := e.surface()
	pts := e.layout(e.Rect(), e.scale)
	for i, id := range e.items {
		s.SetCoords(id, pts[i])
	}
}

func (e *element) Move(dx, dy float64) {
	s := e.surface()
	for _, id := range e.items {
		s.MoveItem(id, dx, dy)
	}
}

func (e *element) Zoom(r Vec2, zoomPosition, zoomSize bool) {
	if zoomPosition {
		e.position = e.position.Mul(r)
	}
	if zoomSize {
		e.size = e.size.Mul(r)
		e.scale = e.scale.Mul(r)
	}
	e.Coords()
}

func (e *element) Detect(x, y float64) bool {
	if e.hit != nil {
		return e.hit(e.Rect(), e.scale, x, y)
	}
	return e.Rect().Contains(x, y)
}

func (e *element) SetVisible(visible bool) {
	s := e.surface()
	for _, id := range e.items {
		s.ConfigureItem(id, Attrs{AttrHidden: !visible})
	}
}

func (e *element) Destroy() {
	c := e.widget.canvas
	s := c.surface
	for _, id := range e.items {
		c.stopItem(id)
		s.DeleteItem(id)
	}
	e.items = nil
}

// Configure intersects style with the attributes each render item owns. Color
// attributes fade from their current value when gradients are enabled on both
// the widget and the element; everything else is written at once. Either way
// an animation still writing an attribute is stopped first.
func (e *element) Configure(style Style, noDelay bool) {
	if e.items == nil {
		return
	}
	c := e.widget.canvas
	s := c.surface
	fade := e.animate && e.widget.gradient && !noDelay && c.env.GradientDuration > 0
	for i, p := range e.parts {
		id := e.items[i]
		var direct Attrs
		for key, val := range style {
			attr, ok := p.attrs[key]
			if !ok {
				continue
			}
			if fade && colorAttr(attr) && e.fade(id, attr, val) {
				continue
			}
			c.stopAttr(id, attr)
			if direct == nil {
				direct = make(Attrs, len(style))
			}
			direct[attr] = val
		}
		if direct != nil {
			s.ConfigureItem(id, direct)
		}
	}
}

// fade starts a gradient animation on one color attribute. The last frame
// writes an opaque target exactly as the style spells it. It reports false
// when either end is not a color, or both ends look the same, leaving the
// caller to write the value directly.
func (e *element) fade(id ItemID, attr string, val any) bool {
	target, _ := val.(string)
	to, ok := ParseColor(target)
	if !ok {
		return false
	}
	c := e.widget.canvas
	cur, _ := c.surface.Attr(id, attr)
	current, _ := cur.(string)
	from, ok := ParseColor(current)
	if !ok {
		return false
	}
	bg := c.backgroundColor()
	if from.Over(bg).Hex() == to.Over(bg).Hex() {
		return false
	}
	env := c.env
	a := GradientItem(env.Loop, c.surface, id, attr, from, to, bg, env.GradientDuration, env.FPS)
	if to.A >= 1 {
		frame := a.Callback
		a.Callback = func(k float64) {
			if k >= 1 {
				c.surface.ConfigureItem(id, Attrs{attr: target})
				return
			}
			frame(k)
		}
	}
	c.startAttr(id, attr, a)
	return true
}

// ellipseHit reports whether (x, y) lies inside the ellipse inscribed in r.
func ellipseHit(r Rect, x, y float64) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	rx, ry := r.Width/2, r.Height/2
	dx := (x - r.X - rx) / rx
	dy := (y - r.Y - ry) / ry
	return dx*dx+dy*dy <= 1
}

// meanScale is the geometric mean of the two zoom factors, the factor a
// length with no preferred axis scales by.
func meanScale(s Vec2) float64 {
	return math.Sqrt(s.X * s.Y)
}
