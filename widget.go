package canopy

import "fmt"

// Common widget state names. Widgets are free to use any other strings,
// including compound states such as "hover-on".
const (
	StateNormal   = "normal"
	StateHover    = "hover"
	StateActive   = "active"
	StateDisabled = "disabled"
)

// widgetIDCounter is a plain counter (no atomic, canopy is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// WidgetOptions configures a widget at construction.
type WidgetOptions struct {
	// Type is the widget type the theme is keyed by, e.g. "Button".
	Type string
	// Anchor selects which point of the box the position refers to.
	Anchor Anchor
	// State is the initial state. Defaults to StateNormal.
	State string
	// PassEvents lets events the widget consumed continue to widgets
	// underneath it.
	PassEvents bool
	// NoGradient turns off animated style transitions for the widget.
	NoGradient bool
	// Behavior is the widget's event handler set. Defaults to Inert.
	Behavior *Behavior
}

// Widget is a composite box that owns Elements, nested Widgets and exactly
// one Feature. Positions are canvas-local; the stored position is the anchor
// point of the box.
type Widget struct {
	// Identity
	ID   uint32
	Type string

	// Hierarchy
	canvas   *Canvas
	parent   *Widget
	nested   bool
	elements []Element
	children []*Widget
	feature  *Feature

	// Geometry
	position Vec2
	size     Vec2
	anchor   Anchor

	// Interaction
	state         string
	savedState    string
	captureEvents bool
	gradient      bool
	disabled      bool
	hidden        bool
	destroyed     bool

	// UserData is free for the application.
	UserData any

	hooks      []func(w *Widget, state string)
	onDestroy  []func(w *Widget)
	animations []*Animation
	zooms      int
}

func newWidget(c *Canvas, position, size Vec2, opts WidgetOptions) *Widget {
	if c.destroyed {
		panic("canopy: widget added to destroyed canvas")
	}
	if opts.Anchor >= numAnchors {
		panic(fmt.Sprintf("canopy: invalid anchor %d", uint8(opts.Anchor)))
	}
	state := opts.State
	if state == "" {
		state = StateNormal
	}
	w := &Widget{
		ID:            nextWidgetID(),
		Type:          opts.Type,
		canvas:        c,
		position:      position,
		size:          size,
		anchor:        opts.Anchor,
		state:         state,
		captureEvents: !opts.PassEvents,
		gradient:      !opts.NoGradient,
	}
	NewFeature(w, opts.Behavior)
	c.env.register(w)
	return w
}

// NewWidget creates a top-level widget on c. Its position is the anchor
// point in c's local coordinates.
func NewWidget(c *Canvas, position, size Vec2, opts WidgetOptions) *Widget {
	w := newWidget(c, position, size, opts)
	c.widgets = append(c.widgets, w)
	if c.env.debug {
		debugCheckChildCount(c.env, c.Name, len(c.widgets))
	}
	return w
}

// NewNestedWidget creates a widget owned by parent. position is the anchor
// point relative to the parent's current top-left corner. A nested widget is
// only ever zoomed, updated and destroyed through its parent.
func NewNestedWidget(parent *Widget, position, size Vec2, opts WidgetOptions) *Widget {
	if parent.canvas.env.debug {
		debugCheckDestroyed(parent, "NewNestedWidget")
	}
	if parent.destroyed {
		panic("canopy: nested widget added to destroyed widget")
	}
	w := newWidget(parent.canvas, parent.TopLeft().Add(position), size, opts)
	w.parent = parent
	w.nested = true
	parent.children = append(parent.children, w)
	if parent.canvas.env.debug {
		debugCheckTreeDepth(w)
		debugCheckChildCount(parent.canvas.env, parent.Type, len(parent.children))
	}
	return w
}

// Canvas returns the canvas the widget is drawn on.
func (w *Widget) Canvas() *Canvas { return w.canvas }

// Parent returns the owning widget of a nested widget, or nil.
func (w *Widget) Parent() *Widget { return w.parent }

// Nested reports whether the widget is owned by another widget.
func (w *Widget) Nested() bool { return w.nested }

// Feature returns the widget's event state machine.
func (w *Widget) Feature() *Feature { return w.feature }

// Elements returns the owned elements. The returned slice MUST NOT be mutated.
func (w *Widget) Elements() []Element { return w.elements }

// Children returns the nested widgets. The returned slice MUST NOT be mutated.
func (w *Widget) Children() []*Widget { return w.children }

// Position returns the anchor point in canvas-local coordinates.
func (w *Widget) Position() Vec2 { return w.position }

// Size returns the widget's box size.
func (w *Widget) Size() Vec2 { return w.size }

// Anchor returns the widget's anchor.
func (w *Widget) Anchor() Anchor { return w.anchor }

// Offset returns the distance from the box's top-left corner to its anchor
// point.
func (w *Widget) Offset() Vec2 { return w.anchor.Offset(w.size) }

// TopLeft returns the box's top-left corner in canvas-local coordinates.
func (w *Widget) TopLeft() Vec2 { return w.anchor.TopLeft(w.position, w.size) }

// Rect returns the widget's box in surface coordinates.
func (w *Widget) Rect() Rect {
	tl := w.canvas.Origin().Add(w.TopLeft())
	return Rect{tl.X, tl.Y, w.size.X, w.size.Y}
}

// State returns the current state.
func (w *Widget) State() string { return w.state }

// CaptureEvents reports whether consumed events stop at this widget.
func (w *Widget) CaptureEvents() bool { return w.captureEvents }

// Gradient reports whether style transitions animate.
func (w *Widget) Gradient() bool { return w.gradient }

// SetGradient turns animated style transitions on or off.
func (w *Widget) SetGradient(enabled bool) { w.gradient = enabled }

// Disabled reports whether the widget is disabled.
func (w *Widget) Disabled() bool { return w.disabled }

// Hidden reports whether the widget was hidden with Disappear.
func (w *Widget) Hidden() bool { return w.hidden }

// Destroyed reports whether Destroy has been called.
func (w *Widget) Destroyed() bool { return w.destroyed }

// --- Geometry ---

// Move translates the widget, its elements and its nested widgets.
func (w *Widget) Move(dx, dy float64) {
	if w.canvas.env.debug {
		debugCheckDestroyed(w, "Move")
	}
	if w.destroyed {
		return
	}
	w.position = w.position.Add(Vec2{dx, dy})
	for _, el := range w.elements {
		el.Move(dx, dy)
	}
	for _, c := range w.children {
		c.Move(dx, dy)
	}
}

// MoveTo moves the widget so its anchor point lands on (x, y).
func (w *Widget) MoveTo(x, y float64) {
	w.Move(x-w.position.X, y-w.position.Y)
}

// Zoom multiplies the position (when zoomPosition) and the size (when
// zoomSize) by r, then forwards the same call to every element and nested
// widget. Panics when both flags are false or a ratio is not positive.
func (w *Widget) Zoom(r Vec2, zoomPosition, zoomSize bool) {
	checkZoom(r, zoomPosition, zoomSize)
	if w.canvas.env.debug {
		debugCheckDestroyed(w, "Zoom")
	}
	if w.destroyed {
		return
	}
	w.scaleSelf(r, zoomPosition, zoomSize)
	for _, c := range w.children {
		c.Zoom(r, zoomPosition, zoomSize)
	}
}

// ZoomFromCanvas is Zoom with the ratio taken from the canvas: the ratio
// between its current and initial size. Nested widgets go first and each
// derives the same canvas ratio. It brings a widget built in design
// coordinates up to a canvas that was already resized.
func (w *Widget) ZoomFromCanvas(zoomPosition, zoomSize bool) {
	r := w.canvas.Ratio()
	checkZoom(r, zoomPosition, zoomSize)
	if w.destroyed {
		return
	}
	for _, c := range w.children {
		c.ZoomFromCanvas(zoomPosition, zoomSize)
	}
	w.scaleSelf(r, zoomPosition, zoomSize)
}

func (w *Widget) scaleSelf(r Vec2, zoomPosition, zoomSize bool) {
	w.zooms++
	if zoomPosition {
		w.position = w.position.Mul(r)
	}
	if zoomSize {
		w.size = w.size.Mul(r)
	}
	for _, el := range w.elements {
		el.Zoom(r, zoomPosition, zoomSize)
	}
}

func checkZoom(r Vec2, zoomPosition, zoomSize bool) {
	if !zoomPosition && !zoomSize {
		panic("canopy: zoom with neither position nor size does nothing")
	}
	if r.X <= 0 || r.Y <= 0 {
		panic(fmt.Sprintf("canopy: zoom ratio must be positive, got (%g, %g)", r.X, r.Y))
	}
}

// Realize finishes a widget built in design coordinates: if the canvas has
// already been resized the widget is zoomed by the canvas ratio, then the
// current state's styles are applied without animation.
func (w *Widget) Realize() {
	if w.canvas.Ratio() != unitRatio {
		w.ZoomFromCanvas(true, true)
	}
	w.apply(w.state, true)
}

// --- State ---

// Update moves the widget to state. Nested widgets update first, then each
// element takes its style for state (elements without one are left alone).
// The new state is stored only after every element was configured, so
// handlers that read State during the update still see the previous one.
// Update hooks run last. A disabled widget ignores Update.
func (w *Widget) Update(state string, noDelay bool) {
	if w.canvas.env.debug {
		debugCheckDestroyed(w, "Update")
	}
	if w.destroyed || w.disabled {
		return
	}
	w.apply(state, noDelay)
}

func (w *Widget) apply(state string, noDelay bool) {
	if w.canvas.env.debug {
		w.canvas.env.Logger.Debug("update", "widget", w.Type, "id", w.ID, "from", w.state, "to", state)
	}
	for _, c := range w.children {
		c.Update(state, noDelay)
	}
	w.configure(state, noDelay)
	w.state = state
	for _, h := range w.hooks {
		h(w, state)
	}
}

func (w *Widget) configure(state string, noDelay bool) {
	for _, el := range w.elements {
		if style, ok := el.Styles()[state]; ok {
			el.Configure(style, noDelay)
		}
	}
}

// refreshStyle re-applies the current state's styles without animation,
// disabled or not. Theme switches use it.
func (w *Widget) refreshStyle() {
	w.configure(w.state, true)
}

// OnUpdate registers fn to run after every update with the new state.
func (w *Widget) OnUpdate(fn func(w *Widget, state string)) {
	w.hooks = append(w.hooks, fn)
}

// OnDestroy registers fn to run when the widget is destroyed, before its
// animations stop and its items are deleted.
func (w *Widget) OnDestroy(fn func(w *Widget)) {
	w.onDestroy = append(w.onDestroy, fn)
}

// SetDisabled disables or re-enables the widget and its nested widgets.
// Disabling saves the current state and shows StateDisabled; while disabled
// the widget ignores events and updates. Re-enabling restores the saved state.
func (w *Widget) SetDisabled(disabled bool) {
	if w.destroyed || w.disabled == disabled {
		return
	}
	for _, c := range w.children {
		c.SetDisabled(disabled)
	}
	if disabled {
		w.savedState = w.state
		w.apply(StateDisabled, false)
		w.disabled = true
		return
	}
	w.disabled = false
	restore := w.savedState
	w.savedState = ""
	w.apply(restore, false)
}

// Disappear hides or shows the widget, its elements and nested widgets.
// Hidden widgets ignore events.
func (w *Widget) Disappear(hidden bool) {
	if w.destroyed {
		return
	}
	w.hidden = hidden
	for _, el := range w.elements {
		el.SetVisible(!hidden)
	}
	for _, c := range w.children {
		c.Disappear(hidden)
	}
}

// Detect reports whether (x, y) in surface coordinates hits any element.
func (w *Widget) Detect(x, y float64) bool {
	for _, el := range w.elements {
		if el.Detect(x, y) {
			return true
		}
	}
	return false
}

// --- Events ---

// Bind registers an extra callback that runs after the feature's own
// handler for events of kind.
func (w *Widget) Bind(kind EventKind, fn func(*Event)) BindingID {
	return w.feature.bind(kind, fn)
}

// Unbind removes a callback registered with Bind. Reports whether it existed.
func (w *Widget) Unbind(id BindingID) bool {
	return w.feature.unbind(id)
}

// GenerateEvent dispatches ev straight to the widget's feature, bypassing
// hit testing on the canvas. Returns whether the event was consumed.
func (w *Widget) GenerateEvent(ev *Event) bool {
	return w.feature.Dispatch(ev)
}

// --- Lifecycle ---

// track records an animation writing to the widget so Destroy can stop it.
func (w *Widget) track(a *Animation) {
	live := w.animations[:0]
	for _, old := range w.animations {
		if old.Active() {
			live = append(live, old)
		}
	}
	for i := len(live); i < len(w.animations); i++ {
		w.animations[i] = nil
	}
	w.animations = append(live, a)
}

// Destroy runs the destroy hooks, stops every animation writing to the
// widget, destroys nested
// widgets, deletes the elements' render items and detaches the widget from
// its owner. Destroying twice is a no-op.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	hooks := w.onDestroy
	w.onDestroy = nil
	for _, fn := range hooks {
		fn(w)
	}
	for _, a := range w.animations {
		a.Stop()
	}
	w.animations = nil
	for len(w.children) > 0 {
		w.children[len(w.children)-1].Destroy()
	}
	for _, el := range w.elements {
		el.Destroy()
	}
	w.elements = nil
	if w.parent != nil {
		w.parent.children = removeWidget(w.parent.children, w)
	} else {
		w.canvas.widgets = removeWidget(w.canvas.widgets, w)
	}
	w.canvas.env.unregister(w)
	w.destroyed = true
	w.hooks = nil
	w.parent = nil
}

// removeWidget removes w from s without retaining a dangling pointer in the
// backing array.
func removeWidget(s []*Widget, w *Widget) []*Widget {
	for i, c := range s {
		if c == w {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}
