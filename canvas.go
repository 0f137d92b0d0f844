package canopy

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a canvas is resized to a non-positive size.
var ErrInvalidSize = errors.New("invalid canvas size")

// Expand selects which axes of a canvas follow a resize.
type Expand uint8

const (
	ExpandXY   Expand = iota // both axes (default)
	ExpandX                  // width only
	ExpandY                  // height only
	ExpandNone               // neither, the canvas keeps its initial size
)

// KeepRatio forces both axes of a canvas to the same ratio.
type KeepRatio uint8

const (
	KeepNone KeepRatio = iota // axes scale independently (default)
	KeepMin                   // both axes take the smaller ratio
	KeepMax                   // both axes take the larger ratio
)

// CanvasConfig is the layout policy of a canvas.
type CanvasConfig struct {
	// Name identifies the canvas in logs and errors.
	Name string
	// Expand and KeepRatio filter the requested ratio.
	Expand    Expand
	KeepRatio KeepRatio
	// FreeAnchor moves a nested canvas proportionally when its parent
	// resizes. Otherwise its anchor point stays put.
	FreeAnchor bool
	// Anchor selects which point of a nested canvas its position refers to.
	Anchor Anchor
	// Background fills the canvas. Nested canvases draw it as one rectangle
	// item; an empty value inherits the parent's background.
	Background string
}

type attrKey struct {
	id   ItemID
	attr string
}

// Canvas is the scaling root of a widget tree. It owns top-level widgets and
// nested canvases, remembers the size of its first layout and is the only
// component that starts a zoom pass.
type Canvas struct {
	// Name identifies the canvas in logs and errors.
	Name string

	env     *Env
	surface Surface
	parent  *Canvas
	cfg     CanvasConfig

	position     Vec2 // anchor point in parent coordinates
	initPosition Vec2
	size         Vec2
	initSize     Vec2
	ratio        Vec2
	laidOut      bool

	canvases []*Canvas
	widgets  []*Widget

	background   ItemID
	hasBg        bool
	bindings     []BindingID
	anims        map[attrKey]*Animation
	pendingInput []Event
	injectHeld   bool
	destroyed    bool
}

// NewCanvas creates a root canvas drawing on s and binds it to the
// surface's events. Its initial size is captured by the first Resize.
func NewCanvas(env *Env, s Surface, cfg CanvasConfig) *Canvas {
	if env == nil || s == nil {
		panic("canopy: canvas requires an env and a surface")
	}
	c := &Canvas{
		Name:    cfg.Name,
		env:     env,
		surface: s,
		cfg:     cfg,
		ratio:   unitRatio,
		anims:   make(map[attrKey]*Animation),
	}
	if c.Name == "" {
		c.Name = "root"
	}
	for k := range numEventKinds {
		c.bindings = append(c.bindings, s.Bind(k, func(ev *Event) { c.Dispatch(ev) }))
	}
	return c
}

// NewCanvas creates a nested canvas sharing c's surface. position is its
// anchor point in c's coordinates and size its initial size, both in c's
// design units. When c has already been resized the nested canvas is laid
// out to match at once.
func (c *Canvas) NewCanvas(position, size Vec2, cfg CanvasConfig) *Canvas {
	if c.destroyed {
		panic("canopy: canvas added to destroyed canvas")
	}
	if cfg.Anchor >= numAnchors {
		panic(fmt.Sprintf("canopy: invalid anchor %d", uint8(cfg.Anchor)))
	}
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("canopy: nested canvas size must be positive, got (%g, %g)", size.X, size.Y))
	}
	n := &Canvas{
		Name:         cfg.Name,
		env:          c.env,
		surface:      c.surface,
		parent:       c,
		cfg:          cfg,
		position:     position,
		initPosition: position,
		size:         size,
		initSize:     size,
		ratio:        unitRatio,
		laidOut:      true,
		anims:        make(map[attrKey]*Animation),
	}
	if n.Name == "" {
		n.Name = fmt.Sprintf("%s/%d", c.Name, len(c.canvases))
	}
	if cfg.Background != "" {
		n.background = c.surface.CreateItem(KindRectangle, boxPoints(n.Rect()), Attrs{
			AttrFill: cfg.Background, AttrOutline: "", AttrWidth: 0.0,
		})
		n.hasBg = true
	}
	c.canvases = append(c.canvases, n)
	if c.ratio != unitRatio {
		n.follow(c.ratio)
	}
	return n
}

// Env returns the environment the canvas was built from.
func (c *Canvas) Env() *Env { return c.env }

// Surface returns the drawing target.
func (c *Canvas) Surface() Surface { return c.surface }

// Parent returns the enclosing canvas, or nil for a root canvas.
func (c *Canvas) Parent() *Canvas { return c.parent }

// Config returns the layout policy.
func (c *Canvas) Config() CanvasConfig { return c.cfg }

// Size returns the current size.
func (c *Canvas) Size() Vec2 { return c.size }

// InitSize returns the size captured at the first layout.
func (c *Canvas) InitSize() Vec2 { return c.initSize }

// Position returns a nested canvas's anchor point in parent coordinates.
func (c *Canvas) Position() Vec2 { return c.position }

// Ratio returns size / initSize, or (1, 1) before the first layout.
func (c *Canvas) Ratio() Vec2 { return c.ratio }

// LaidOut reports whether the initial size has been captured.
func (c *Canvas) LaidOut() bool { return c.laidOut }

// Origin returns the canvas's top-left corner in surface coordinates.
func (c *Canvas) Origin() Vec2 {
	if c.parent == nil {
		return Vec2{}
	}
	return c.parent.Origin().Add(c.cfg.Anchor.TopLeft(c.position, c.size))
}

// Rect returns the canvas's box in surface coordinates.
func (c *Canvas) Rect() Rect {
	o := c.Origin()
	return Rect{o.X, o.Y, c.size.X, c.size.Y}
}

// Widgets returns the top-level widgets. The returned slice MUST NOT be
// mutated.
func (c *Canvas) Widgets() []*Widget { return c.widgets }

// Canvases returns the nested canvases. The returned slice MUST NOT be
// mutated.
func (c *Canvas) Canvases() []*Canvas { return c.canvases }

// --- Layout ---

// Resize lays the canvas out at w×h. The first call only records the
// initial size. Later calls filter the requested ratio through the canvas's
// policy, zoom every top-level widget exactly once by the change since the
// previous layout and re-lay out every nested canvas.
func (c *Canvas) Resize(w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("canopy: resize %s to %gx%g: %w", c.Name, w, h, ErrInvalidSize)
	}
	if c.destroyed {
		return nil
	}
	if !c.laidOut {
		c.initSize = Vec2{w, h}
		c.size = c.initSize
		c.initPosition = c.position
		c.laidOut = true
		if c.env.debug {
			c.env.Logger.Debug("layout", "canvas", c.Name, "size", c.size)
		}
		return nil
	}
	c.relayout(Vec2{w / c.initSize.X, h / c.initSize.Y})
	return nil
}

// policy applies KeepRatio and then Expand to a requested ratio.
func (c *Canvas) policy(r Vec2) Vec2 {
	switch c.cfg.KeepRatio {
	case KeepMin:
		m := min(r.X, r.Y)
		r = Vec2{m, m}
	case KeepMax:
		m := max(r.X, r.Y)
		r = Vec2{m, m}
	}
	switch c.cfg.Expand {
	case ExpandX:
		r.Y = 1
	case ExpandY:
		r.X = 1
	case ExpandNone:
		r = unitRatio
	}
	return r
}

func (c *Canvas) relayout(requested Vec2) {
	r := c.policy(requested)
	size := c.initSize.Mul(r)
	rel := Vec2{size.X / c.size.X, size.Y / c.size.Y}
	c.size = size
	c.ratio = r
	if c.env.debug {
		c.env.Logger.Debug("zoom", "canvas", c.Name, "ratio", r, "relative", rel, "widgets", len(c.widgets))
	}
	if c.hasBg {
		c.surface.SetCoords(c.background, boxPoints(c.Rect()))
	}
	// Widgets are zoomed even when rel is (1, 1) so their items follow a
	// moved origin.
	for _, w := range append([]*Widget(nil), c.widgets...) {
		w.Zoom(rel, true, true)
	}
	for _, n := range c.canvases {
		n.follow(r)
	}
}

// follow re-lays out a nested canvas after its parent's ratio changed.
func (c *Canvas) follow(parentRatio Vec2) {
	if c.cfg.FreeAnchor {
		c.position = c.initPosition.Mul(parentRatio)
	}
	c.relayout(parentRatio)
}

// --- Events ---

// Dispatch delivers ev to the canvas's widgets, topmost first: nested
// canvases before the canvas's own widgets, later widgets before earlier
// ones. A widget that consumes the event and captures events stops it, except
// for motion, drag, release and leave events, which continue to the widgets
// underneath marked as claimed so they can drop their hover or pressed state.
// Returns whether any capturing widget consumed the event.
func (c *Canvas) Dispatch(ev *Event) bool {
	if c.destroyed {
		return false
	}
	if c.parent != nil && ev.Kind.isPointer() && !c.Rect().Contains(ev.X, ev.Y) {
		if !ev.Kind.passesClaimed() {
			return false
		}
		if !ev.Claimed {
			claimed := *ev
			claimed.Claimed = true
			ev = &claimed
		}
	}
	consumed := false
	// capture reports whether propagation stops.
	capture := func() bool {
		consumed = true
		if !ev.Kind.passesClaimed() {
			return true
		}
		if !ev.Claimed {
			claimed := *ev
			claimed.Claimed = true
			ev = &claimed
		}
		return false
	}
	nested := append([]*Canvas(nil), c.canvases...)
	for i := len(nested) - 1; i >= 0; i-- {
		if nested[i].Dispatch(ev) && capture() {
			return true
		}
	}
	widgets := append([]*Widget(nil), c.widgets...)
	for i := len(widgets) - 1; i >= 0; i-- {
		w := widgets[i]
		if w.destroyed || !w.dispatch(ev) || !w.captureEvents {
			continue
		}
		if c.env.debug {
			c.env.Logger.Debug("consumed", "event", ev.Kind, "widget", w.Type, "id", w.ID)
		}
		if capture() {
			return true
		}
	}
	return consumed
}

// dispatch delivers ev to the widget's nested widgets, topmost first, then to
// its own feature.
func (w *Widget) dispatch(ev *Event) bool {
	consumed := false
	children := append([]*Widget(nil), w.children...)
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if child.destroyed || !child.dispatch(ev) || !child.captureEvents {
			continue
		}
		consumed = true
		if !ev.Kind.passesClaimed() {
			return true
		}
		if !ev.Claimed {
			claimed := *ev
			claimed.Claimed = true
			ev = &claimed
		}
	}
	if w.feature.Dispatch(ev) {
		consumed = true
	}
	return consumed
}

// --- Attribute animations ---

// startAttr starts a on one attribute of one item, stopping whatever
// animation was writing it. An OnEnd already set on a still runs, after the
// animation leaves the registry.
func (c *Canvas) startAttr(id ItemID, attr string, a *Animation) {
	k := attrKey{id, attr}
	c.stopAttr(id, attr)
	c.anims[k] = a
	onEnd := a.OnEnd
	a.OnEnd = func() {
		if c.anims[k] == a {
			delete(c.anims, k)
		}
		if onEnd != nil {
			onEnd()
		}
	}
	a.Start(0)
}

func (c *Canvas) stopAttr(id ItemID, attr string) {
	k := attrKey{id, attr}
	if a, ok := c.anims[k]; ok {
		a.Stop()
		delete(c.anims, k)
	}
}

// stopItem stops every animation writing to an item.
func (c *Canvas) stopItem(id ItemID) {
	for k, a := range c.anims {
		if k.id == id {
			a.Stop()
			delete(c.anims, k)
		}
	}
}

// ActiveAnimations returns the number of attribute animations still running.
func (c *Canvas) ActiveAnimations() int {
	return len(c.anims)
}

// backgroundColor is the opaque color translucent styles are composited
// over: the nearest canvas background up the tree, then the Env's.
func (c *Canvas) backgroundColor() Color {
	for p := c; p != nil; p = p.parent {
		if col, ok := ParseColor(p.cfg.Background); ok {
			return Color{Color: col.Color, A: 1}
		}
	}
	if col, ok := ParseColor(c.env.Background()); ok {
		return Color{Color: col.Color, A: 1}
	}
	return MustParseColor("#FFFFFF")
}

// --- Lifecycle ---

// Destroy destroys nested canvases and widgets, newest first, removes the
// background item and detaches the canvas from its parent or surface.
func (c *Canvas) Destroy() {
	if c.destroyed {
		return
	}
	for len(c.canvases) > 0 {
		c.canvases[len(c.canvases)-1].Destroy()
	}
	for len(c.widgets) > 0 {
		c.widgets[len(c.widgets)-1].Destroy()
	}
	for k, a := range c.anims {
		a.Stop()
		delete(c.anims, k)
	}
	if c.hasBg {
		c.surface.DeleteItem(c.background)
		c.hasBg = false
	}
	for _, id := range c.bindings {
		c.surface.Unbind(id)
	}
	c.bindings = nil
	if c.parent != nil {
		for i, n := range c.parent.canvases {
			if n == c {
				c.parent.canvases = append(c.parent.canvases[:i], c.parent.canvases[i+1:]...)
				break
			}
		}
	}
	c.pendingInput = nil
	c.destroyed = true
}
