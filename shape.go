package canopy

import "fmt"

// ShapeKind defines the render items of a Shape and how they follow the
// shape's box.
type ShapeKind interface {
	parts() []part
	layout(r Rect, scale Vec2) [][]Vec2
	hit(r Rect, scale Vec2, x, y float64) bool
}

// Rectangle is a single rectangle item styled by fill, outline and width.
type Rectangle struct{}

func (Rectangle) parts() []part {
	return []part{{kind: KindRectangle, attrs: fillOutlineWidth}}
}

func (Rectangle) layout(r Rect, _ Vec2) [][]Vec2 {
	return [][]Vec2{boxPoints(r)}
}

func (Rectangle) hit(r Rect, _ Vec2, x, y float64) bool { return r.Contains(x, y) }

// Oval is a single ellipse item inscribed in the shape's box.
type Oval struct{}

func (Oval) parts() []part {
	return []part{{kind: KindOval, attrs: fillOutlineWidth}}
}

func (Oval) layout(r Rect, _ Vec2) [][]Vec2 {
	return [][]Vec2{boxPoints(r)}
}

func (Oval) hit(r Rect, _ Vec2, x, y float64) bool { return ellipseHit(r, x, y) }

// Line is a straight line from the box's top-left to its bottom-right corner.
// A zero height gives a horizontal rule. Its color is the style's fill.
type Line struct{}

func (Line) parts() []part {
	return []part{{kind: KindLine, attrs: fillWidth}}
}

func (Line) layout(r Rect, _ Vec2) [][]Vec2 {
	return [][]Vec2{boxPoints(r)}
}

func (Line) hit(Rect, Vec2, float64, float64) bool { return false }

// RoundRect is a rectangle with rounded corners built from fourteen items:
// two fill rectangles and four fill pie slices for the body, four lines and
// four arcs for the outline. Radius is in design units and scales with the
// smaller zoom axis.
type RoundRect struct {
	Radius float64
}

// Corner order used by every RoundRect part group: nw, ne, sw, se.
var roundRectArcStarts = [4]float64{90, 0, 180, 270}

func (rr RoundRect) parts() []part {
	ps := make([]part, 0, 14)
	noOutline := Attrs{AttrOutline: "", AttrWidth: 0.0}
	for range 2 {
		ps = append(ps, part{kind: KindRectangle, attrs: fillOnly, fixed: noOutline})
	}
	for _, start := range roundRectArcStarts {
		ps = append(ps, part{kind: KindArc, attrs: fillOnly, fixed: Attrs{
			AttrStart: start, AttrExtent: 90.0, AttrArcStyle: "pieslice", AttrOutline: "", AttrWidth: 0.0,
		}})
	}
	for range 4 {
		ps = append(ps, part{kind: KindLine, attrs: outlineAsFill})
	}
	for _, start := range roundRectArcStarts {
		ps = append(ps, part{kind: KindArc, attrs: outlineWidth, fixed: Attrs{
			AttrStart: start, AttrExtent: 90.0, AttrArcStyle: "arc",
		}})
	}
	return ps
}

func (rr RoundRect) radius(r Rect, scale Vec2) float64 {
	rad := rr.Radius * min(scale.X, scale.Y)
	return max(0, min(rad, r.Width/2, r.Height/2))
}

func (rr RoundRect) layout(r Rect, scale Vec2) [][]Vec2 {
	rad := rr.radius(r, scale)
	d := 2 * rad
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	corners := [4]Rect{
		{x0, y0, d, d},
		{x1 - d, y0, d, d},
		{x0, y1 - d, d, d},
		{x1 - d, y1 - d, d, d},
	}
	pts := make([][]Vec2, 0, 14)
	pts = append(pts,
		[]Vec2{{x0, y0 + rad}, {x1, y1 - rad}},
		[]Vec2{{x0 + rad, y0}, {x1 - rad, y1}},
	)
	for _, c := range corners {
		pts = append(pts, boxPoints(c))
	}
	pts = append(pts,
		[]Vec2{{x0 + rad, y0}, {x1 - rad, y0}},
		[]Vec2{{x1, y0 + rad}, {x1, y1 - rad}},
		[]Vec2{{x0, y0 + rad}, {x0, y1 - rad}},
		[]Vec2{{x0 + rad, y1}, {x1 - rad, y1}},
	)
	for _, c := range corners {
		pts = append(pts, boxPoints(c))
	}
	return pts
}

func (rr RoundRect) hit(r Rect, scale Vec2, x, y float64) bool {
	if !r.Contains(x, y) {
		return false
	}
	// Outside the corner squares the box test is exact.
	rad := rr.radius(r, scale)
	cx := min(max(x, r.X+rad), r.X+r.Width-rad)
	cy := min(max(y, r.Y+rad), r.Y+r.Height-rad)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= rad*rad
}

func boxPoints(r Rect) []Vec2 {
	return []Vec2{{r.X, r.Y}, {r.X + r.Width, r.Y + r.Height}}
}

// Shape is a geometric Element made of one or more render items that always
// move and scale together.
type Shape struct {
	element
	kind ShapeKind
}

// NewShape creates a shape of the given kind at position (relative to the
// widget's top-left corner) with the given size, and displays it.
func NewShape(w *Widget, kind ShapeKind, position, size Vec2, opts ElementOptions) *Shape {
	if kind == nil {
		panic("canopy: nil shape kind")
	}
	sh := &Shape{kind: kind}
	sh.init(w, position, size, opts, kind.parts())
	sh.layout = kind.layout
	sh.hit = kind.hit
	attach(sh)
	return sh
}

// Kind returns the shape's kind.
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// String describes the shape for debug output.
func (s *Shape) String() string {
	return fmt.Sprintf("Shape(%T %s items=%d)", s.kind, s.component, len(s.items))
}
