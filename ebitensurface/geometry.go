package ebitensurface

import (
	"math"

	"github.com/phanxgames/canopy"
)

// curveSegments is the number of segments used for a full ellipse. Partial
// arcs use a proportional share, never fewer than two.
const curveSegments = 48

// boxOf normalizes a two-point bounding box.
func boxOf(pts []canopy.Vec2) (canopy.Rect, bool) {
	if len(pts) < 2 {
		return canopy.Rect{}, false
	}
	x0, x1 := min(pts[0].X, pts[1].X), max(pts[0].X, pts[1].X)
	y0, y1 := min(pts[0].Y, pts[1].Y), max(pts[0].Y, pts[1].Y)
	return canopy.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// rectPoints returns the corners of r clockwise from the top-left.
func rectPoints(r canopy.Rect) []canopy.Vec2 {
	return []canopy.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// ellipsePoints approximates the ellipse inscribed in r.
func ellipsePoints(r canopy.Rect) []canopy.Vec2 {
	return arcPoints(r, 0, 360)
}

// arcPoints samples the ellipse inscribed in r from start through
// start+extent. Angles are degrees counterclockwise from three o'clock, with
// screen y growing downward.
func arcPoints(r canopy.Rect, start, extent float64) []canopy.Vec2 {
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	rx, ry := r.Width/2, r.Height/2
	n := max(2, int(math.Ceil(curveSegments*math.Abs(extent)/360)))
	pts := make([]canopy.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		a := (start + extent*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, canopy.Vec2{X: cx + rx*math.Cos(a), Y: cy - ry*math.Sin(a)})
	}
	if math.Abs(extent) >= 360 {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// piePoints is the closed outline of a pie slice: the center followed by the
// arc.
func piePoints(r canopy.Rect, start, extent float64) []canopy.Vec2 {
	c := canopy.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
	return append([]canopy.Vec2{c}, arcPoints(r, start, extent)...)
}

// fanIndices triangulates a convex polygon of n vertices as a fan around the
// first vertex.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	idx := make([]uint16, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, uint16(i), uint16(i+1))
	}
	return idx
}

// itemColor parses a color attribute. Empty and malformed values are
// transparent and report false.
func itemColor(it *canopy.Item, key string) (canopy.Color, bool) {
	s := it.StringAttr(key)
	if s == "" {
		return canopy.Color{}, false
	}
	return canopy.ParseColor(s)
}
