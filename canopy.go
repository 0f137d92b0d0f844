package canopy

import (
	"errors"
	"fmt"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and zoom ratios
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Mul returns the component-wise product of v and r.
func (v Vec2) Mul(r Vec2) Vec2 {
	return Vec2{v.X * r.X, v.Y * r.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// unitRatio is the identity zoom ratio.
var unitRatio = Vec2{1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and o. A zero
// rectangle is treated as empty.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Anchor names the reference point of a box that its stored position refers to.
type Anchor uint8

const (
	AnchorNW     Anchor = iota // top-left corner (default)
	AnchorN                    // middle of the top edge
	AnchorNE                   // top-right corner
	AnchorW                    // middle of the left edge
	AnchorCenter               // center of the box
	AnchorE                    // middle of the right edge
	AnchorSW                   // bottom-left corner
	AnchorS                    // middle of the bottom edge
	AnchorSE                   // bottom-right corner
	numAnchors
)

var anchorNames = [numAnchors]string{"nw", "n", "ne", "w", "center", "e", "sw", "s", "se"}

// ErrUnknownAnchor is returned when an anchor name is not one of the nine
// recognized values.
var ErrUnknownAnchor = errors.New("unknown anchor")

// ParseAnchor converts a compass name ("nw", "n", ..., "center", ..., "se")
// to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if s == name {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("canopy: parse anchor %q: %w", s, ErrUnknownAnchor)
}

// String returns the compass name of the anchor.
func (a Anchor) String() string {
	if a >= numAnchors {
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
	return anchorNames[a]
}

// Offset returns the distance from the top-left corner of a box of the given
// size to the anchor point. Panics on an invalid anchor.
func (a Anchor) Offset(size Vec2) Vec2 {
	if a >= numAnchors {
		panic(fmt.Sprintf("canopy: invalid anchor %d", uint8(a)))
	}
	col, row := float64(a%3), float64(a/3)
	return Vec2{size.X * col / 2, size.Y * row / 2}
}

// TopLeft returns the top-left corner of a box of the given size whose anchor
// point sits at position.
func (a Anchor) TopLeft(position, size Vec2) Vec2 {
	return position.Sub(a.Offset(size))
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
