package canopy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed style color: an sRGB color plus straight alpha in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The empty string is
// not a color (it means transparent) and reports false.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, false
		}
		return Color{Color: c, A: float64(a) / 255}, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{Color: c, A: 1}, true
}

// MustParseColor is like ParseColor but panics on malformed input.
func MustParseColor(s string) Color {
	c, ok := ParseColor(s)
	if !ok {
		panic(fmt.Sprintf("canopy: invalid color %q", s))
	}
	return c
}

// Over composites c onto an opaque background and returns an opaque color.
// Surfaces without native alpha blending get their translucency this way.
func (c Color) Over(bg Color) Color {
	if c.A >= 1 {
		return Color{Color: c.Color, A: 1}
	}
	return Color{Color: bg.Color.BlendRgb(c.Color, c.A), A: 1}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when translucent.
func (c Color) Hex() string {
	if c.A >= 1 {
		return c.Color.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Color.Hex(), uint8(c.A*255+0.5))
}

// Lerp interpolates channel-wise between c and to. t=0 yields c, t=1 yields to.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		Color: c.Color.BlendRgb(to.Color, t),
		A:     c.A + (to.A-c.A)*t,
	}
}

// colorAttr reports whether a render attribute holds a color.
func colorAttr(attr string) bool {
	return attr == AttrFill || attr == AttrOutline
}

// GradientItem animates one color attribute of a render item from one color
// to another. Both colors are composited over bg first. Each frame writes the
// interpolated color; the last frame writes exactly the target.
func GradientItem(loop *Loop, s Surface, id ItemID, attr string, from, to, bg Color, duration time.Duration, fps int) *Animation {
	from, to = from.Over(bg), to.Over(bg)
	a := NewAnimation(loop, duration, func(k float64) {
		s.ConfigureItem(id, Attrs{attr: from.Lerp(to, k).Hex()})
	})
	if fps > 0 {
		a.FPS = fps
	}
	return a
}
