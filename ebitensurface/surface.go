// Package ebitensurface renders a canopy surface with Ebitengine and feeds
// Ebitengine input back into it as canopy events.
//
// Surface keeps the retained items in a canopy.MemorySurface and redraws all
// of them every frame, bottom to top. Game wires a Surface, a root canvas and
// an Env's timer loop into an ebiten.Game.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/canopy"
)

// fontFiles maps font family names to the bundled Go fonts. Unknown families
// fall back to "Go".
var fontFiles = map[string][]byte{
	"Go":      goregular.TTF,
	"Go Bold": gobold.TTF,
	"Go Mono": gomono.TTF,
}

type faceKey struct {
	family string
	size   float64
}

type cachedImage struct {
	src image.Image
	img *ebiten.Image
}

// Surface is a canopy.Surface drawn with Ebitengine.
type Surface struct {
	*canopy.MemorySurface

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	sources         map[string]*text.GoTextFaceSource
	faces           map[faceKey]*text.GoTextFace
	images          map[canopy.ItemID]cachedImage
	screenshotQueue []string
	onScreenshot    func(path string, err error)
}

// New creates an empty surface with the bundled fonts loaded.
func New() (*Surface, error) {
	s := &Surface{
		MemorySurface: canopy.NewMemorySurface(),
		ScreenshotDir: "screenshots",
		sources:       make(map[string]*text.GoTextFaceSource, len(fontFiles)),
		faces:         make(map[faceKey]*text.GoTextFace),
		images:        make(map[canopy.ItemID]cachedImage),
	}
	for name, ttf := range fontFiles {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load font %q: %w", name, err)
		}
		s.sources[name] = src
	}
	return s, nil
}

// DeleteItem removes the item and releases any GPU image drawn for it.
func (s *Surface) DeleteItem(id canopy.ItemID) {
	if c, ok := s.images[id]; ok {
		c.img.Deallocate()
		delete(s.images, id)
	}
	s.MemorySurface.DeleteItem(id)
}

// Draw renders every visible item onto dst, bottom to top.
func (s *Surface) Draw(dst *ebiten.Image) {
	for _, it := range s.Items() {
		if it.Hidden() {
			continue
		}
		switch it.Kind {
		case canopy.KindRectangle:
			if r, ok := boxOf(it.Points); ok {
				s.drawShape(dst, it, rectPoints(r))
			}
		case canopy.KindOval:
			if r, ok := boxOf(it.Points); ok {
				s.drawShape(dst, it, ellipsePoints(r))
			}
		case canopy.KindArc:
			s.drawArc(dst, it)
		case canopy.KindPolygon:
			s.drawShape(dst, it, it.Points)
		case canopy.KindLine:
			if c, ok := itemColor(it, canopy.AttrFill); ok {
				strokePolyline(dst, it.Points, lineWidth(it), c, false)
			}
		case canopy.KindText:
			s.drawText(dst, it)
		case canopy.KindImage:
			s.drawImage(dst, it)
		}
	}
}

func (s *Surface) drawArc(dst *ebiten.Image, it *canopy.Item) {
	r, ok := boxOf(it.Points)
	if !ok {
		return
	}
	start, extent := it.FloatAttr(canopy.AttrStart), it.FloatAttr(canopy.AttrExtent)
	switch it.StringAttr(canopy.AttrArcStyle) {
	case "arc":
		if c, ok := itemColor(it, canopy.AttrOutline); ok {
			strokePolyline(dst, arcPoints(r, start, extent), lineWidth(it), c, false)
		}
	default:
		s.drawShape(dst, it, piePoints(r, start, extent))
	}
}

// drawShape fills the convex outline pts with the item's fill and strokes it
// with the item's outline.
func (s *Surface) drawShape(dst *ebiten.Image, it *canopy.Item, pts []canopy.Vec2) {
	if c, ok := itemColor(it, canopy.AttrFill); ok {
		fillConvex(dst, pts, c)
	}
	if c, ok := itemColor(it, canopy.AttrOutline); ok {
		strokePolyline(dst, pts, lineWidth(it), c, true)
	}
}

func lineWidth(it *canopy.Item) float32 {
	if _, ok := it.Attrs[canopy.AttrWidth]; !ok {
		return 1
	}
	return float32(it.FloatAttr(canopy.AttrWidth))
}

func (s *Surface) face(family string, size float64) *text.GoTextFace {
	if _, ok := s.sources[family]; !ok {
		family = canopy.DefaultFontFamily
	}
	if size <= 0 {
		size = canopy.DefaultFontSize
	}
	k := faceKey{family, size}
	f, ok := s.faces[k]
	if !ok {
		f = &text.GoTextFace{Source: s.sources[family], Size: size}
		s.faces[k] = f
	}
	return f
}

func (s *Surface) drawText(dst *ebiten.Image, it *canopy.Item) {
	str := it.StringAttr(canopy.AttrText)
	c, ok := itemColor(it, canopy.AttrFill)
	if str == "" || !ok || len(it.Points) == 0 {
		return
	}
	face := s.face(it.StringAttr(canopy.AttrFontFamily), it.FloatAttr(canopy.AttrFontSize))
	op := &text.DrawOptions{}
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(it.Points[0].X, it.Points[0].Y)
	op.ColorScale.ScaleWithColor(toNRGBA(c))
	text.Draw(dst, str, face, op)
}

func (s *Surface) drawImage(dst *ebiten.Image, it *canopy.Item) {
	src, ok := it.Attrs[canopy.AttrImage].(image.Image)
	if !ok || src == nil || len(it.Points) == 0 {
		return
	}
	c, ok := s.images[it.ID]
	if !ok || c.src != src {
		if ok {
			c.img.Deallocate()
		}
		c = cachedImage{src: src, img: ebiten.NewImageFromImage(src)}
		s.images[it.ID] = c
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(it.Points[0].X, it.Points[0].Y)
	dst.DrawImage(c.img, op)
}

// --- Primitives ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

func toNRGBA(c canopy.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.A*255 + 0.5)}
}

// fillConvex fills a convex polygon as a triangle fan.
func fillConvex(dst *ebiten.Image, pts []canopy.Vec2, c canopy.Color) {
	idx := fanIndices(len(pts))
	if idx == nil {
		return
	}
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	a := float32(c.A)
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
		}
	}
	dst.DrawTriangles(verts, idx, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolyline strokes consecutive segments of pts, joining the last point
// back to the first when closed.
func strokePolyline(dst *ebiten.Image, pts []canopy.Vec2, width float32, c canopy.Color, closed bool) {
	if width <= 0 || len(pts) < 2 {
		return
	}
	clr := toNRGBA(c)
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(dst, float32(pts[i].X), float32(pts[i].Y), float32(pts[i+1].X), float32(pts[i+1].Y), width, clr, true)
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		vector.StrokeLine(dst, float32(last.X), float32(last.Y), float32(pts[0].X), float32(pts[0].Y), width, clr, true)
	}
}
