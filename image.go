package canopy

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is a bitmap element. Zooming resamples the source bitmap to the new
// box size, so its cost grows with the pixel count rather than staying
// constant like other elements.
type Image struct {
	element
	source image.Image
	scaled image.Image
	scaler draw.Scaler
}

// ImageOptions configures an Image element.
type ImageOptions struct {
	ElementOptions
	// Scaler resamples the bitmap on zoom. Defaults to draw.CatmullRom.
	Scaler draw.Scaler
}

// NewImage creates an image element and displays it. A zero size uses the
// source bitmap's own size.
func NewImage(w *Widget, src image.Image, position, size Vec2, opts ImageOptions) *Image {
	if src == nil {
		panic("canopy: nil image source")
	}
	if size == (Vec2{}) {
		b := src.Bounds()
		size = Vec2{float64(b.Dx()), float64(b.Dy())}
	}
	im := &Image{source: src, scaler: opts.Scaler}
	if im.scaler == nil {
		im.scaler = draw.CatmullRom
	}
	im.init(w, position, size, opts.ElementOptions, []part{{kind: KindImage}})
	im.scaled = im.resample()
	im.parts[0].fixed = Attrs{AttrImage: im.scaled}
	im.layout = imageLayout
	attach(im)
	return im
}

func imageLayout(r Rect, _ Vec2) [][]Vec2 {
	return [][]Vec2{{{r.X, r.Y}}}
}

// Source returns the unscaled bitmap.
func (im *Image) Source() image.Image {
	return im.source
}

// Scaled returns the bitmap currently on the surface.
func (im *Image) Scaled() image.Image {
	return im.scaled
}

// SetSource replaces the bitmap, resampled to the current size.
func (im *Image) SetSource(src image.Image) {
	im.source = src
	im.push()
}

// Zoom scales the box and, when the size changed, resamples the bitmap.
func (im *Image) Zoom(r Vec2, zoomPosition, zoomSize bool) {
	im.element.Zoom(r, zoomPosition, zoomSize)
	if zoomSize {
		im.push()
	}
}

func (im *Image) push() {
	im.scaled = im.resample()
	if im.items != nil {
		im.surface().ConfigureItem(im.items[0], Attrs{AttrImage: im.scaled})
	}
}

// resample draws the source into a bitmap of the element's rounded size.
// The source is returned as is when the sizes already match.
func (im *Image) resample() image.Image {
	w, h := int(im.size.X+0.5), int(im.size.Y+0.5)
	b := im.source.Bounds()
	if w == b.Dx() && h == b.Dy() {
		return im.source
	}
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	im.scaler.Scale(dst, dst.Bounds(), im.source, b, draw.Src, nil)
	return dst
}
