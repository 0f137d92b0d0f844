package canopy

import "fmt"

// ItemID is a stable handle to one render item on a Surface. Zero is never a
// valid handle.
type ItemID uint32

// BindingID identifies an event binding registered with Surface.Bind.
type BindingID uint32

// ItemKind selects the geometry interpretation of a render item.
type ItemKind uint8

const (
	KindRectangle ItemKind = iota // points: top-left, bottom-right
	KindOval                      // points: bounding box top-left, bottom-right
	KindArc                       // points: bounding box; attrs "start", "extent" in degrees, "style"
	KindLine                      // points: polyline vertices
	KindPolygon                   // points: closed polygon vertices
	KindText                      // points: anchor position; attrs "text", "font_size", "font_family"
	KindImage                     // points: top-left; attr "image" (image.Image)
)

var itemKindNames = [...]string{"rectangle", "oval", "arc", "line", "polygon", "text", "image"}

// String returns the item kind name.
func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return fmt.Sprintf("ItemKind(%d)", uint8(k))
}

// Attrs is a set of render attributes keyed by name. Colors are hex strings
// ("#RRGGBB" or "#RRGGBBAA"; "" means transparent), widths and sizes are
// float64.
type Attrs map[string]any

// Well-known attribute names understood by every Surface implementation.
const (
	AttrFill       = "fill"
	AttrOutline    = "outline"
	AttrWidth      = "width"
	AttrHidden     = "hidden"
	AttrText       = "text"
	AttrFontSize   = "font_size"
	AttrFontFamily = "font_family"
	AttrImage      = "image"
	AttrStart      = "start"
	AttrExtent     = "extent"
	AttrArcStyle   = "style"
)

// Surface is the drawing target the core issues its operations against. The
// core relies only on stable handles and on attributes reading back what was
// last written; it never assumes a particular rasterizer.
type Surface interface {
	// CreateItem adds a render item on top of all existing items.
	CreateItem(kind ItemKind, points []Vec2, attrs Attrs) ItemID
	// MoveItem translates every point of the item.
	MoveItem(id ItemID, dx, dy float64)
	// SetCoords replaces the item's points.
	SetCoords(id ItemID, points []Vec2)
	// ConfigureItem sets attributes and returns the previous values of the
	// keys that were set. Keys that had no value are absent from the result.
	ConfigureItem(id ItemID, attrs Attrs) Attrs
	// Attr reads the current value of one attribute.
	Attr(id ItemID, key string) (any, bool)
	// DeleteItem removes the item. The handle becomes invalid.
	DeleteItem(id ItemID)
	// BoundingBox returns the axis-aligned bounds of the item's points.
	BoundingBox(id ItemID) Rect
	// Bind registers fn for events of the given kind.
	Bind(kind EventKind, fn func(*Event)) BindingID
	// Unbind removes a binding registered with Bind.
	Unbind(id BindingID)
}
