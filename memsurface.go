package canopy

import "slices"

// Item is one retained render item of a MemorySurface.
type Item struct {
	ID     ItemID
	Kind   ItemKind
	Points []Vec2
	Attrs  Attrs
}

// Hidden reports whether the item's hidden attribute is set.
func (it *Item) Hidden() bool {
	h, _ := it.Attrs[AttrHidden].(bool)
	return h
}

// StringAttr returns a string attribute, or "" when absent.
func (it *Item) StringAttr(key string) string {
	s, _ := it.Attrs[key].(string)
	return s
}

// FloatAttr returns a numeric attribute, or 0 when absent.
func (it *Item) FloatAttr(key string) float64 {
	switch v := it.Attrs[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

type surfaceBinding struct {
	id BindingID
	fn func(*Event)
}

// MemorySurface is a retained Surface that keeps items in memory in z-order.
// It serves headless runs and tests directly, and rendering backends embed it
// and draw its items each frame. Operations on unknown handles are ignored.
type MemorySurface struct {
	items    map[ItemID]*Item
	order    []ItemID
	nextItem ItemID

	bindings    [numEventKinds][]surfaceBinding
	nextBinding BindingID
}

// NewMemorySurface creates an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{items: make(map[ItemID]*Item)}
}

// CreateItem adds an item on top of all existing items.
func (s *MemorySurface) CreateItem(kind ItemKind, points []Vec2, attrs Attrs) ItemID {
	s.nextItem++
	id := s.nextItem
	a := make(Attrs, len(attrs))
	for k, v := range attrs {
		a[k] = v
	}
	s.items[id] = &Item{ID: id, Kind: kind, Points: slices.Clone(points), Attrs: a}
	s.order = append(s.order, id)
	return id
}

// MoveItem translates every point of the item.
func (s *MemorySurface) MoveItem(id ItemID, dx, dy float64) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	for i := range it.Points {
		it.Points[i].X += dx
		it.Points[i].Y += dy
	}
}

// SetCoords replaces the item's points.
func (s *MemorySurface) SetCoords(id ItemID, points []Vec2) {
	if it, ok := s.items[id]; ok {
		it.Points = slices.Clone(points)
	}
}

// ConfigureItem sets attributes and returns the previous values.
func (s *MemorySurface) ConfigureItem(id ItemID, attrs Attrs) Attrs {
	it, ok := s.items[id]
	if !ok {
		return nil
	}
	prev := make(Attrs, len(attrs))
	for k, v := range attrs {
		if old, ok := it.Attrs[k]; ok {
			prev[k] = old
		}
		it.Attrs[k] = v
	}
	return prev
}

// Attr reads the current value of one attribute.
func (s *MemorySurface) Attr(id ItemID, key string) (any, bool) {
	it, ok := s.items[id]
	if !ok {
		return nil, false
	}
	v, ok := it.Attrs[key]
	return v, ok
}

// DeleteItem removes the item.
func (s *MemorySurface) DeleteItem(id ItemID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// BoundingBox returns the axis-aligned bounds of the item's points.
func (s *MemorySurface) BoundingBox(id ItemID) Rect {
	it, ok := s.items[id]
	if !ok || len(it.Points) == 0 {
		return Rect{}
	}
	x0, y0 := it.Points[0].X, it.Points[0].Y
	x1, y1 := x0, y0
	for _, p := range it.Points[1:] {
		x0, y0 = min(x0, p.X), min(y0, p.Y)
		x1, y1 = max(x1, p.X), max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Bind registers fn for events of the given kind.
func (s *MemorySurface) Bind(kind EventKind, fn func(*Event)) BindingID {
	if kind >= numEventKinds {
		panic("canopy: bind to unknown event kind")
	}
	s.nextBinding++
	s.bindings[kind] = append(s.bindings[kind], surfaceBinding{s.nextBinding, fn})
	return s.nextBinding
}

// Unbind removes a binding registered with Bind.
func (s *MemorySurface) Unbind(id BindingID) {
	for k := range s.bindings {
		s.bindings[k] = slices.DeleteFunc(s.bindings[k], func(b surfaceBinding) bool {
			return b.id == id
		})
	}
}

// Emit delivers ev to every binding for its kind, in binding order.
func (s *MemorySurface) Emit(ev Event) {
	if ev.Kind >= numEventKinds {
		return
	}
	for _, b := range slices.Clone(s.bindings[ev.Kind]) {
		b.fn(&ev)
	}
}

// Item returns the item with the given handle.
func (s *MemorySurface) Item(id ItemID) (*Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// Items returns every item bottom to top. Backends draw them in this order.
func (s *MemorySurface) Items() []*Item {
	out := make([]*Item, len(s.order))
	for i, id := range s.order {
		out[i] = s.items[id]
	}
	return out
}

// Len returns the number of live items.
func (s *MemorySurface) Len() int {
	return len(s.order)
}
