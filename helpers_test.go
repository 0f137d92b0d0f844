package canopy

import "testing"

// configureCall is one recorded ConfigureItem call.
type configureCall struct {
	ID    ItemID
	Attrs Attrs
}

// recordingSurface is a MemorySurface that records every ConfigureItem call.
type recordingSurface struct {
	*MemorySurface
	calls []configureCall
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{MemorySurface: NewMemorySurface()}
}

func (s *recordingSurface) ConfigureItem(id ItemID, attrs Attrs) Attrs {
	cp := make(Attrs, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	s.calls = append(s.calls, configureCall{id, cp})
	return s.MemorySurface.ConfigureItem(id, attrs)
}

func (s *recordingSurface) reset() { s.calls = nil }

// newTestCanvas returns a root canvas laid out at 100×100 on a recording
// surface, with a theme-less env.
func newTestCanvas(t *testing.T) (*Canvas, *recordingSurface) {
	t.Helper()
	s := newRecordingSurface()
	c := NewCanvas(NewEnv(nil), s, CanvasConfig{Name: "test"})
	if err := c.Resize(100, 100); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	return c, s
}

// hoverStyles is a two-state fill table.
var hoverStyles = StateStyles{
	StateNormal: {AttrFill: "#FFFFFF"},
	StateHover:  {AttrFill: "#000000"},
}

// newBox creates a widget with one rectangle element covering it.
func newBox(c *Canvas, x, y, w, h float64, opts WidgetOptions) (*Widget, *Shape) {
	wd := NewWidget(c, Vec2{x, y}, Vec2{w, h}, opts)
	sh := NewShape(wd, Rectangle{}, Vec2{}, Vec2{w, h}, ElementOptions{Styles: hoverStyles})
	return wd, sh
}

func itemAttr(t *testing.T, s Surface, id ItemID, key string) any {
	t.Helper()
	v, ok := s.Attr(id, key)
	if !ok {
		t.Fatalf("item %d has no %q attribute", id, key)
	}
	return v
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
