package canopy

import (
	"errors"
	"testing"
	"time"
)

func TestResizeFirstCallCapturesInitialSize(t *testing.T) {
	s := NewMemorySurface()
	c := NewCanvas(NewEnv(nil), s, CanvasConfig{})
	w, _ := newBox(c, 10, 10, 20, 20, WidgetOptions{})

	if err := c.Resize(300, 200); err != nil {
		t.Fatal(err)
	}
	if c.InitSize() != (Vec2{300, 200}) {
		t.Errorf("InitSize = %v, want (300, 200)", c.InitSize())
	}
	if c.Ratio() != unitRatio {
		t.Errorf("Ratio = %v, want (1, 1)", c.Ratio())
	}
	if w.zooms != 0 {
		t.Errorf("widget zoomed %d times on first layout, want 0", w.zooms)
	}
}

func TestResizeInvalidSize(t *testing.T) {
	c, _ := newTestCanvas(t)
	for _, sz := range []Vec2{{0, 10}, {10, 0}, {-5, 10}} {
		err := c.Resize(sz.X, sz.Y)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Resize(%v) err = %v, want ErrInvalidSize", sz, err)
		}
	}
	if c.Size() != (Vec2{100, 100}) {
		t.Errorf("Size changed to %v", c.Size())
	}
}

func TestResizeZoomsWidgets(t *testing.T) {
	c, s := newTestCanvas(t)
	w, sh := newBox(c, 10, 10, 20, 20, WidgetOptions{})

	if err := c.Resize(200, 100); err != nil {
		t.Fatal(err)
	}
	if w.Position() != (Vec2{20, 10}) {
		t.Errorf("Position = %v, want (20, 10)", w.Position())
	}
	if w.Size() != (Vec2{40, 20}) {
		t.Errorf("Size = %v, want (40, 20)", w.Size())
	}
	want := Rect{20, 10, 40, 20}
	if got := sh.Rect(); got != want {
		t.Errorf("element Rect = %v, want %v", got, want)
	}
	if got := s.BoundingBox(sh.Items()[0]); got != want {
		t.Errorf("item bounds = %v, want %v", got, want)
	}
}

func TestResizeRatioIdempotent(t *testing.T) {
	c, _ := newTestCanvas(t)
	w, _ := newBox(c, 10, 10, 20, 20, WidgetOptions{})

	c.Resize(250, 150)
	ratio, pos, size := c.Ratio(), w.Position(), w.Size()
	c.Resize(250, 150)

	if c.Ratio() != ratio {
		t.Errorf("Ratio = %v, want %v", c.Ratio(), ratio)
	}
	if w.Position() != pos || w.Size() != size {
		t.Errorf("widget moved to %v %v, want %v %v", w.Position(), w.Size(), pos, size)
	}
	if c.Ratio() != (Vec2{2.5, 1.5}) {
		t.Errorf("Ratio = %v, want (2.5, 1.5)", c.Ratio())
	}
}

func TestResizeRoundTrip(t *testing.T) {
	c, _ := newTestCanvas(t)
	w, _ := newBox(c, 10, 10, 20, 20, WidgetOptions{})
	c.Resize(200, 400)
	c.Resize(100, 100)
	if w.Position() != (Vec2{10, 10}) || w.Size() != (Vec2{20, 20}) {
		t.Errorf("widget = %v %v after round trip, want (10, 10) (20, 20)", w.Position(), w.Size())
	}
}

func TestResizePolicy(t *testing.T) {
	tests := []struct {
		name string
		cfg  CanvasConfig
		req  Vec2
		want Vec2
	}{
		{"default", CanvasConfig{}, Vec2{300, 200}, Vec2{3, 2}},
		{"keep min", CanvasConfig{KeepRatio: KeepMin}, Vec2{300, 200}, Vec2{2, 2}},
		{"keep max", CanvasConfig{KeepRatio: KeepMax}, Vec2{300, 200}, Vec2{3, 3}},
		{"expand x", CanvasConfig{Expand: ExpandX}, Vec2{300, 200}, Vec2{3, 1}},
		{"expand y", CanvasConfig{Expand: ExpandY}, Vec2{300, 200}, Vec2{1, 2}},
		{"expand none", CanvasConfig{Expand: ExpandNone}, Vec2{300, 200}, Vec2{1, 1}},
		{"keep min expand x", CanvasConfig{KeepRatio: KeepMin, Expand: ExpandX}, Vec2{300, 200}, Vec2{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(NewEnv(nil), NewMemorySurface(), tt.cfg)
			c.Resize(100, 100)
			c.Resize(tt.req.X, tt.req.Y)
			if c.Ratio() != tt.want {
				t.Errorf("Ratio = %v, want %v", c.Ratio(), tt.want)
			}
			if want := (Vec2{100, 100}).Mul(tt.want); c.Size() != want {
				t.Errorf("Size = %v, want %v", c.Size(), want)
			}
		})
	}
}

// TestZoomExactlyOnce checks that every widget in the tree, top-level,
// nested and on nested canvases, is zoomed once per resize.
func TestZoomExactlyOnce(t *testing.T) {
	c, _ := newTestCanvas(t)
	a, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{})
	b, _ := newBox(c, 50, 50, 50, 50, WidgetOptions{})
	an := NewNestedWidget(a, Vec2{5, 5}, Vec2{10, 10}, WidgetOptions{})
	ann := NewNestedWidget(an, Vec2{1, 1}, Vec2{2, 2}, WidgetOptions{})
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{40, 40}, CanvasConfig{})
	iw, _ := newBox(inner, 0, 0, 10, 10, WidgetOptions{})
	deep := inner.NewCanvas(Vec2{0, 0}, Vec2{20, 20}, CanvasConfig{})
	dw, _ := newBox(deep, 0, 0, 5, 5, WidgetOptions{})

	all := []*Widget{a, b, an, ann, iw, dw}
	for pass := 1; pass <= 3; pass++ {
		c.Resize(100+float64(pass)*50, 100)
		for _, w := range all {
			if w.zooms != pass {
				t.Errorf("pass %d: widget %d zoomed %d times, want %d", pass, w.ID, w.zooms, pass)
			}
		}
	}
}

func TestNestedCanvasFollowsParent(t *testing.T) {
	c, _ := newTestCanvas(t)
	free := c.NewCanvas(Vec2{50, 50}, Vec2{20, 20}, CanvasConfig{Anchor: AnchorCenter, FreeAnchor: true})
	fixed := c.NewCanvas(Vec2{50, 50}, Vec2{20, 20}, CanvasConfig{Anchor: AnchorCenter})

	c.Resize(200, 200)

	if free.Size() != (Vec2{40, 40}) || fixed.Size() != (Vec2{40, 40}) {
		t.Errorf("sizes = %v %v, want (40, 40)", free.Size(), fixed.Size())
	}
	if got := free.Origin(); got != (Vec2{80, 80}) {
		t.Errorf("free Origin = %v, want (80, 80)", got)
	}
	if got := fixed.Origin(); got != (Vec2{30, 30}) {
		t.Errorf("fixed Origin = %v, want (30, 30)", got)
	}
}

func TestNestedCanvasElementsFollowOrigin(t *testing.T) {
	c, s := newTestCanvas(t)
	inner := c.NewCanvas(Vec2{50, 50}, Vec2{20, 20}, CanvasConfig{FreeAnchor: true, Expand: ExpandNone})
	_, sh := newBox(inner, 0, 0, 10, 10, WidgetOptions{})

	c.Resize(200, 200)

	// The nested canvas keeps its size but its origin doubles.
	want := Rect{100, 100, 10, 10}
	if got := s.BoundingBox(sh.Items()[0]); got != want {
		t.Errorf("item bounds = %v, want %v", got, want)
	}
}

func TestNestedCanvasBackground(t *testing.T) {
	c, s := newTestCanvas(t)
	before := s.Len()
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{20, 20}, CanvasConfig{Background: "#112233"})
	if s.Len() != before+1 {
		t.Fatalf("Len = %d, want %d", s.Len(), before+1)
	}
	c.Resize(200, 200)
	if got := s.BoundingBox(inner.background); got != (Rect{10, 10, 40, 40}) {
		t.Errorf("background bounds = %v", got)
	}
	if got := inner.backgroundColor().Hex(); got != "#112233" {
		t.Errorf("backgroundColor = %q, want #112233", got)
	}
	inner.Destroy()
	if s.Len() != before {
		t.Errorf("Len after Destroy = %d, want %d", s.Len(), before)
	}
	if len(c.Canvases()) != 0 {
		t.Errorf("parent still lists %d canvases", len(c.Canvases()))
	}
}

func TestNestedCanvasCreatedAfterResize(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Resize(200, 200)
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{20, 20}, CanvasConfig{FreeAnchor: true})
	if inner.Size() != (Vec2{40, 40}) || inner.Position() != (Vec2{20, 20}) {
		t.Errorf("inner = %v %v, want (20, 20) (40, 40)", inner.Position(), inner.Size())
	}
}

func TestCanvasDestroy(t *testing.T) {
	c, s := newTestCanvas(t)
	newBox(c, 0, 0, 10, 10, WidgetOptions{})
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{20, 20}, CanvasConfig{})
	newBox(inner, 0, 0, 10, 10, WidgetOptions{})

	c.Destroy()
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if n := c.env.LiveWidgets(); n != 0 {
		t.Errorf("LiveWidgets = %d, want 0", n)
	}
	// The surface no longer routes events to the canvas.
	s.Emit(Event{Kind: EventPress, X: 5, Y: 5})
}

// pressBehavior consumes presses that hit the widget and records them.
func pressBehavior(log *[]uint32) *Behavior {
	return &Behavior{
		Press: func(f *Feature, ev *Event) bool {
			if !f.Hit(ev) {
				return false
			}
			*log = append(*log, f.Widget().ID)
			return true
		},
		Motion: func(f *Feature, ev *Event) bool {
			if f.Hit(ev) {
				*log = append(*log, f.Widget().ID)
				return true
			}
			return false
		},
	}
}

func TestDispatchTopmostConsumes(t *testing.T) {
	c, s := newTestCanvas(t)
	var log []uint32
	bottom, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	top, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	_ = bottom

	s.Emit(Event{Kind: EventPress, X: 10, Y: 10})
	if len(log) != 1 || log[0] != top.ID {
		t.Errorf("press reached %v, want only [%d]", log, top.ID)
	}
}

func TestDispatchPassEvents(t *testing.T) {
	c, s := newTestCanvas(t)
	var log []uint32
	bottom, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	top, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log), PassEvents: true})

	s.Emit(Event{Kind: EventPress, X: 10, Y: 10})
	if len(log) != 2 || log[0] != top.ID || log[1] != bottom.ID {
		t.Errorf("press reached %v, want [%d %d]", log, top.ID, bottom.ID)
	}
}

func TestDispatchMotionContinuesClaimed(t *testing.T) {
	c, s := newTestCanvas(t)
	var claimed []bool
	b := &Behavior{Motion: func(f *Feature, ev *Event) bool {
		claimed = append(claimed, ev.Claimed)
		return f.Hit(ev)
	}}
	newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: b})
	newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: b})

	s.Emit(Event{Kind: EventMotion, X: 10, Y: 10})
	if len(claimed) != 2 || claimed[0] || !claimed[1] {
		t.Errorf("claimed flags = %v, want [false true]", claimed)
	}
}

func TestDispatchNestedCanvasFirst(t *testing.T) {
	c, s := newTestCanvas(t)
	var log []uint32
	newBox(c, 0, 0, 100, 100, WidgetOptions{Behavior: pressBehavior(&log)})
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{20, 20}, CanvasConfig{})
	iw, _ := newBox(inner, 0, 0, 20, 20, WidgetOptions{Behavior: pressBehavior(&log)})

	s.Emit(Event{Kind: EventPress, X: 15, Y: 15})
	if len(log) != 1 || log[0] != iw.ID {
		t.Errorf("press reached %v, want [%d]", log, iw.ID)
	}
}

func TestDispatchOutsideNestedCanvas(t *testing.T) {
	c, _ := newTestCanvas(t)
	var log []uint32
	inner := c.NewCanvas(Vec2{10, 10}, Vec2{20, 20}, CanvasConfig{})
	// The widget overflows the nested canvas.
	newBox(inner, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})

	if c.Dispatch(&Event{Kind: EventPress, X: 50, Y: 50}) {
		t.Error("press outside the nested canvas was consumed")
	}
	if len(log) != 0 {
		t.Errorf("press reached %v, want none", log)
	}
}

func TestDispatchSkipsDisabledAndHidden(t *testing.T) {
	c, s := newTestCanvas(t)
	var log []uint32
	bottom, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	mid, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	top, _ := newBox(c, 0, 0, 50, 50, WidgetOptions{Behavior: pressBehavior(&log)})
	top.SetDisabled(true)
	mid.Disappear(true)

	s.Emit(Event{Kind: EventPress, X: 10, Y: 10})
	if len(log) != 1 || log[0] != bottom.ID {
		t.Errorf("press reached %v, want [%d]", log, bottom.ID)
	}
}

func TestStartAttrKeepsOnEnd(t *testing.T) {
	c, s := newTestCanvas(t)
	_, sh := newBox(c, 0, 0, 10, 10, WidgetOptions{})
	id := sh.Items()[0]
	white, black := MustParseColor("#FFFFFF"), MustParseColor("#000000")
	a := GradientItem(c.env.Loop, s, id, AttrFill, white, black, white, 50*time.Millisecond, 60)
	ends := 0
	a.OnEnd = func() {
		ends++
		if c.ActiveAnimations() != 0 {
			t.Errorf("ActiveAnimations in OnEnd = %d, want 0", c.ActiveAnimations())
		}
	}
	c.startAttr(id, AttrFill, a)
	if c.ActiveAnimations() != 1 {
		t.Errorf("ActiveAnimations = %d, want 1", c.ActiveAnimations())
	}
	c.env.Loop.Advance(time.Second)
	if ends != 1 {
		t.Errorf("OnEnd ran %d times, want 1", ends)
	}
}
