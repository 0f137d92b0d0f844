package widgets

import (
	"testing"
	"time"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/theme"
)

func newCanvas(t *testing.T) (*canopy.Canvas, *canopy.MemorySurface) {
	t.Helper()
	s := canopy.NewMemorySurface()
	c := canopy.NewCanvas(canopy.NewEnv(theme.Default()), s, canopy.CanvasConfig{})
	if err := c.Resize(320, 200); err != nil {
		t.Fatal(err)
	}
	return c, s
}

func fill(t *testing.T, s canopy.Surface, el canopy.Element) string {
	t.Helper()
	v, _ := s.Attr(el.Items()[0], canopy.AttrFill)
	str, _ := v.(string)
	return str
}

func click(s *canopy.MemorySurface, x, y float64) {
	s.Emit(canopy.Event{Kind: canopy.EventPress, X: x, Y: y, Button: canopy.MouseButtonLeft})
	s.Emit(canopy.Event{Kind: canopy.EventRelease, X: x, Y: y, Button: canopy.MouseButtonLeft})
}

func TestLabel(t *testing.T) {
	c, s := newCanvas(t)
	l := NewLabel(c, "hello", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 100, Y: 20}, Options{})
	if l.Text() != "hello" {
		t.Errorf("Text = %q", l.Text())
	}
	if got := fill(t, s, l.TextElement()); got != "#1A1A1A" {
		t.Errorf("fill = %q, want #1A1A1A", got)
	}
	l.SetText("bye")
	if v, _ := s.Attr(l.TextElement().Items()[0], canopy.AttrText); v != "bye" {
		t.Errorf("text attr = %v, want bye", v)
	}
}

func TestButtonStates(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })

	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 50, Y: 25})
	if b.State() != canopy.StateHover {
		t.Errorf("State after motion = %q, want hover", b.State())
	}
	s.Emit(canopy.Event{Kind: canopy.EventPress, X: 50, Y: 25, Button: canopy.MouseButtonLeft})
	if b.State() != canopy.StateActive || !b.Pressed() {
		t.Errorf("State after press = %q pressed = %v", b.State(), b.Pressed())
	}
	if got := fill(t, s, b.body); got != "#C6DAFC" {
		t.Errorf("active fill = %q, want #C6DAFC", got)
	}
	s.Emit(canopy.Event{Kind: canopy.EventRelease, X: 50, Y: 25, Button: canopy.MouseButtonLeft})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if b.State() != canopy.StateHover {
		t.Errorf("State after release = %q, want hover", b.State())
	}

	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 200, Y: 150})
	if b.State() != canopy.StateNormal {
		t.Errorf("State after leaving = %q, want normal", b.State())
	}
	c.Env().Loop.Advance(time.Second)
	if got := fill(t, s, b.body); got != "#FDFDFD" {
		t.Errorf("fill after fade = %q, want #FDFDFD", got)
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })

	s.Emit(canopy.Event{Kind: canopy.EventPress, X: 50, Y: 25, Button: canopy.MouseButtonLeft})
	s.Emit(canopy.Event{Kind: canopy.EventDrag, X: 200, Y: 150, Button: canopy.MouseButtonLeft})
	if b.State() != canopy.StateNormal {
		t.Errorf("State while dragged out = %q, want normal", b.State())
	}
	s.Emit(canopy.Event{Kind: canopy.EventRelease, X: 200, Y: 150, Button: canopy.MouseButtonLeft})
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if b.Pressed() {
		t.Error("still pressed after release")
	}
}

func TestButtonDisabled(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{Disabled: true})
	c.Env().Loop.Advance(time.Second)
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })
	click(s, 50, 25)
	if clicks != 0 {
		t.Errorf("disabled button clicked %d times", clicks)
	}
	if got := fill(t, s, b.body); got != "#F5F5F5" {
		t.Errorf("disabled fill = %q, want #F5F5F5", got)
	}
}

func TestButtonFollowsResize(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
	c.Resize(640, 400)
	clicks := 0
	b.OnClick(func(*Button) { clicks++ })
	click(s, 150, 60) // outside the original box, inside the zoomed one
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestSwitchToggle(t *testing.T) {
	c, s := newCanvas(t)
	sw := NewSwitch(c, false, canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 50, Y: 20}, Options{})
	var changes []bool
	sw.OnChange(func(_ *Switch, on bool) { changes = append(changes, on) })

	startX := sw.Knob().Position().X
	if startX != 12 {
		t.Errorf("knob X = %v, want 12", startX)
	}
	click(s, 35, 20)
	if !sw.On() || len(changes) != 1 || !changes[0] {
		t.Fatalf("On = %v changes = %v", sw.On(), changes)
	}
	if sw.State() != "hover-on" && sw.State() != "normal-on" {
		t.Errorf("State = %q, want an -on state", sw.State())
	}
	if sw.Knob().State() != sw.State() {
		t.Errorf("knob State = %q, want %q", sw.Knob().State(), sw.State())
	}

	c.Env().Loop.Advance(SwitchDuration)
	if got := sw.Knob().Position().X; got < 41.999 || got > 42.001 {
		t.Errorf("knob X after slide = %v, want 42", got)
	}

	sw.Toggle()
	c.Env().Loop.Advance(SwitchDuration / 2)
	sw.Toggle()
	c.Env().Loop.Advance(SwitchDuration)
	if got := sw.Knob().Position().X; got < 41.999 || got > 42.001 {
		t.Errorf("knob X after reversal = %v, want 42", got)
	}
}

func TestSwitchSetSameValueIsNoop(t *testing.T) {
	c, _ := newCanvas(t)
	sw := NewSwitch(c, true, canopy.Vec2{}, canopy.Vec2{X: 50, Y: 20}, Options{})
	calls := 0
	sw.OnChange(func(*Switch, bool) { calls++ })
	sw.Set(true)
	if calls != 0 || c.Env().Loop.Pending() != 0 {
		t.Errorf("calls = %d pending = %d, want 0 0", calls, c.Env().Loop.Pending())
	}
}

func TestTooltipShowsAfterDelay(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
	tip := NewTooltip(b.Widget, "hint", canopy.Vec2{X: 60, Y: 20}, Options{})
	loop := c.Env().Loop

	if !tip.Hidden() {
		t.Fatal("tooltip visible before hover")
	}
	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 50, Y: 25})
	loop.Advance(TooltipDelay / 2)
	if !tip.Hidden() {
		t.Error("tooltip visible before the delay")
	}
	loop.Advance(TooltipDelay)
	if tip.Hidden() {
		t.Fatal("tooltip still hidden after the delay")
	}
	if got := tip.TopLeft(); got != (canopy.Vec2{X: 10, Y: 44}) {
		t.Errorf("tooltip TopLeft = %v, want (10, 44)", got)
	}

	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 300, Y: 190})
	if !tip.Hidden() {
		t.Error("tooltip visible after leaving the target")
	}
}

func TestTooltipCancelledBeforeDelay(t *testing.T) {
	c, s := newCanvas(t)
	b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
	tip := NewTooltip(b.Widget, "hint", canopy.Vec2{X: 60, Y: 20}, Options{})
	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 50, Y: 25})
	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 300, Y: 190})
	c.Env().Loop.Advance(time.Second)
	if !tip.Hidden() {
		t.Error("tooltip shown after the pointer left")
	}
}

func TestTooltipDestroyCancelsPendingShow(t *testing.T) {
	tests := []struct {
		name    string
		destroy func(b *Button, tip *Tooltip)
	}{
		{"tooltip", func(_ *Button, tip *Tooltip) { tip.Destroy() }},
		{"target", func(b *Button, _ *Tooltip) { b.Destroy() }},
		{"canvas", func(b *Button, _ *Tooltip) { b.Canvas().Destroy() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newCanvas(t)
			b := NewButton(c, "OK", canopy.Vec2{X: 10, Y: 10}, canopy.Vec2{X: 80, Y: 30}, Options{})
			tip := NewTooltip(b.Widget, "hint", canopy.Vec2{X: 60, Y: 20}, Options{})
			loop := c.Env().Loop
			s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 50, Y: 25})
			if !tip.Pending() {
				t.Fatal("no show scheduled after hover")
			}
			before := loop.Pending()
			tt.destroy(b, tip)
			if tip.Pending() {
				t.Error("show still scheduled after destroy")
			}
			if loop.Pending() >= before {
				t.Errorf("loop Pending = %d, want below %d", loop.Pending(), before)
			}
			loop.Advance(time.Second)
			if !tip.Hidden() {
				t.Error("destroyed tooltip shown")
			}
		})
	}
}

func TestGallery(t *testing.T) {
	c, s := newCanvas(t)
	g := NewGallery(c)
	if g.Status.Text() != "clicks: 0, button unlocked" {
		t.Errorf("Status = %q", g.Status.Text())
	}

	r := g.Button.Rect()
	click(s, r.X+r.Width/2, r.Y+r.Height/2)
	if g.Clicks() != 1 {
		t.Errorf("Clicks = %d, want 1", g.Clicks())
	}

	sr := g.Switch.Rect()
	click(s, sr.X+sr.Width/2, sr.Y+sr.Height/2)
	if !g.Button.Disabled() {
		t.Error("switch did not disable the button")
	}
	if g.Status.Text() != "clicks: 1, button locked" {
		t.Errorf("Status = %q", g.Status.Text())
	}

	click(s, r.X+r.Width/2, r.Y+r.Height/2)
	if g.Clicks() != 1 {
		t.Errorf("Clicks = %d after clicking a disabled button, want 1", g.Clicks())
	}
}

func TestGalleryResize(t *testing.T) {
	c, s := newCanvas(t)
	g := NewGallery(c)
	c.Resize(640, 300)

	// The panel keeps its aspect ratio: 1.5 on both axes.
	if got := g.Panel.Ratio(); got != (canopy.Vec2{X: 1.5, Y: 1.5}) {
		t.Errorf("panel Ratio = %v, want (1.5, 1.5)", got)
	}
	r := g.Button.Rect()
	click(s, r.X+r.Width/2, r.Y+r.Height/2)
	if g.Clicks() != 1 {
		t.Errorf("Clicks = %d, want 1", g.Clicks())
	}
}
