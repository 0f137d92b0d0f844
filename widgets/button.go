package widgets

import "github.com/phanxgames/canopy"

// Button is a rounded push button with a centered label. It moves through
// the normal, hover, active and disabled states and fires its click handlers
// when a press is released over it.
type Button struct {
	*canopy.Widget
	body    *canopy.Shape
	label   *canopy.Text
	pressed bool
	onClick []func(b *Button)
}

// ButtonRadius is the corner radius of buttons in design units.
const ButtonRadius = 4

var buttonBehavior = &canopy.Behavior{
	Motion: func(f *canopy.Feature, ev *canopy.Event) bool {
		b := f.Widget().UserData.(*Button)
		hit := f.Hit(ev)
		switch {
		case b.pressed:
		case hit && b.State() != canopy.StateHover:
			b.Update(canopy.StateHover, false)
		case !hit && b.State() != canopy.StateNormal:
			b.Update(canopy.StateNormal, false)
		}
		return hit
	},
	Press: func(f *canopy.Feature, ev *canopy.Event) bool {
		b := f.Widget().UserData.(*Button)
		if ev.Button != canopy.MouseButtonLeft || !f.Hit(ev) {
			return false
		}
		b.pressed = true
		b.Update(canopy.StateActive, true)
		return true
	},
	Drag: func(f *canopy.Feature, ev *canopy.Event) bool {
		b := f.Widget().UserData.(*Button)
		if !b.pressed {
			return false
		}
		if f.Widget().Detect(ev.X, ev.Y) {
			b.Update(canopy.StateActive, true)
		} else {
			b.Update(canopy.StateNormal, false)
		}
		return true
	},
	Release: func(f *canopy.Feature, ev *canopy.Event) bool {
		b := f.Widget().UserData.(*Button)
		if !b.pressed {
			return false
		}
		b.pressed = false
		if !f.Hit(ev) {
			b.Update(canopy.StateNormal, false)
			return false
		}
		b.Update(canopy.StateHover, false)
		for _, fn := range b.onClick {
			fn(b)
		}
		return true
	},
	Leave: func(f *canopy.Feature, _ *canopy.Event) bool {
		b := f.Widget().UserData.(*Button)
		b.pressed = false
		if b.State() != canopy.StateNormal {
			b.Update(canopy.StateNormal, false)
		}
		return false
	},
}

// NewButton creates a button on c. position and size are in c's design units.
func NewButton(c *canopy.Canvas, text string, position, size canopy.Vec2, opts Options) *Button {
	w := canopy.NewWidget(c, position, size, canopy.WidgetOptions{
		Type:     "Button",
		Anchor:   opts.Anchor,
		Behavior: buttonBehavior,
	})
	b := &Button{Widget: w}
	w.UserData = b
	b.body = canopy.NewShape(w, canopy.RoundRect{Radius: ButtonRadius}, canopy.Vec2{}, size, opts.element("body"))
	b.label = canopy.NewText(w, text, canopy.Vec2{}, size, opts.text("label"))
	finish(w, opts)
	return b
}

// OnClick registers fn to run on every click.
func (b *Button) OnClick(fn func(b *Button)) {
	b.onClick = append(b.onClick, fn)
}

// Text returns the button's label.
func (b *Button) Text() string { return b.label.Text() }

// SetText replaces the button's label.
func (b *Button) SetText(s string) { b.label.SetText(s) }

// Pressed reports whether a press on the button has not been released yet.
func (b *Button) Pressed() bool { return b.pressed }
