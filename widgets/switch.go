package widgets

import (
	"time"

	"github.com/phanxgames/canopy"
)

// SwitchDuration is how long the knob takes to slide across.
const SwitchDuration = 150 * time.Millisecond

// Switch is an on/off toggle: a rounded track with a round knob that slides
// from one end to the other. Its states combine hover and value, such as
// "hover-on" or "normal-off".
type Switch struct {
	*canopy.Widget
	track    *canopy.Shape
	knob     *canopy.Widget
	on       bool
	hover    bool
	slide    *canopy.Animation
	onChange []func(s *Switch, on bool)
}

var switchBehavior = &canopy.Behavior{
	Motion: func(f *canopy.Feature, ev *canopy.Event) bool {
		s := f.Widget().UserData.(*Switch)
		hit := f.Hit(ev)
		if hit != s.hover {
			s.hover = hit
			s.Update(s.stateName(), false)
		}
		return hit
	},
	Release: func(f *canopy.Feature, ev *canopy.Event) bool {
		s := f.Widget().UserData.(*Switch)
		if ev.Button != canopy.MouseButtonLeft || !f.Hit(ev) {
			return false
		}
		s.Toggle()
		return true
	},
	Leave: func(f *canopy.Feature, _ *canopy.Event) bool {
		s := f.Widget().UserData.(*Switch)
		if s.hover {
			s.hover = false
			s.Update(s.stateName(), false)
		}
		return false
	},
}

// NewSwitch creates a switch on c. position and size are in c's design units;
// the knob's diameter is 80% of the height.
func NewSwitch(c *canopy.Canvas, on bool, position, size canopy.Vec2, opts Options) *Switch {
	s := &Switch{on: on}
	w := canopy.NewWidget(c, position, size, canopy.WidgetOptions{
		Type:     "Switch",
		Anchor:   opts.Anchor,
		State:    s.stateName(),
		Behavior: switchBehavior,
	})
	s.Widget = w
	w.UserData = s
	s.track = canopy.NewShape(w, canopy.RoundRect{Radius: size.Y / 2}, canopy.Vec2{}, size, opts.element("track"))

	d := size.Y * 0.8
	s.knob = canopy.NewNestedWidget(w, s.knobOffset(size, d), canopy.Vec2{X: d, Y: d}, canopy.WidgetOptions{
		Type:       "Switch",
		State:      s.stateName(),
		PassEvents: true,
	})
	canopy.NewShape(s.knob, canopy.Oval{}, canopy.Vec2{}, canopy.Vec2{X: d, Y: d}, opts.element("knob"))
	finish(w, opts)
	return s
}

// knobOffset is the knob's top-left corner relative to the track's for the
// current value.
func (s *Switch) knobOffset(size canopy.Vec2, d float64) canopy.Vec2 {
	pad := (size.Y - d) / 2
	if s.on {
		return canopy.Vec2{X: size.X - pad - d, Y: pad}
	}
	return canopy.Vec2{X: pad, Y: pad}
}

func (s *Switch) stateName() string {
	prefix := canopy.StateNormal
	if s.hover {
		prefix = canopy.StateHover
	}
	if s.on {
		return prefix + "-on"
	}
	return prefix + "-off"
}

// On reports the switch value.
func (s *Switch) On() bool { return s.on }

// Knob returns the nested knob widget.
func (s *Switch) Knob() *canopy.Widget { return s.knob }

// OnChange registers fn to run whenever the value changes.
func (s *Switch) OnChange(fn func(s *Switch, on bool)) {
	s.onChange = append(s.onChange, fn)
}

// Toggle flips the value.
func (s *Switch) Toggle() { s.Set(!s.on) }

// Set changes the value, slides the knob over and restyles. Setting the
// current value does nothing.
func (s *Switch) Set(on bool) {
	if s.on == on || s.Disabled() {
		return
	}
	s.on = on
	if s.slide != nil {
		s.slide.Stop()
	}
	d := s.knob.Size().X
	target := s.TopLeft().Add(s.knobOffset(s.Size(), d))
	dx := target.X - s.knob.TopLeft().X
	s.slide = canopy.MoveWidget(s.knob, dx, 0, SwitchDuration, canopy.Smooth)
	s.Update(s.stateName(), false)
	for _, fn := range s.onChange {
		fn(s, on)
	}
}
