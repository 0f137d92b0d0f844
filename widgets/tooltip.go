package widgets

import (
	"time"

	"github.com/phanxgames/canopy"
)

// TooltipDelay is how long the pointer must hover before a tooltip shows.
const TooltipDelay = 500 * time.Millisecond

// TooltipGap is the distance between a tooltip and its target, in design
// units.
const TooltipGap = 4

// Tooltip is a hint that appears below a target widget while the target is
// hovered. It follows the target's update hook, so any widget that enters
// the "hover" state can have one.
type Tooltip struct {
	*canopy.Widget
	target *canopy.Widget
	text   *canopy.Text
	delay  time.Duration
	timer  canopy.TimerID
}

// NewTooltip attaches a tooltip to target. size is in design units; the
// tooltip is created hidden on the target's canvas.
func NewTooltip(target *canopy.Widget, text string, size canopy.Vec2, opts Options) *Tooltip {
	c := target.Canvas()
	w := canopy.NewWidget(c, canopy.Vec2{}, size, canopy.WidgetOptions{
		Type:       "Tooltip",
		PassEvents: true,
	})
	t := &Tooltip{Widget: w, target: target, delay: TooltipDelay}
	w.UserData = t
	canopy.NewShape(w, canopy.RoundRect{Radius: 3}, canopy.Vec2{}, size, opts.element("body"))
	t.text = canopy.NewText(w, text, canopy.Vec2{}, size, opts.text("text"))
	w.Realize()
	w.Disappear(true)
	target.OnUpdate(t.follow)
	w.OnDestroy(t.cancel)
	target.OnDestroy(t.cancel)
	return t
}

// SetDelay changes how long the target must be hovered.
func (t *Tooltip) SetDelay(d time.Duration) { t.delay = d }

// Text returns the tooltip text.
func (t *Tooltip) Text() string { return t.text.Text() }

// SetText replaces the tooltip text.
func (t *Tooltip) SetText(s string) { t.text.SetText(s) }

func (t *Tooltip) follow(_ *canopy.Widget, state string) {
	if t.Destroyed() {
		return
	}
	if state != canopy.StateHover {
		t.cancel(nil)
		t.Disappear(true)
		return
	}
	if t.timer != 0 || !t.Hidden() {
		return
	}
	t.timer = t.Canvas().Env().Loop.After(t.delay, func() {
		t.timer = 0
		t.show()
	})
}

// cancel drops a pending show. It runs as a destroy hook of the tooltip and
// its target.
func (t *Tooltip) cancel(*canopy.Widget) {
	if t.timer != 0 {
		t.Canvas().Env().Loop.Cancel(t.timer)
		t.timer = 0
	}
}

// Pending reports whether a show is scheduled.
func (t *Tooltip) Pending() bool { return t.timer != 0 }

// show places the tooltip under the target's current box and reveals it.
func (t *Tooltip) show() {
	if t.Destroyed() || t.target.Destroyed() {
		return
	}
	tl := t.target.TopLeft()
	gap := TooltipGap * t.Canvas().Ratio().Y
	want := canopy.Vec2{X: tl.X, Y: tl.Y + t.target.Size().Y + gap}
	t.Move(want.X-t.TopLeft().X, want.Y-t.TopLeft().Y)
	t.Disappear(false)
}
