package canopy

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Controller shapes an animation's time-to-progress curve. It maps t in
// [0, 1] to a progress value; every controller returns 0 at t=0.
type Controller func(t float64) float64

// Flat is the linear controller.
func Flat(t float64) float64 {
	return t
}

// Smooth eases in and out along half a cosine wave.
func Smooth(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// reboundPhase maps t=1 onto the falling side of the sine wave, past its peak.
const reboundPhase = 2 * math.Pi / 3

// Rebound overshoots past 1 (by about 15% at t=0.75) before settling back to 1.
func Rebound(t float64) float64 {
	return math.Sin(reboundPhase*t) / math.Sin(reboundPhase)
}

// Ease adapts a gween easing function to a Controller.
func Ease(fn ease.TweenFunc) Controller {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// AnimationState is the lifecycle of an Animation.
type AnimationState uint8

const (
	AnimIdle      AnimationState = iota // created, never started
	AnimScheduled                       // frames are pending on the loop
	AnimCompleted                       // last frame ran and no repeat remains
	AnimCancelled                       // Stop was called while scheduled
)

// String returns a human-readable representation of the state.
func (s AnimationState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimScheduled:
		return "scheduled"
	case AnimCompleted:
		return "completed"
	case AnimCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("AnimationState(%d)", uint8(s))
	}
}

// DefaultFPS is the frame rate used when an Animation has none set.
const DefaultFPS = 60

// Animation is a time-boxed, frame-quantized interpolation. Each frame is one
// Loop timer; the Animation owns the handles until they fire or Stop cancels
// them. Animations are created per transition and never reused across
// targets.
type Animation struct {
	// Duration is the total time from start to the last frame.
	Duration time.Duration
	// FPS is the frame rate the duration is quantized to.
	FPS int
	// Controller shapes progress. Defaults to Flat.
	Controller Controller
	// Callback receives the controller output for each frame, or the change
	// since the previous frame when Derivation is set.
	Callback func(v float64)
	// Derivation makes Callback receive per-frame deltas, for callbacks that
	// apply incremental changes.
	Derivation bool
	// OnEnd runs after the last frame's callback.
	OnEnd func()
	// Repeat restarts the animation after it ends. Positive values count
	// down, negative values repeat forever.
	Repeat int

	loop   *Loop
	timers []TimerID
	state  AnimationState
	// run counts Starts, so frames of an earlier run can tell they are stale.
	run    int
	ending bool
}

// NewAnimation creates an idle animation running on loop.
func NewAnimation(loop *Loop, duration time.Duration, callback func(float64)) *Animation {
	if loop == nil {
		panic("canopy: animation requires a loop")
	}
	return &Animation{
		Duration:   duration,
		FPS:        DefaultFPS,
		Controller: Flat,
		Callback:   callback,
		loop:       loop,
	}
}

// State returns the animation's lifecycle state.
func (a *Animation) State() AnimationState {
	return a.state
}

// Active reports whether frames are still pending.
func (a *Animation) Active() bool {
	return a.state == AnimScheduled
}

// FramesTotal returns the number of frames one run produces. A duration
// shorter than one frame still yields exactly one frame.
func (a *Animation) FramesTotal() int {
	fps := a.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	n := int(a.Duration.Milliseconds() * int64(fps) / 1000)
	return max(n, 1)
}

// frameDelays returns the cumulative delay of each frame. The duration is
// split into equal millisecond steps with the remainder spread one
// millisecond each across the first frames, so the last frame lands exactly
// on the duration.
func (a *Animation) frameDelays() []time.Duration {
	n := a.FramesTotal()
	ms := max(a.Duration.Milliseconds(), 0)
	step, rem := ms/int64(n), ms%int64(n)
	delays := make([]time.Duration, n)
	var acc int64
	for i := range delays {
		acc += step
		if int64(i) < rem {
			acc++
		}
		delays[i] = time.Duration(acc) * time.Millisecond
	}
	return delays
}

// Start schedules every frame, delay after the current loop time. Any frames
// still pending from a previous start are cancelled first.
func (a *Animation) Start(delay time.Duration) {
	a.cancelTimers()
	ctrl := a.Controller
	if ctrl == nil {
		ctrl = Flat
	}
	delays := a.frameDelays()
	n := len(delays)
	a.run++
	run := a.run
	a.timers = a.timers[:0]
	for i, d := range delays {
		frame := i + 1
		last := frame == n
		a.timers = append(a.timers, a.loop.After(delay+d, func() {
			a.runFrame(ctrl, frame, n, last, run)
		}))
	}
	a.state = AnimScheduled
}

func (a *Animation) runFrame(ctrl Controller, frame, n int, last bool, run int) {
	v := ctrl(float64(frame) / float64(n))
	if a.Derivation {
		v -= ctrl(float64(frame-1) / float64(n))
	}
	if a.Callback != nil {
		a.Callback(v)
	}
	// The callback may have stopped or restarted the animation.
	if !last || a.state != AnimScheduled || a.run != run {
		return
	}
	a.timers = a.timers[:0]
	a.state = AnimCompleted
	if a.OnEnd != nil {
		a.ending = true
		a.OnEnd()
		a.ending = false
	}
	if a.state != AnimCompleted || a.run != run || a.Repeat == 0 {
		return
	}
	if a.Repeat > 0 {
		a.Repeat--
	}
	a.Start(0)
}

// Stop cancels every pending frame, newest first. No callback scheduled
// before Stop runs afterward. Called from OnEnd, it also cancels the repeat.
func (a *Animation) Stop() {
	if a.state != AnimScheduled && !(a.ending && a.state == AnimCompleted) {
		return
	}
	a.cancelTimers()
	a.state = AnimCancelled
}

func (a *Animation) cancelTimers() {
	for i := len(a.timers) - 1; i >= 0; i-- {
		a.loop.Cancel(a.timers[i])
	}
	a.timers = a.timers[:0]
}

// MoveWidget animates w by (dx, dy) over duration. Each frame moves the
// widget by the controller's change since the previous frame, so other moves
// applied during the animation are preserved.
func MoveWidget(w *Widget, dx, dy float64, duration time.Duration, ctrl Controller) *Animation {
	a := NewAnimation(w.canvas.env.Loop, duration, func(k float64) {
		w.Move(dx*k, dy*k)
	})
	a.Derivation = true
	a.FPS = w.canvas.env.FPS
	if ctrl != nil {
		a.Controller = ctrl
	}
	w.track(a)
	a.Start(0)
	return a
}

// ScaleFont animates the base font size of t by delta points over duration.
func ScaleFont(t *Text, delta float64, duration time.Duration, ctrl Controller) *Animation {
	w := t.widget
	a := NewAnimation(w.canvas.env.Loop, duration, func(k float64) {
		t.SetBaseFontSize(t.baseFontSize + delta*k)
	})
	a.Derivation = true
	a.FPS = w.canvas.env.FPS
	if ctrl != nil {
		a.Controller = ctrl
	}
	w.track(a)
	a.Start(0)
	return a
}
