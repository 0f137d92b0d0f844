// Package canopy is a retained-mode 2D widget toolkit drawn on a single
// low-level surface.
//
// A [Canvas] owns widgets and nested canvases and is the only thing that
// starts a zoom pass: resizing it rescales every widget proportionally to the
// size it was first laid out at. A [Widget] owns [Element]s (shapes, text and
// images), nested widgets and one [Feature] that turns input events into
// state changes. Each element maps widget states to drawing attributes, and
// color changes fade in through an [Animation] instead of snapping. Every
// animation runs on the [Env]'s single-threaded [Loop]; [Ease] adapts any
// [gween] easing function as an animation controller.
//
// # Quick start
//
// The ebitensurface package draws a canvas in an [Ebitengine] window:
//
//	env := canopy.NewEnv(theme.Default())
//	surface, _ := ebitensurface.New()
//	root := canopy.NewCanvas(env, surface, canopy.CanvasConfig{Name: "root"})
//	root.Resize(480, 240)
//
//	widgets.NewButton(root, "OK", canopy.Vec2{X: 240, Y: 120}, canopy.Vec2{X: 100, Y: 32},
//		widgets.Options{Anchor: canopy.AnchorCenter})
//
//	ebitensurface.Run(ebitensurface.NewGame(surface, root, nil), ebitensurface.RunConfig{
//		Title: "demo", Width: 480, Height: 240,
//	})
//
// Tests and headless tools use [MemorySurface] and drive time with
// [Loop.Advance]:
//
//	s := canopy.NewMemorySurface()
//	root := canopy.NewCanvas(env, s, canopy.CanvasConfig{})
//	// ... build widgets ...
//	s.Emit(canopy.Event{Kind: canopy.EventMotion, X: 40, Y: 20})
//	env.Loop.Advance(time.Second)
//
// # Zooming
//
// The first [Canvas.Resize] records the design size. Later resizes apply the
// canvas policy ([KeepRatio], then [Expand]) and zoom each top-level widget
// once by the ratio between the new and previous size. Nested canvases follow
// their parent's ratio through their own policy. Text scales its font by the
// geometric mean of the axis ratios, so glyphs never stretch.
//
// # States and styles
//
// [Widget.Update] moves a widget to a named state ("normal", "hover",
// "active", "disabled", or any custom name) and configures each element with
// its style for that state. Styles come from the element's options layered
// over the env's theme (see the theme package). With gradients on, color
// attributes fade over [Env.GradientDuration]; a newer write to the same
// attribute always cancels the running fade.
//
// # Scripted input
//
// [Canvas.InjectClick] and friends queue synthetic events that
// [Canvas.ProcessInput] dispatches one per frame. [LoadScript] reads a JSON
// script of clicks, drags, waits, resizes and screenshots for automated
// visual checks.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package canopy
