package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/canopy"
)

// pointerState is the mouse state seen on the previous frame.
type pointerState struct {
	x, y    float64
	inside  bool
	pressed bool
	button  canopy.MouseButton
	primed  bool
}

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	cb canopy.MouseButton
}{
	{ebiten.MouseButtonLeft, canopy.MouseButtonLeft},
	{ebiten.MouseButtonRight, canopy.MouseButtonRight},
	{ebiten.MouseButtonMiddle, canopy.MouseButtonMiddle},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() canopy.KeyModifiers {
	var mods canopy.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= canopy.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= canopy.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= canopy.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= canopy.ModMeta
	}
	return mods
}

// pollInput turns this frame's Ebitengine input into canopy events, in the
// order enter, motion or drag, press, release, wheel, keys, leave.
func (g *Game) pollInput() {
	mods := readModifiers()
	emit := func(ev canopy.Event) {
		ev.Modifiers = mods
		g.Surface.Emit(ev)
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	p := &g.pointer
	inside := mx >= 0 && my >= 0 && x < g.width && y < g.height

	if inside && !p.inside {
		emit(canopy.Event{Kind: canopy.EventEnter, X: x, Y: y})
	}
	if inside && (!p.primed || x != p.x || y != p.y) {
		if p.pressed {
			emit(canopy.Event{Kind: canopy.EventDrag, X: x, Y: y, Button: p.button})
		} else {
			emit(canopy.Event{Kind: canopy.EventMotion, X: x, Y: y})
		}
	}

	for _, b := range mouseButtons {
		if !p.pressed && inpututil.IsMouseButtonJustPressed(b.eb) {
			p.pressed, p.button = true, b.cb
			emit(canopy.Event{Kind: canopy.EventPress, X: x, Y: y, Button: b.cb})
		}
	}
	if p.pressed && !ebiten.IsMouseButtonPressed(buttonOf(p.button)) {
		p.pressed = false
		emit(canopy.Event{Kind: canopy.EventRelease, X: x, Y: y, Button: p.button})
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		emit(canopy.Event{Kind: canopy.EventWheel, X: x, Y: y, Delta: dy})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for i, k := range g.keys {
		ev := canopy.Event{Kind: canopy.EventKeyPress, Key: k.String()}
		if i < len(g.runes) && len(g.keys) == len(g.runes) {
			ev.Rune = g.runes[i]
		}
		emit(ev)
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		emit(canopy.Event{Kind: canopy.EventKeyRelease, Key: k.String()})
	}

	if !inside && p.inside {
		emit(canopy.Event{Kind: canopy.EventLeave, X: x, Y: y})
	}
	p.x, p.y, p.inside, p.primed = x, y, inside, true
}

func buttonOf(b canopy.MouseButton) ebiten.MouseButton {
	for _, m := range mouseButtons {
		if m.cb == b {
			return m.eb
		}
	}
	return ebiten.MouseButtonLeft
}
