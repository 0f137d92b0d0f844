package widgets

import (
	"fmt"

	"github.com/phanxgames/canopy"
)

// GallerySize is the design size the gallery is laid out for.
var GallerySize = canopy.Vec2{X: 320, Y: 200}

// Gallery is a small demo scene with one of each widget. The CLI shows it and
// tests drive it.
type Gallery struct {
	Title   *Label
	Button  *Button
	Tooltip *Tooltip
	Switch  *Switch
	Status  *Label
	Panel   *canopy.Canvas

	clicks int
}

// NewGallery builds the gallery on c, which should be laid out at
// GallerySize or not laid out yet.
func NewGallery(c *canopy.Canvas) *Gallery {
	g := &Gallery{}
	g.Title = NewLabel(c, "canopy", canopy.Vec2{X: 160, Y: 24}, canopy.Vec2{X: 200, Y: 24},
		Options{Anchor: canopy.AnchorCenter, FontSize: 18})

	g.Panel = c.NewCanvas(canopy.Vec2{X: 160, Y: 110}, canopy.Vec2{X: 280, Y: 100}, canopy.CanvasConfig{
		Name:       "panel",
		Anchor:     canopy.AnchorCenter,
		FreeAnchor: true,
		KeepRatio:  canopy.KeepMin,
	})
	g.Button = NewButton(g.Panel, "Press me", canopy.Vec2{X: 20, Y: 20}, canopy.Vec2{X: 110, Y: 32}, Options{})
	g.Tooltip = NewTooltip(g.Button.Widget, "Counts clicks", canopy.Vec2{X: 110, Y: 22}, Options{FontSize: 11})
	g.Switch = NewSwitch(g.Panel, false, canopy.Vec2{X: 200, Y: 24}, canopy.Vec2{X: 48, Y: 24}, Options{})

	g.Status = NewLabel(c, "", canopy.Vec2{X: 160, Y: 180}, canopy.Vec2{X: 280, Y: 20},
		Options{Anchor: canopy.AnchorCenter})
	g.refresh()

	g.Button.OnClick(func(*Button) {
		g.clicks++
		g.refresh()
	})
	g.Switch.OnChange(func(_ *Switch, on bool) {
		g.Button.SetDisabled(on)
		g.refresh()
	})
	return g
}

// Clicks returns the number of button clicks.
func (g *Gallery) Clicks() int { return g.clicks }

func (g *Gallery) refresh() {
	lock := "unlocked"
	if g.Switch.On() {
		lock = "locked"
	}
	g.Status.SetText(fmt.Sprintf("clicks: %d, button %s", g.clicks, lock))
}
