package canopy

// InjectPress queues a left-button press at the given surface coordinates.
// Injected events are consumed one per ProcessInput call.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectHeld = true
	c.pendingInput = append(c.pendingInput, Event{Kind: EventPress, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move. While an injected press is held the move
// is queued as a drag.
func (c *Canvas) InjectMove(x, y float64) {
	ev := Event{Kind: EventMotion, X: x, Y: y}
	if c.injectHeld {
		ev.Kind = EventDrag
		ev.Button = MouseButtonLeft
	}
	c.pendingInput = append(c.pendingInput, ev)
}

// InjectRelease queues a left-button release.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectHeld = false
	c.pendingInput = append(c.pendingInput, Event{Kind: EventRelease, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ProcessInput calls.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated drag events and a release at (toX, toY). The sequence
// consumes frames calls; the minimum is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectKey queues a key press and its release.
func (c *Canvas) InjectKey(key string, r rune) {
	c.pendingInput = append(c.pendingInput,
		Event{Kind: EventKeyPress, Key: key, Rune: r},
		Event{Kind: EventKeyRelease, Key: key},
	)
}

// PendingInput returns the number of injected events not yet processed.
func (c *Canvas) PendingInput() int {
	return len(c.pendingInput)
}

// ProcessInput pops one injected event and dispatches it. Returns true if an
// event was processed, in which case backends skip real input that frame.
func (c *Canvas) ProcessInput() bool {
	if len(c.pendingInput) == 0 {
		return false
	}
	ev := c.pendingInput[0]
	copy(c.pendingInput, c.pendingInput[1:])
	c.pendingInput = c.pendingInput[:len(c.pendingInput)-1]
	c.Dispatch(&ev)
	return true
}
