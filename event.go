package canopy

import "fmt"

// EventKind identifies a kind of input event a Feature can handle.
type EventKind uint8

const (
	EventMotion     EventKind = iota // pointer moved with no button held
	EventPress                       // pointer button pressed
	EventDrag                        // pointer moved with a button held
	EventRelease                     // pointer button released
	EventWheel                       // scroll wheel turned
	EventKeyPress                    // key pressed
	EventKeyRelease                  // key released
	EventEnter                       // pointer entered the surface
	EventLeave                       // pointer left the surface
	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	"motion", "press", "drag", "release", "wheel", "key-press", "key-release", "enter", "leave",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind converts an event kind name back to an EventKind.
func ParseEventKind(s string) (EventKind, bool) {
	for i, name := range eventKindNames {
		if s == name {
			return EventKind(i), true
		}
	}
	return 0, false
}

// isPointer reports whether events of this kind carry a meaningful position.
func (k EventKind) isPointer() bool {
	switch k {
	case EventMotion, EventPress, EventDrag, EventRelease, EventWheel:
		return true
	}
	return false
}

// passesClaimed reports whether events of this kind keep propagating to
// widgets underneath once a widget above has consumed them. Those widgets see
// the event with Claimed set so they can leave hover/active states.
func (k EventKind) passesClaimed() bool {
	switch k {
	case EventMotion, EventDrag, EventRelease, EventLeave:
		return true
	}
	return false
}

// Event carries normalized input data. X and Y are surface coordinates.
type Event struct {
	Kind      EventKind
	X, Y      float64
	Button    MouseButton
	Delta     float64 // wheel steps, positive away from the user
	Key       string  // key name for key events
	Rune      rune    // typed character for key presses, 0 if none
	Modifiers KeyModifiers

	// Claimed is set when a widget above has already consumed the event.
	// Handlers should treat the pointer as not over their widget.
	Claimed bool
}
