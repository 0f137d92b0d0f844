package canopy

// Handler handles one kind of event for a Feature. It returns true when the
// event was consumed, which stops propagation to widgets underneath unless the
// widget lets events through.
type Handler func(f *Feature, ev *Event) bool

// Behavior is the set of event handlers a kind of widget reacts to. Leave
// fields nil for events the widget ignores. A Behavior is usually declared
// once as a package-level variable and shared by every widget of that kind;
// its dispatch table is built on first use.
type Behavior struct {
	Motion     Handler
	Press      Handler
	Drag       Handler
	Release    Handler
	Wheel      Handler
	KeyPress   Handler
	KeyRelease Handler
	Enter      Handler
	Leave      Handler

	table *[numEventKinds]Handler
}

// Inert is the Behavior of widgets that react to no events.
var Inert = &Behavior{}

func (b *Behavior) compile() *[numEventKinds]Handler {
	if b.table == nil {
		b.table = &[numEventKinds]Handler{
			EventMotion:     b.Motion,
			EventPress:      b.Press,
			EventDrag:       b.Drag,
			EventRelease:    b.Release,
			EventWheel:      b.Wheel,
			EventKeyPress:   b.KeyPress,
			EventKeyRelease: b.KeyRelease,
			EventEnter:      b.Enter,
			EventLeave:      b.Leave,
		}
	}
	return b.table
}

type binding struct {
	id BindingID
	fn func(*Event)
}

// Feature turns events into state transitions for exactly one widget. It
// holds no interaction state itself; handlers read and write the widget's
// state through Widget.State and Widget.Update.
type Feature struct {
	widget   *Widget
	behavior *Behavior
	table    *[numEventKinds]Handler
	extra    [numEventKinds][]binding
	nextID   BindingID
}

// NewFeature binds a feature running b to w, replacing w's previous feature.
// Extra handlers bound to the previous feature carry over.
func NewFeature(w *Widget, b *Behavior) *Feature {
	if b == nil {
		b = Inert
	}
	f := &Feature{widget: w, behavior: b, table: b.compile()}
	if old := w.feature; old != nil {
		f.extra = old.extra
		f.nextID = old.nextID
	}
	w.feature = f
	return f
}

// Widget returns the bound widget.
func (f *Feature) Widget() *Widget {
	return f.widget
}

// Behavior returns the handler set the feature runs.
func (f *Feature) Behavior() *Behavior {
	return f.behavior
}

// Handles reports whether the behavior has a handler for kind.
func (f *Feature) Handles(kind EventKind) bool {
	return kind < numEventKinds && f.table[kind] != nil
}

// Dispatch runs the handler for ev.Kind and then every extra callback bound
// to that kind. Destroyed, disabled and hidden widgets ignore events.
// Returns whether the handler consumed the event.
func (f *Feature) Dispatch(ev *Event) bool {
	w := f.widget
	if ev.Kind >= numEventKinds || w.destroyed || w.disabled || w.hidden {
		return false
	}
	consumed := false
	if h := f.table[ev.Kind]; h != nil {
		consumed = h(f, ev)
	}
	for _, b := range f.extra[ev.Kind] {
		b.fn(ev)
	}
	return consumed
}

func (f *Feature) bind(kind EventKind, fn func(*Event)) BindingID {
	if kind >= numEventKinds {
		panic("canopy: bind to unknown event kind")
	}
	f.nextID++
	f.extra[kind] = append(f.extra[kind], binding{id: f.nextID, fn: fn})
	return f.nextID
}

func (f *Feature) unbind(id BindingID) bool {
	for k := range f.extra {
		s := f.extra[k]
		for i := range s {
			if s[i].id == id {
				copy(s[i:], s[i+1:])
				s[len(s)-1] = binding{}
				f.extra[k] = s[:len(s)-1]
				return true
			}
		}
	}
	return false
}

// Hit reports whether ev is an unclaimed pointer event over any element of
// the bound widget. Handlers use it as their hit test.
func (f *Feature) Hit(ev *Event) bool {
	return !ev.Claimed && f.widget.Detect(ev.X, ev.Y)
}
