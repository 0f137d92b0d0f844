package canopy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger with timestamp formatting that writes to w and
// filters messages below level. Timestamps are formatted as "HH:MM:SS.ms".
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "canopy",
	})
}

// SetDebug enables or disables debug mode. When enabled, the logger level
// drops to Debug, zoom passes and dispatches are traced, tree depth and child
// count warnings are logged, and operations on destroyed widgets panic.
func (e *Env) SetDebug(enabled bool) {
	e.debug = enabled
	if e.Logger == nil {
		return
	}
	if enabled {
		e.Logger.SetLevel(log.DebugLevel)
	} else {
		e.Logger.SetLevel(log.WarnLevel)
	}
}

// Debug reports whether debug mode is on.
func (e *Env) Debug() bool {
	return e.debug
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// widget is used in a tree operation. Callers skip it outside debug mode.
func debugCheckDestroyed(w *Widget, op string) {
	if w.destroyed {
		panic(fmt.Sprintf("canopy debug: %s on destroyed widget %q (ID was %d)", op, w.Type, w.ID))
	}
}

// debugMaxTreeDepth is the nesting depth past which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		w.canvas.env.Logger.Warn("widget tree too deep", "depth", depth, "limit", debugMaxTreeDepth, "widget", w.Type)
	}
}

// debugMaxChildCount is the number of direct children past which a warning
// is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(env *Env, owner string, n int) {
	if n > debugMaxChildCount {
		env.Logger.Warn("too many children", "owner", owner, "count", n, "limit", debugMaxChildCount)
	}
}
