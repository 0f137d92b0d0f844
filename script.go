package canopy

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "click": true, "drag": true, "wait": true,
	"resize": true, "key": true, "screenshot": true,
}

// ScriptRunner sequences injected input, resizes and screenshots across
// frames for headless runs and automated visual checks.
type ScriptRunner struct {
	// Screenshot is called for "screenshot" steps. Backends that can
	// capture frames set it; when nil the step is skipped.
	Screenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "click", "x": 40, "y": 20},
//	  {"action": "wait", "frames": 10},
//	  {"action": "screenshot", "label": "pressed"}
//	]}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame against c. It waits for injected
// events to drain before running the next step.
func (r *ScriptRunner) Step(c *Canvas) error {
	if r.done {
		return nil
	}
	if c.PendingInput() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "screenshot":
		if r.Screenshot != nil {
			r.Screenshot(st.Label)
		}
	case "move":
		c.InjectMove(st.X, st.Y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		err = c.Resize(st.Width, st.Height)
	case "key":
		var ch rune
		if len([]rune(st.Key)) == 1 {
			ch = []rune(st.Key)[0]
		}
		c.InjectKey(st.Key, ch)
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && c.PendingInput() == 0 {
		r.done = true
	}
	return nil
}

// Run drives c headlessly until the script is done: each frame runs one
// step, processes one injected event and advances the env's Loop by frame.
// maxFrames bounds the run; zero means no bound.
func (r *ScriptRunner) Run(c *Canvas, frame time.Duration, maxFrames int) error {
	for n := 0; !r.done; n++ {
		if maxFrames > 0 && n >= maxFrames {
			return fmt.Errorf("script not done after %d frames", maxFrames)
		}
		if err := r.Step(c); err != nil {
			return err
		}
		c.ProcessInput()
		c.env.Loop.Advance(frame)
	}
	return nil
}
