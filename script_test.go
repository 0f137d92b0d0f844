package canopy

import (
	"errors"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "resize", "width": 640, "height": 480}
		]
	}`)
	r, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(r.steps))
	}
	if r.steps[1].X != 100 || r.steps[1].Y != 200 {
		t.Errorf("click step = %+v", r.steps[1])
	}
	if r.steps[3].Width != 640 || r.steps[3].Height != 480 {
		t.Errorf("resize step = %+v", r.steps[3])
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "fly"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestScriptRun(t *testing.T) {
	c, _ := newTestCanvas(t)
	kinds := recordKinds(c)
	var shots []string

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 10},
		{"action": "click", "x": 20, "y": 20},
		{"action": "wait", "frames": 2},
		{"action": "resize", "width": 200, "height": 100},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.Screenshot = func(label string) { shots = append(shots, label) }

	if err := r.Run(c, 16*time.Millisecond, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !r.Done() {
		t.Error("runner not done")
	}
	want := []EventKind{EventMotion, EventPress, EventRelease}
	if len(*kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", *kinds, want)
	}
	if c.Ratio() != (Vec2{2, 1}) {
		t.Errorf("Ratio = %v, want (2, 1)", c.Ratio())
	}
	if len(shots) != 1 || shots[0] != "done" {
		t.Errorf("screenshots = %v, want [done]", shots)
	}
}

func TestScriptResizeError(t *testing.T) {
	c, _ := newTestCanvas(t)
	r, err := LoadScript([]byte(`{"steps": [{"action": "resize", "width": 0, "height": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(c, 16*time.Millisecond, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}
