package canopy

import (
	"errors"
	"testing"
)

func TestParseAnchor(t *testing.T) {
	for i, name := range anchorNames {
		a, err := ParseAnchor(name)
		if err != nil {
			t.Fatalf("ParseAnchor(%q): %v", name, err)
		}
		if a != Anchor(i) {
			t.Errorf("ParseAnchor(%q) = %v, want %v", name, a, Anchor(i))
		}
		if a.String() != name {
			t.Errorf("String() = %q, want %q", a.String(), name)
		}
	}
}

func TestParseAnchorUnknown(t *testing.T) {
	_, err := ParseAnchor("middle")
	if !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("err = %v, want ErrUnknownAnchor", err)
	}
}

func TestAnchorOffset(t *testing.T) {
	size := Vec2{40, 20}
	tests := []struct {
		anchor Anchor
		want   Vec2
	}{
		{AnchorNW, Vec2{0, 0}},
		{AnchorN, Vec2{20, 0}},
		{AnchorNE, Vec2{40, 0}},
		{AnchorW, Vec2{0, 10}},
		{AnchorCenter, Vec2{20, 10}},
		{AnchorE, Vec2{40, 10}},
		{AnchorSW, Vec2{0, 20}},
		{AnchorS, Vec2{20, 20}},
		{AnchorSE, Vec2{40, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			if got := tt.anchor.Offset(size); got != tt.want {
				t.Errorf("Offset = %v, want %v", got, tt.want)
			}
			tl := tt.anchor.TopLeft(Vec2{100, 100}, size)
			if got := tl.Add(tt.want); got != (Vec2{100, 100}) {
				t.Errorf("TopLeft + Offset = %v, want (100, 100)", got)
			}
		})
	}
}

func TestAnchorOffsetInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid anchor")
		}
	}()
	Anchor(numAnchors).Offset(Vec2{1, 1})
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	for _, p := range []Vec2{{10, 10}, {30, 30}, {20, 15}} {
		if !r.Contains(p.X, p.Y) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Vec2{{9, 10}, {31, 30}, {20, 40}} {
		if r.Contains(p.X, p.Y) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{0, 0, 10, 10}.Union(Rect{5, -5, 10, 10})
	want := Rect{0, -5, 15, 15}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := (Rect{}).Union(want); got != want {
		t.Errorf("empty Union = %v, want %v", got, want)
	}
}
