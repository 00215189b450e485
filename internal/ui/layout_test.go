package ui

import (
	"testing"

	"github.com/dshills/tuikit/internal/geometry"
)

func TestLayoutFrameVertical(t *testing.T) {
	f := newLayoutFrame(Vertical, geometry.Pt(2, 3), 1)

	if got := f.freePos(); !got.Equals(geometry.Pt(2, 3)) {
		t.Errorf("empty frame freePos = %v, want (2, 3)", got)
	}

	f.addSize(geometry.Pt(10, 1))
	if got := f.freePos(); !got.Equals(geometry.Pt(2, 5)) {
		t.Errorf("freePos after one child = %v, want (2, 5)", got)
	}

	f.addSize(geometry.Pt(4, 1))
	if got := f.freePos(); !got.Equals(geometry.Pt(2, 7)) {
		t.Errorf("freePos after two children = %v, want (2, 7)", got)
	}
	if f.size.X != 10 {
		t.Errorf("secondary axis = %d, want max child width 10", f.size.X)
	}
}

func TestLayoutFrameHorizontal(t *testing.T) {
	f := newLayoutFrame(Horizontal, geometry.Pt(0, 0), 2)

	f.addSize(geometry.Pt(5, 1))
	f.addSize(geometry.Pt(3, 4))

	if got := f.freePos(); !got.Equals(geometry.Pt(12, 0)) {
		t.Errorf("freePos = %v, want (12, 0)", got)
	}
	if f.size.Y != 4 {
		t.Errorf("secondary axis = %d, want max child height 4", f.size.Y)
	}
}

func TestLayoutFrameZeroPadding(t *testing.T) {
	f := newLayoutFrame(Vertical, geometry.Pt(0, 0), 0)
	for i := 0; i < 3; i++ {
		f.addSize(geometry.Pt(1, 1))
	}
	if got := f.freePos(); !got.Equals(geometry.Pt(0, 3)) {
		t.Errorf("freePos = %v, want (0, 3)", got)
	}
}

func TestOrientationString(t *testing.T) {
	if Vertical.String() != "Vertical" || Horizontal.String() != "Horizontal" {
		t.Errorf("unexpected orientation names %q, %q", Vertical, Horizontal)
	}
}

func TestNestedLayoutFoldsIntoParent(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	ctx.Begin(geometry.Pt(0, 0))

	ctx.Label("above")

	ctx.BeginLayout(Horizontal, 1)
	ctx.Label("left")
	ctx.Label("right")
	ctx.EndLayout()

	ctx.Label("below")
	ctx.End()

	s := ctx.surface.(*recordingSurface)
	if got := s.posOf("above"); !got.Equals(geometry.Pt(0, 0)) {
		t.Errorf("above at %v, want (0, 0)", got)
	}
	if got := s.posOf("left"); !got.Equals(geometry.Pt(0, 1)) {
		t.Errorf("left at %v, want (0, 1)", got)
	}
	// "left" is 4 wide plus 1 padding.
	if got := s.posOf("right"); !got.Equals(geometry.Pt(5, 1)) {
		t.Errorf("right at %v, want (5, 1)", got)
	}
	if got := s.posOf("below"); !got.Equals(geometry.Pt(0, 2)) {
		t.Errorf("below at %v, want (0, 2)", got)
	}
}

func TestUnbalancedLayoutPanics(t *testing.T) {
	t.Run("end with open layout", func(t *testing.T) {
		defer expectPanic(t)
		ctx := New(&recordingSurface{}, testTheme(), 20)
		ctx.Begin(geometry.Pt(0, 0))
		ctx.BeginLayout(Horizontal, 0)
		ctx.End()
	})

	t.Run("extra end layout", func(t *testing.T) {
		defer expectPanic(t)
		ctx := New(&recordingSurface{}, testTheme(), 20)
		ctx.Begin(geometry.Pt(0, 0))
		ctx.EndLayout()
	})

	t.Run("begin layout outside frame", func(t *testing.T) {
		defer expectPanic(t)
		ctx := New(&recordingSurface{}, testTheme(), 20)
		ctx.BeginLayout(Vertical, 0)
	})

	t.Run("widget outside frame", func(t *testing.T) {
		defer expectPanic(t)
		ctx := New(&recordingSurface{}, testTheme(), 20)
		ctx.Label("stray")
	})
}

func expectPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Error("expected panic")
	}
}
