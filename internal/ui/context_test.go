package ui

import (
	"testing"

	"github.com/dshills/tuikit/internal/geometry"
	"github.com/dshills/tuikit/internal/input/key"
	"github.com/dshills/tuikit/internal/renderer/core"
	"github.com/dshills/tuikit/internal/theme"
)

// recordingSurface captures SetString calls for assertions.
type recordingSurface struct {
	writes []surfaceWrite
}

type surfaceWrite struct {
	pos   geometry.Point
	text  string
	style core.Style
}

func (s *recordingSurface) SetString(x, y int, text string, style core.Style) {
	s.writes = append(s.writes, surfaceWrite{pos: geometry.Pt(x, y), text: text, style: style})
}

func (s *recordingSurface) reset() {
	s.writes = s.writes[:0]
}

// posOf returns where text was last written, or (-1, -1).
func (s *recordingSurface) posOf(text string) geometry.Point {
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].text == text {
			return s.writes[i].pos
		}
	}
	return geometry.Pt(-1, -1)
}

// styleOf returns the style text was last written with.
func (s *recordingSurface) styleOf(t *testing.T, text string) core.Style {
	t.Helper()
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].text == text {
			return s.writes[i].style
		}
	}
	t.Fatalf("no write containing %q", text)
	return core.Style{}
}

func testTheme() theme.Theme {
	return theme.Default()
}

func TestFirstFrameHasNoFocus(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	a, b := gen.Next(), gen.Next()

	ctx.Begin(geometry.Pt(0, 0))
	ctx.Button(a, "one")
	ctx.Button(b, "two")
	ctx.End()

	if ctx.Hot() != IDNone {
		t.Errorf("first frame hot = %d, want IDNone", ctx.Hot())
	}
}

func TestFocusFollowsPreviousFrameOrder(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	a, b, c := gen.Next(), gen.Next(), gen.Next()

	frame := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.Button(a, "a")
		ctx.Button(b, "b")
		ctx.Button(c, "c")
		ctx.End()
	}

	frame() // seed prev-frame order
	frame()
	if ctx.Hot() != a {
		t.Fatalf("hot = %d, want first widget %d", ctx.Hot(), a)
	}

	ctx.Feed(key.Next())
	frame()
	if ctx.Hot() != b {
		t.Errorf("hot after Next = %d, want %d", ctx.Hot(), b)
	}

	ctx.Feed(key.Previous())
	frame()
	if ctx.Hot() != a {
		t.Errorf("hot after Previous = %d, want %d", ctx.Hot(), a)
	}
}

func TestFocusWrapsAtBothEnds(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	a, b, c := gen.Next(), gen.Next(), gen.Next()

	frame := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.Button(a, "a")
		ctx.Button(b, "b")
		ctx.Button(c, "c")
		ctx.End()
	}

	frame()
	frame()

	ctx.Feed(key.Previous())
	frame()
	if ctx.Hot() != c {
		t.Errorf("Previous from first wrapped to %d, want last %d", ctx.Hot(), c)
	}

	ctx.Feed(key.Next())
	frame()
	if ctx.Hot() != a {
		t.Errorf("Next from last wrapped to %d, want first %d", ctx.Hot(), a)
	}
}

func TestFocusClampsWhenInterfaceShrinks(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	a, b, c := gen.Next(), gen.Next(), gen.Next()

	wide := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.Button(a, "a")
		ctx.Button(b, "b")
		ctx.Button(c, "c")
		ctx.End()
	}
	narrow := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.Button(a, "a")
		ctx.End()
	}

	wide()
	wide()
	ctx.Feed(key.Next())
	wide()
	ctx.Feed(key.Next())
	wide() // focus now on the third widget

	narrow() // previous frame still listed three widgets
	narrow()
	if ctx.Hot() != a {
		t.Errorf("hot after shrink = %d, want clamped to %d", ctx.Hot(), a)
	}
}

func TestNavigationIgnoredWhileWidgetActive(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	field, btn := gen.Next(), gen.Next()
	var buf string

	frame := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.EditField(field, &buf)
		ctx.Button(btn, "go")
		ctx.End()
	}

	frame()
	frame() // field is hot
	ctx.Feed(key.Activate())
	frame() // field engaged
	if !ctx.Captured() {
		t.Fatal("field should be active")
	}

	ctx.Feed(key.Next())
	frame()
	if ctx.Hot() != field {
		t.Errorf("hot moved to %d while a widget was active", ctx.Hot())
	}
	if !ctx.Captured() {
		t.Error("field should still be active")
	}
}

func TestEndClearsUnconsumedIntent(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)

	ctx.Feed(key.Char('x'))
	ctx.Begin(geometry.Pt(0, 0))
	ctx.Label("nothing focusable")
	ctx.End()

	if ctx.pending.Kind != key.IntentNone {
		t.Errorf("pending intent survived End: %v", ctx.pending.Kind)
	}
}

func TestBeginPanicsAfterUnclosedFrame(t *testing.T) {
	defer expectPanic(t)
	ctx := New(&recordingSurface{}, testTheme(), 20)
	ctx.Begin(geometry.Pt(0, 0))
	ctx.Begin(geometry.Pt(0, 0))
}

func TestDoubleActivationPanics(t *testing.T) {
	defer expectPanic(t)
	ctx := New(&recordingSurface{}, testTheme(), 20)
	ctx.setActive(1)
	ctx.setActive(2)
}

func TestLabelsTakeNoFocus(t *testing.T) {
	ctx := New(&recordingSurface{}, testTheme(), 20)
	gen := NewGenerator()
	btn := gen.Next()

	frame := func() {
		ctx.Begin(geometry.Pt(0, 0))
		ctx.Label("heading")
		ctx.Button(btn, "only")
		ctx.Label("footer")
		ctx.End()
	}

	frame()
	frame()
	if ctx.Hot() != btn {
		t.Fatalf("hot = %d, want the only button %d", ctx.Hot(), btn)
	}

	// With a single focusable widget, navigation stays put.
	ctx.Feed(key.Next())
	frame()
	if ctx.Hot() != btn {
		t.Errorf("hot = %d after Next, want %d", ctx.Hot(), btn)
	}
}
