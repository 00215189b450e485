package ui

import (
	"fmt"

	"github.com/dshills/tuikit/internal/geometry"
	"github.com/dshills/tuikit/internal/input/key"
	"github.com/dshills/tuikit/internal/renderer/core"
	"github.com/dshills/tuikit/internal/theme"
)

// Surface is the drawing target widgets render to. BufferedBackend satisfies
// it; tests use a recording fake.
type Surface interface {
	SetString(x, y int, s string, style core.Style)
}

// Context drives one immediate-mode interface. It owns the hot/active state
// machine, the focus order recorded from the previous frame, the layout
// stack, and the single pending input intent. It is not safe for concurrent
// use; the frame loop is strictly sequential.
type Context struct {
	surface    Surface
	theme      theme.Theme
	fieldWidth int

	hot     ID
	active  ID
	pending key.Intent

	ids        []ID
	prevIDs    []ID
	focusIndex int

	layouts []layoutFrame
}

// New creates a context rendering to surface. fieldWidth is the fixed column
// width of edit fields; values below one fall back to the default of 20.
func New(surface Surface, th theme.Theme, fieldWidth int) *Context {
	if fieldWidth < 1 {
		fieldWidth = 20
	}
	return &Context{
		surface:    surface,
		theme:      th,
		fieldWidth: fieldWidth,
		hot:        IDNone,
		active:     IDNone,
	}
}

// Feed stores the intent the next frame will consume. At most one intent is
// pending at a time; feeding again before the frame runs replaces it.
func (c *Context) Feed(in key.Intent) {
	c.pending = in
}

// Captured reports whether a widget is currently active and therefore owns
// the character stream. Frame drivers check this before treating runes as
// global shortcuts.
func (c *Context) Captured() bool {
	return c.active != IDNone
}

// Hot returns the ID of the focused widget, or IDNone.
func (c *Context) Hot() ID {
	return c.hot
}

// Active returns the ID of the engaged widget, or IDNone.
func (c *Context) Active() ID {
	return c.active
}

// Begin opens a frame rooted at origin. It resolves any pending focus
// navigation against the widget order recorded last frame, derives the hot
// widget, and pushes the root vertical layout. Begin panics if the previous
// frame left the layout stack unbalanced.
func (c *Context) Begin(origin geometry.Point) {
	if len(c.layouts) != 0 {
		panic(fmt.Sprintf("ui: Begin with %d unclosed layouts", len(c.layouts)))
	}

	// Focus indexes into last frame's widget list. If the interface shrank
	// since then, clamp rather than lose focus entirely.
	if c.focusIndex >= len(c.prevIDs) {
		c.focusIndex = len(c.prevIDs) - 1
	}
	if c.focusIndex < 0 {
		c.focusIndex = 0
	}

	// Navigation only moves focus while no widget is engaged; an active
	// widget owns the pending intent until it releases.
	if c.active == IDNone && len(c.prevIDs) > 0 {
		switch c.pending.Kind {
		case key.IntentNext:
			c.focusIndex = (c.focusIndex + 1) % len(c.prevIDs)
			c.pending = key.None()
		case key.IntentPrevious:
			c.focusIndex = (c.focusIndex - 1 + len(c.prevIDs)) % len(c.prevIDs)
			c.pending = key.None()
		}
	}

	if len(c.prevIDs) == 0 {
		c.hot = IDNone
	} else {
		c.hot = c.prevIDs[c.focusIndex]
	}

	c.ids = c.ids[:0]
	c.layouts = append(c.layouts, newLayoutFrame(Vertical, origin, 0))
}

// End closes the frame. It panics unless exactly the root layout remains,
// discards any intent no widget consumed, and snapshots this frame's widget
// order for the next frame's focus navigation.
func (c *Context) End() {
	if len(c.layouts) != 1 {
		panic(fmt.Sprintf("ui: End with %d layouts on the stack, want 1", len(c.layouts)))
	}
	c.layouts = c.layouts[:0]
	c.pending = key.None()
	c.prevIDs = append(c.prevIDs[:0], c.ids...)
}

// BeginLayout opens a nested layout at the parent's free position. pad is the
// gap inserted after each child along the primary axis.
func (c *Context) BeginLayout(orient Orientation, pad int) {
	if len(c.layouts) == 0 {
		panic("ui: BeginLayout outside a frame")
	}
	pos := c.top().freePos()
	c.layouts = append(c.layouts, newLayoutFrame(orient, pos, pad))
}

// EndLayout pops the innermost nested layout and folds its extent into the
// parent. Popping the root belongs to End; EndLayout panics on it.
func (c *Context) EndLayout() {
	if len(c.layouts) <= 1 {
		panic("ui: EndLayout without matching BeginLayout")
	}
	child := c.layouts[len(c.layouts)-1]
	c.layouts = c.layouts[:len(c.layouts)-1]
	c.top().addSize(child.size)
}

func (c *Context) top() *layoutFrame {
	return &c.layouts[len(c.layouts)-1]
}

// register records a widget in this frame's focus order.
func (c *Context) register(id ID) {
	if len(c.layouts) == 0 {
		panic("ui: widget declared outside a frame")
	}
	c.ids = append(c.ids, id)
}

// place claims room for a widget and returns its render position.
func (c *Context) place(size geometry.Point) geometry.Point {
	pos := c.top().freePos()
	c.top().addSize(size)
	return pos
}

func (c *Context) setActive(id ID) {
	if c.active != IDNone && c.active != id {
		panic(fmt.Sprintf("ui: widget %d activated while widget %d is active", id, c.active))
	}
	c.active = id
}

func (c *Context) clearActive() {
	c.active = IDNone
}

// styleFor picks the theme role for a widget's current state.
func (c *Context) styleFor(id ID) core.Style {
	switch {
	case id == c.active:
		return c.theme.Active
	case id == c.hot:
		return c.theme.Hot
	default:
		return c.theme.Inactive
	}
}
