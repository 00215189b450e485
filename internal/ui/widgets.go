package ui

import (
	"strings"

	"github.com/dshills/tuikit/internal/geometry"
	"github.com/dshills/tuikit/internal/input/key"
	"github.com/dshills/tuikit/internal/renderer/core"
)

// Label renders static text. Labels take no ID and never participate in
// focus; they exist purely to occupy layout space and draw.
func (c *Context) Label(text string) {
	if len(c.layouts) == 0 {
		panic("ui: widget declared outside a frame")
	}
	size := geometry.Pt(core.StringWidth(text), 1)
	pos := c.place(size)
	c.surface.SetString(pos.X, pos.Y, text, c.theme.Inactive)
}

// Checkbox renders a toggle as "[X] label" or "[ ] label". Activating it
// while focused flips *checked and reports the click in the same frame,
// rendering that one frame with the active style.
func (c *Context) Checkbox(id ID, label string, checked *bool) bool {
	c.register(id)

	clicked := false
	style := c.styleFor(id)
	if c.hot == id && c.active == IDNone && c.pending.Kind == key.IntentActivate {
		*checked = !*checked
		clicked = true
		style = c.theme.Active
		c.pending = key.None()
	}

	mark := "[ ] "
	if *checked {
		mark = "[X] "
	}
	text := mark + label

	size := geometry.Pt(core.StringWidth(text), 1)
	pos := c.place(size)
	c.surface.SetString(pos.X, pos.Y, text, style)
	return clicked
}

// Button renders "[ label ]". Activating it while focused reports the click
// in the same frame, rendering that one frame with the active style. Buttons
// never hold activation across frames.
func (c *Context) Button(id ID, label string) bool {
	c.register(id)

	clicked := false
	style := c.styleFor(id)
	if c.hot == id && c.active == IDNone && c.pending.Kind == key.IntentActivate {
		clicked = true
		style = c.theme.Active
		c.pending = key.None()
	}

	text := "[ " + label + " ]"
	size := geometry.Pt(core.StringWidth(text), 1)
	pos := c.place(size)
	c.surface.SetString(pos.X, pos.Y, text, style)
	return clicked
}

// EditField renders a fixed-width text input backed by *buf. Activating it
// while focused starts editing; while editing it consumes printable
// characters into the buffer. Enter ends editing and reports submission,
// Escape ends editing without. The field always occupies the configured
// width; text beyond the width is not shown. No cursor or scrolling.
func (c *Context) EditField(id ID, buf *string) bool {
	c.register(id)

	submitted := false
	switch {
	case c.active == id:
		switch c.pending.Kind {
		case key.IntentChar:
			*buf += string(c.pending.Rune)
			c.pending = key.None()
		case key.IntentActivate:
			submitted = true
			c.clearActive()
			c.pending = key.None()
		case key.IntentCancel:
			c.clearActive()
			c.pending = key.None()
		}
	case c.hot == id && c.active == IDNone && c.pending.Kind == key.IntentActivate:
		c.setActive(id)
		c.pending = key.None()
	}

	text := fitWidth(*buf, c.fieldWidth)
	size := geometry.Pt(c.fieldWidth, 1)
	pos := c.place(size)
	c.surface.SetString(pos.X, pos.Y, text, c.styleFor(id))
	return submitted
}

// fitWidth pads s to exactly width columns, dropping trailing runes when the
// text is too wide. The trailing spaces blank stale cells from wider content
// rendered on earlier frames.
func fitWidth(s string, width int) string {
	runes := []rune(s)
	for core.StringWidth(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	s = string(runes)
	if pad := width - core.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
