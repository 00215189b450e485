package ui

import "github.com/dshills/tuikit/internal/geometry"

// Orientation selects the primary axis of a layout frame.
type Orientation uint8

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota

	// Horizontal places children left to right.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Axis masks for projecting a size onto the primary axis.
var (
	axisX = geometry.Pt(1, 0)
	axisY = geometry.Pt(0, 1)
)

// layoutFrame is one entry on the layout stack. It tracks where the next
// child will render and how much room the children declared so far occupy.
// The accumulated size starts at zero and only grows; when the frame is
// popped it is folded into the parent.
type layoutFrame struct {
	orient Orientation
	pos    geometry.Point
	size   geometry.Point
	pad    int
}

func newLayoutFrame(orient Orientation, pos geometry.Point, pad int) layoutFrame {
	return layoutFrame{orient: orient, pos: pos, pad: pad}
}

// freePos returns the position the next child will render at: the frame
// origin plus the accumulated size projected onto the primary axis.
func (f *layoutFrame) freePos() geometry.Point {
	switch f.orient {
	case Horizontal:
		return f.pos.Add(f.size.Mul(axisX))
	default:
		return f.pos.Add(f.size.Mul(axisY))
	}
}

// addSize grows the frame by one child: the primary axis accumulates the
// child extent plus padding, the secondary axis tracks the maximum.
func (f *layoutFrame) addSize(child geometry.Point) {
	switch f.orient {
	case Horizontal:
		f.size.X += child.X + f.pad
		f.size.Y = max(f.size.Y, child.Y)
	default:
		f.size.X = max(f.size.X, child.X)
		f.size.Y += child.Y + f.pad
	}
}
