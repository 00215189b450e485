package ui

// ID is an opaque handle identifying a widget declaration site. The same
// logical widget must use the same ID every frame; the ID registry that
// drives focus navigation depends on it.
type ID int

// IDNone marks the absence of a widget ID.
const IDNone ID = -1

// Generator issues widget IDs from a monotonically increasing counter.
// Obtain every ID once at setup time, never inside the frame loop:
// regenerating IDs per frame breaks widget identity across frames.
type Generator struct {
	next ID
}

// NewGenerator creates an ID generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns a fresh ID, unique within this generator's lifetime.
func (g *Generator) Next() ID {
	id := g.next
	g.next++
	return id
}

// Count returns how many IDs have been issued.
func (g *Generator) Count() int {
	return int(g.next)
}
