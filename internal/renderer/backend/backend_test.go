package backend

import (
	"testing"

	"github.com/dshills/tuikit/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewCell('.')
	b.Fill(10, 5, 10, 5, cell)

	got := b.GetCell(15, 7)
	if !got.Equals(cell) {
		t.Error("cell inside rect should be filled")
	}

	got = b.GetCell(0, 0)
	if got.Equals(cell) {
		t.Error("cell outside rect should not be filled")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, core.NewCell('X'))
	b.Clear()

	got := b.GetCell(10, 10)
	if !got.Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("expected posted key event, got %+v", ev)
	}
}

func TestScreenBufferSetString(t *testing.T) {
	sb := NewScreenBuffer(20, 5)
	style := core.NewStyle(core.ColorWhite, core.ColorBlack)

	sb.SetString(2, 1, "hello", style)

	for i, want := range "hello" {
		got := sb.GetCell(2+i, 1)
		if got.Rune != want {
			t.Errorf("cell (%d, 1) = %q, want %q", 2+i, got.Rune, want)
		}
		if !got.Style.Equals(style) {
			t.Errorf("cell (%d, 1) style = %+v, want %+v", 2+i, got.Style, style)
		}
	}

	// Writes past the right edge are clipped.
	sb.SetString(18, 0, "wide", style)
	if got := sb.GetCell(19, 0); got.Rune != 'i' {
		t.Errorf("clipped write: cell (19, 0) = %q, want %q", got.Rune, 'i')
	}
}

func TestScreenBufferDiff(t *testing.T) {
	sb := NewScreenBuffer(10, 3)
	sb.Sync() // settle the initial full redraw

	sb.SetCell(1, 1, core.NewCell('A'))
	sb.SetCell(2, 1, core.NewCell('B'))

	changes := sb.ComputeDiff()
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}

	sb.Sync()
	if changes = sb.ComputeDiff(); len(changes) != 0 {
		t.Errorf("after sync expected no changes, got %d", len(changes))
	}

	// Rewriting the same content must not produce a diff.
	sb.SetCell(1, 1, core.NewCell('A'))
	if changes = sb.ComputeDiff(); len(changes) != 0 {
		t.Errorf("identical rewrite should diff to nothing, got %d changes", len(changes))
	}
}

func TestScreenBufferResizePreservesContent(t *testing.T) {
	sb := NewScreenBuffer(10, 3)
	sb.SetCell(1, 1, core.NewCell('A'))

	sb.Resize(20, 6)
	if got := sb.GetCell(1, 1); got.Rune != 'A' {
		t.Errorf("resize lost content: cell (1,1) = %q", got.Rune)
	}

	w, h := sb.Size()
	if w != 20 || h != 6 {
		t.Errorf("size after resize = (%d, %d), want (20, 6)", w, h)
	}
}

func TestBufferedBackendShowFlushesDiff(t *testing.T) {
	null := NewNullBackend(20, 5)
	buf := NewBufferedBackend(null)
	if err := buf.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	style := core.DefaultStyle()
	buf.SetString(0, 0, "hi", style)
	buf.Show()

	if got := null.Line(0); got[:2] != "hi" {
		t.Errorf("backend line 0 = %q, want prefix %q", got, "hi")
	}
}
