// Package ui implements the immediate-mode interaction engine.
//
// The caller re-declares the entire interface every frame between Begin and
// End. Widget calls read the single pending input intent, update the
// hot/active state machine, claim a position from the layout stack, render
// through a Surface, and report their size back to the enclosing layout.
// Nothing about the widget tree is retained between frames except the ordered
// list of widget IDs rendered last frame, which drives focus navigation, and
// the focus index itself. Widget data (text buffers, booleans, records)
// belongs to the frame driver and is lent to widget calls by pointer for the
// duration of one call.
//
// The engine is single-threaded and fully synchronous: one intent per frame,
// fed with Feed before the next Begin. Layout stack misuse (unbalanced
// BeginLayout/EndLayout) and double activation are programming errors and
// panic; there are no recoverable runtime errors here.
package ui
