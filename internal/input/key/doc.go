// Package key models keyboard input for the toolkit.
//
// Two layers live here. Event is the physical layer: which key was pressed,
// with which rune and modifiers, as reported by a terminal backend. Intent is
// the logical layer the interaction engine consumes: a small closed set of
// actions (activate, focus next/previous, cancel, text character). A Decoder
// maps one to the other at the application boundary so the engine never
// inspects terminal key encodings directly.
package key
