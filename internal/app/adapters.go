package app

import (
	"github.com/dshills/tuikit/internal/input/key"
	"github.com/dshills/tuikit/internal/renderer/backend"
)

// backendKeys maps backend key codes to input layer key codes.
var backendKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBacktab:   key.KeyBacktab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

// adaptKeyEvent converts a backend key event into an input layer event.
// Returns false for events the input layer has no representation for.
func adaptKeyEvent(ev backend.Event) (key.Event, bool) {
	if ev.Type != backend.EventKey {
		return key.Event{}, false
	}

	var out key.Event
	switch {
	case ev.Key == backend.KeyRune:
		out = key.NewRuneEvent(ev.Rune)
	default:
		k, ok := backendKeys[ev.Key]
		if !ok {
			return key.Event{}, false
		}
		out = key.NewSpecialEvent(k)
	}

	out.Modifiers = adaptModifiers(ev.Mod)
	return out, true
}

func adaptModifiers(mod backend.ModMask) key.Modifier {
	var out key.Modifier
	if mod.Has(backend.ModShift) {
		out = out.With(key.ModShift)
	}
	if mod.Has(backend.ModCtrl) {
		out = out.With(key.ModCtrl)
	}
	if mod.Has(backend.ModAlt) {
		out = out.With(key.ModAlt)
	}
	return out
}
