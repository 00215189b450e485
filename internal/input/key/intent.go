package key

// IntentKind enumerates the logical inputs the interaction engine understands.
// Everything a terminal can produce is reduced to one of these before the
// engine sees it.
type IntentKind uint8

const (
	// IntentNone means no input is pending this frame.
	IntentNone IntentKind = iota

	// IntentActivate engages the hot widget (Enter).
	IntentActivate

	// IntentNext moves focus to the next widget.
	IntentNext

	// IntentPrevious moves focus to the previous widget.
	IntentPrevious

	// IntentCancel ends an active widget's session (Escape).
	IntentCancel

	// IntentChar carries a printable character for text entry.
	IntentChar
)

// String returns the intent kind name.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentActivate:
		return "Activate"
	case IntentNext:
		return "Next"
	case IntentPrevious:
		return "Previous"
	case IntentCancel:
		return "Cancel"
	case IntentChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// Intent is the logical input for one frame. Rune is set only for IntentChar.
type Intent struct {
	Kind IntentKind
	Rune rune
}

// None returns the empty intent.
func None() Intent {
	return Intent{Kind: IntentNone}
}

// Activate returns an activation intent.
func Activate() Intent {
	return Intent{Kind: IntentActivate}
}

// Next returns a focus-next intent.
func Next() Intent {
	return Intent{Kind: IntentNext}
}

// Previous returns a focus-previous intent.
func Previous() Intent {
	return Intent{Kind: IntentPrevious}
}

// Cancel returns a cancel intent.
func Cancel() Intent {
	return Intent{Kind: IntentCancel}
}

// Char returns a text-character intent.
func Char(r rune) Intent {
	return Intent{Kind: IntentChar, Rune: r}
}

// IsNone returns true if no input is pending.
func (i Intent) IsNone() bool {
	return i.Kind == IntentNone
}

// Decoder translates key events into intents. The zero value uses the
// default bindings: Enter activates, Tab/Down move focus forward,
// Shift-Tab/Up move focus backward, Escape cancels, printable runes become
// text characters.
//
// NextRunes and PrevRunes optionally alias plain characters to focus
// navigation (the classic form demo binds 's' and 'w'). Aliases apply only
// while no widget has captured input, so they never steal characters from an
// engaged text field.
type Decoder struct {
	NextRunes []rune
	PrevRunes []rune
}

// Decode maps a key event to an intent. captured reports whether a widget is
// currently active and consuming text input.
func (d Decoder) Decode(ev Event, captured bool) Intent {
	switch ev.Key {
	case KeyEnter:
		return Activate()
	case KeyEscape:
		return Cancel()
	case KeyTab, KeyDown:
		return Next()
	case KeyBacktab, KeyUp:
		return Previous()
	case KeyRune:
		if ev.Modifiers.Has(ModCtrl) {
			return None()
		}
		if !captured {
			for _, r := range d.NextRunes {
				if ev.Rune == r {
					return Next()
				}
			}
			for _, r := range d.PrevRunes {
				if ev.Rune == r {
					return Previous()
				}
			}
		}
		if ev.IsChar() {
			return Char(ev.Rune)
		}
	}
	return None()
}

// DecodeCode maps a raw terminal key code to an intent, for drivers that read
// bare byte codes instead of structured events. Negative codes mean no input.
// Codes follow the classic terminal values: 9 Tab, 10/13 Enter, 27 Escape,
// 32..127 printable ASCII. Anything else is silently ignored.
func DecodeCode(code int) Intent {
	switch {
	case code < 0:
		return None()
	case code == 9:
		return Next()
	case code == 10, code == 13:
		return Activate()
	case code == 27:
		return Cancel()
	case code >= 32 && code <= 127:
		return Char(rune(code))
	default:
		return None()
	}
}
