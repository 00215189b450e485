package key

import "testing"

func TestDecoderDefaults(t *testing.T) {
	var d Decoder

	tests := []struct {
		name     string
		ev       Event
		captured bool
		want     Intent
	}{
		{"enter activates", NewSpecialEvent(KeyEnter), false, Activate()},
		{"escape cancels", NewSpecialEvent(KeyEscape), false, Cancel()},
		{"tab moves next", NewSpecialEvent(KeyTab), false, Next()},
		{"down moves next", NewSpecialEvent(KeyDown), false, Next()},
		{"backtab moves previous", NewSpecialEvent(KeyBacktab), false, Previous()},
		{"up moves previous", NewSpecialEvent(KeyUp), false, Previous()},
		{"printable rune", NewRuneEvent('x'), false, Char('x')},
		{"printable rune while captured", NewRuneEvent('x'), true, Char('x')},
		{"ctrl rune ignored", Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}, false, None()},
		{"unbound special ignored", NewSpecialEvent(KeyHome), false, None()},
		{"no key", Event{}, false, None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Decode(tt.ev, tt.captured)
			if got != tt.want {
				t.Errorf("Decode(%v, %v) = %+v, want %+v", tt.ev, tt.captured, got, tt.want)
			}
		})
	}
}

func TestDecoderRuneAliases(t *testing.T) {
	d := Decoder{NextRunes: []rune{'s'}, PrevRunes: []rune{'w'}}

	if got := d.Decode(NewRuneEvent('s'), false); got != Next() {
		t.Errorf("'s' uncaptured = %+v, want Next", got)
	}
	if got := d.Decode(NewRuneEvent('w'), false); got != Previous() {
		t.Errorf("'w' uncaptured = %+v, want Previous", got)
	}

	// While a widget is capturing input, aliases must not steal characters.
	if got := d.Decode(NewRuneEvent('s'), true); got != Char('s') {
		t.Errorf("'s' captured = %+v, want Char('s')", got)
	}
	if got := d.Decode(NewRuneEvent('w'), true); got != Char('w') {
		t.Errorf("'w' captured = %+v, want Char('w')", got)
	}
}

func TestDecodeCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Intent
	}{
		{"no key", -1, None()},
		{"tab", 9, Next()},
		{"newline", 10, Activate()},
		{"carriage return", 13, Activate()},
		{"escape", 27, Cancel()},
		{"space", 32, Char(' ')},
		{"letter", int('h'), Char('h')},
		{"high bound", 127, Char(rune(127))},
		{"control code ignored", 1, None()},
		{"out of range ignored", 200, None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeCode(tt.code); got != tt.want {
				t.Errorf("DecodeCode(%d) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	if s := NewRuneEvent('a').String(); s != "a" {
		t.Errorf("rune event String() = %q, want %q", s, "a")
	}
	if s := NewSpecialEvent(KeyEnter).String(); s != "Enter" {
		t.Errorf("enter String() = %q, want %q", s, "Enter")
	}
	ev := Event{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}
	if s := ev.String(); s != "Ctrl+c" {
		t.Errorf("ctrl-c String() = %q, want %q", s, "Ctrl+c")
	}
}
