package geometry

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(3, 4), Pt(1, 2), Pt(4, 6)},
		{"negative", Pt(3, 4), Pt(-5, -10), Pt(-2, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			if !got.Equals(tt.want) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointMulAxisMask(t *testing.T) {
	p := Pt(7, 9)

	got := p.Mul(Pt(1, 0))
	if !got.Equals(Pt(7, 0)) {
		t.Errorf("x-axis projection = %v, want (7, 0)", got)
	}

	got = p.Mul(Pt(0, 1))
	if !got.Equals(Pt(0, 9)) {
		t.Errorf("y-axis projection = %v, want (0, 9)", got)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(-1, 12).String(); s != "(-1, 12)" {
		t.Errorf("String() = %q, want %q", s, "(-1, 12)")
	}
}
