package graphics

import "testing"

func TestRect_Inset(t *testing.T) {
	r := RectFromLTWH(0, 7, 300, 40)
	got := r.Inset(EdgeInsets{Left: 8, Right: 50})
	want := Rect{Left: 8, Top: 7, Right: 250, Bottom: 47}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	grown := r.Inset(EdgeInsetsAll(-1))
	if grown.Width() != 302 || grown.Height() != 42 {
		t.Errorf("expected negative insets to grow, got %+v", grown)
	}
}

func TestRect_FromCenter(t *testing.T) {
	r := RectFromCenter(Offset{X: 10, Y: 20}, Size{Width: 8, Height: 4})
	if r != (Rect{Left: 6, Top: 18, Right: 14, Bottom: 22}) {
		t.Errorf("unexpected rect %+v", r)
	}
	if r.Center() != (Offset{X: 10, Y: 20}) {
		t.Errorf("expected center (10, 20), got %+v", r.Center())
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 0, Y: 0}, true},
		{Offset{X: 5, Y: 9.9}, true},
		{Offset{X: 10, Y: 5}, false},
		{Offset{X: -1, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestRRect_UniformRadius(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 20, 8), CircularRadius(4))
	if rr.UniformRadius() != 4 {
		t.Errorf("expected 4, got %v", rr.UniformRadius())
	}
	rr.Radius = Radius{X: 4, Y: 2}
	if rr.UniformRadius() != 0 {
		t.Errorf("expected 0 for elliptical corners, got %v", rr.UniformRadius())
	}
}
