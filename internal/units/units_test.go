package units

import "testing"

func TestTimeScaleDividesEvenly(t *testing.T) {
	if TimeScale%int32(TickHz) != 0 {
		t.Fatalf("TimeScale %d must be divisible by TickHz %d", TimeScale, TickHz)
	}
	if Dt*int32(TickHz) != TimeScale {
		t.Errorf("Dt = %d, expected %d", Dt, TimeScale/int32(TickHz))
	}
}

func TestFromPx(t *testing.T) {
	if FromPx(1) != PosScale {
		t.Errorf("FromPx(1) = %d, expected %d", FromPx(1), PosScale)
	}
	if FromPx(-3) != -3*PosScale {
		t.Errorf("FromPx(-3) = %d, expected %d", FromPx(-3), -3*PosScale)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want Unit
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{-1, 10, -1},
		{-10, 10, -1},
		{-11, 10, -2},
		{25, 10, 2},
		{-25, 10, -3},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSignum(t *testing.T) {
	if Signum(42) != 1 || Signum(-42) != -1 || Signum(0) != 0 {
		t.Error("Signum sign mismatch")
	}
}

func TestRectEdges(t *testing.T) {
	r := RectAt(Vec2{X: 10, Y: 20}, Vec2{X: 30, Y: 40})
	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}
