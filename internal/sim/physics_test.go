package sim

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

func TestApproach(t *testing.T) {
	tests := []struct {
		name                 string
		value, target, delta units.Unit
		expected             units.Unit
	}{
		{"accelerating", 0, 100, 30, 30},
		{"clamps at target", 90, 100, 30, 100},
		{"already at target", 100, 100, 30, 100},
		{"decelerating", 100, 0, 30, 70},
		{"toward negative", 0, -100, 30, -30},
		{"clamps from below", -90, -100, 30, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.value, tt.target, tt.delta); got != tt.expected {
				t.Errorf("Approach(%d, %d, %d) = %d, expected %d",
					tt.value, tt.target, tt.delta, got, tt.expected)
			}
		})
	}
}

func TestRectsIntersectStrict(t *testing.T) {
	a := units.Rect{X: 0, Y: 0, W: 100, H: 100}

	if !RectsIntersect(a, units.Rect{X: 50, Y: 50, W: 100, H: 100}) {
		t.Error("Overlapping rects should intersect")
	}

	// Edge contact is not an intersection
	if RectsIntersect(a, units.Rect{X: 100, Y: 0, W: 100, H: 100}) {
		t.Error("Rects touching on the right edge should not intersect")
	}
	if RectsIntersect(a, units.Rect{X: 0, Y: 100, W: 100, H: 100}) {
		t.Error("Rects touching on the bottom edge should not intersect")
	}
	if RectsIntersect(a, units.Rect{X: 200, Y: 200, W: 10, H: 10}) {
		t.Error("Disjoint rects should not intersect")
	}
}

func TestMoveWithCollisionsLanding(t *testing.T) {
	size := units.Vec2{X: units.FromPx(16), Y: units.FromPx(16)}
	pos := units.Vec2{X: 0, Y: units.FromPx(20)}
	vel := units.Vec2{Y: units.FromPx(10)}
	floor := []units.Rect{{X: 0, Y: units.FromPx(40), W: units.FromPx(100), H: units.FromPx(10)}}

	out := MoveWithCollisions(pos, size, vel, floor)

	if !out.OnGround {
		t.Error("Downward collision should set OnGround")
	}
	if out.Vel.Y != 0 {
		t.Errorf("Y velocity should be zeroed on landing, got %d", out.Vel.Y)
	}
	wantY := units.FromPx(40) - size.Y
	if out.Pos.Y != wantY {
		t.Errorf("Position should snap flush to floor top: got %d, expected %d", out.Pos.Y, wantY)
	}
}

func TestMoveWithCollisionsWall(t *testing.T) {
	size := units.Vec2{X: units.FromPx(16), Y: units.FromPx(16)}
	pos := units.Vec2{X: 0, Y: 0}
	vel := units.Vec2{X: units.FromPx(10)}
	wall := []units.Rect{{X: units.FromPx(20), Y: 0, W: units.FromPx(10), H: units.FromPx(100)}}

	out := MoveWithCollisions(pos, size, vel, wall)

	if out.Vel.X != 0 {
		t.Errorf("X velocity should be zeroed against a wall, got %d", out.Vel.X)
	}
	wantX := units.FromPx(20) - size.X
	if out.Pos.X != wantX {
		t.Errorf("Position should snap flush to wall: got %d, expected %d", out.Pos.X, wantX)
	}
	if out.OnGround {
		t.Error("Horizontal collision should not set OnGround")
	}
}

func TestMoveWithCollisionsCeiling(t *testing.T) {
	size := units.Vec2{X: units.FromPx(16), Y: units.FromPx(16)}
	pos := units.Vec2{X: 0, Y: units.FromPx(30)}
	vel := units.Vec2{Y: -units.FromPx(10)}
	ceiling := []units.Rect{{X: 0, Y: 0, W: units.FromPx(100), H: units.FromPx(25)}}

	out := MoveWithCollisions(pos, size, vel, ceiling)

	if out.Vel.Y != 0 {
		t.Errorf("Y velocity should be zeroed against a ceiling, got %d", out.Vel.Y)
	}
	if out.Pos.Y != units.FromPx(25) {
		t.Errorf("Position should snap below ceiling: got %d, expected %d", out.Pos.Y, units.FromPx(25))
	}
	if out.OnGround {
		t.Error("Upward collision should not set OnGround")
	}
}

func TestMoveWithCollisionsFreeFlight(t *testing.T) {
	size := units.Vec2{X: units.FromPx(16), Y: units.FromPx(16)}
	pos := units.Vec2{X: units.FromPx(5), Y: units.FromPx(5)}
	vel := units.Vec2{X: units.FromPx(3), Y: units.FromPx(7)}

	out := MoveWithCollisions(pos, size, vel, nil)

	if out.Pos.X != pos.X+vel.X || out.Pos.Y != pos.Y+vel.Y {
		t.Errorf("Free flight should move by velocity: got %+v", out.Pos)
	}
	if out.Vel != vel {
		t.Errorf("Free flight should keep velocity: got %+v", out.Vel)
	}
	if out.OnGround {
		t.Error("Free flight should not be grounded")
	}
}
