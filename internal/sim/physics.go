package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// RectsIntersect is a strict-inequality AABB overlap test. Rectangles that
// merely touch edges do not intersect.
func RectsIntersect(a, b units.Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Approach moves value toward target by at most delta, clamping exactly at
// target. Used for horizontal acceleration and deceleration; never
// overshoots.
func Approach(value, target, delta units.Unit) units.Unit {
	if value < target {
		next := value + delta
		if next < target {
			return next
		}
		return target
	}
	next := value - delta
	if next > target {
		return next
	}
	return target
}

// MoveResult is the outcome of one tick of collision-resolved motion.
type MoveResult struct {
	Pos      units.Vec2
	Vel      units.Vec2
	OnGround bool
}

// MoveWithCollisions resolves one tick of motion against static solids using
// axis separation: move along X and snap flush against every overlapping
// solid (zeroing X velocity), then move along Y from the corrected position
// and do the same, reporting OnGround only when a downward collision was
// resolved. Solids are tested in storage order; when solids overlap each
// other the last one wins.
func MoveWithCollisions(pos, size, vel units.Vec2, solids []units.Rect) MoveResult {
	out := MoveResult{Pos: pos, Vel: vel}

	out.Pos.X += out.Vel.X
	rect := units.RectAt(out.Pos, size)
	for _, solid := range solids {
		if !RectsIntersect(rect, solid) {
			continue
		}
		if out.Vel.X > 0 {
			out.Pos.X = solid.X - size.X
		} else if out.Vel.X < 0 {
			out.Pos.X = solid.X + solid.W
		}
		out.Vel.X = 0
		rect.X = out.Pos.X
	}

	out.Pos.Y += out.Vel.Y
	rect.Y = out.Pos.Y
	for _, solid := range solids {
		if !RectsIntersect(rect, solid) {
			continue
		}
		if out.Vel.Y > 0 {
			out.Pos.Y = solid.Y - size.Y
			out.OnGround = true
		} else if out.Vel.Y < 0 {
			out.Pos.Y = solid.Y + solid.H
		}
		out.Vel.Y = 0
		rect.Y = out.Pos.Y
	}

	return out
}
