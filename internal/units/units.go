// Package units defines the fixed-point coordinate and time system used by
// the simulation. All spatial quantities are integers scaled by PosScale and
// all timer quantities are integers scaled by TimeScale, so every tick of the
// simulation is exact integer arithmetic and replays are bit-identical across
// platforms. Nothing in this package (or anything built on it) may touch
// floating point.
package units

// TickHz is the fixed simulation rate in steps per simulated second.
const TickHz = 60

// PosScale is the position scale factor: 1 pixel == PosScale units.
// Velocities are stored as (px/tick) * PosScale.
const PosScale Unit = 3600

// TimeScale is the timer scale factor: 1 second == TimeScale time units.
// It must divide evenly by TickHz so one tick advances timers by a whole
// number of time units.
const TimeScale int32 = 600

// Dt is the per-tick timer delta in time units.
const Dt int32 = TimeScale / int32(TickHz)

// Unit is the scaled integer distance measure.
type Unit int64

// FromPx converts whole pixels to units.
func FromPx(px int64) Unit {
	return Unit(px) * PosScale
}

// Vec2 is a coordinate pair in unit space. Value type, no identity.
type Vec2 struct {
	X, Y Unit
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned box in unit space.
type Rect struct {
	X, Y, W, H Unit
}

// RectAt builds a rectangle from a top-left position and a size.
func RectAt(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() Unit {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() Unit {
	return r.Y + r.H
}

// FloorDiv divides a by b rounding toward negative infinity, not toward
// zero. Tile-index lookups need this because unit coordinates computed from
// negative deltas can go below zero. b must be positive.
func FloorDiv(a, b Unit) Unit {
	if a >= 0 {
		return a / b
	}
	return -((-a + (b - 1)) / b)
}

// Signum returns -1, 0 or 1 for the sign of v.
func Signum(v Unit) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
