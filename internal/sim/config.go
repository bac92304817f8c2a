// Package sim is the deterministic simulation core: fixed-point physics,
// the player and enemy state machines, the phase/scoring machine and the
// replay-verification state hash. It is single-threaded and pure — Step is a
// total function over a valid state/input pair, never fails, never touches
// the clock, and never allocates hidden nondeterminism.
package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// Config carries every tuning constant of the simulation as one immutable
// value. It is passed by value into every update call and never mutated
// during play; all of its fields participate in the state hash.
type Config struct {
	// Geometry (units).
	TileSize     units.Unit
	PlayerSize   units.Vec2
	EnemySize    units.Vec2
	MushroomSize units.Vec2

	// Movement. Speeds are units per tick ((px/tick) * PosScale);
	// accelerations are velocity deltas per tick.
	MoveSpeed        units.Unit
	MoveAccel        units.Unit
	MoveDecel        units.Unit
	Gravity          units.Unit
	TerminalVelocity units.Unit
	JumpSpeed        units.Unit

	StompBounce units.Unit
	EnemySpeed  units.Unit

	HurtKnockbackX units.Unit
	HurtKnockbackY units.Unit

	// StompTolerance is how far below an enemy's top edge the player's feet
	// may be for contact to still count as a stomp.
	StompTolerance units.Unit

	// Timers (time units: 1s == units.TimeScale).
	CoyoteTime     int32
	JumpBufferTime int32
	HurtInvulnTime int32
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		TileSize:     units.FromPx(32),
		PlayerSize:   units.Vec2{X: units.FromPx(22), Y: units.FromPx(28)},
		EnemySize:    units.Vec2{X: units.FromPx(24), Y: units.FromPx(20)},
		MushroomSize: units.Vec2{X: units.FromPx(24), Y: units.FromPx(22)},

		MoveSpeed:        220 * 60, // 220 px/s
		MoveAccel:        1600,     // 1600 px/s^2
		MoveDecel:        2000,
		Gravity:          1200,
		TerminalVelocity: 780 * 60,
		JumpSpeed:        420 * 60,

		StompBounce: 320 * 60,
		EnemySpeed:  65 * 60,

		HurtKnockbackX: 200 * 60,
		HurtKnockbackY: 260 * 60,

		StompTolerance: units.FromPx(6),

		CoyoteTime:     60,  // 0.1s
		JumpBufferTime: 72,  // 0.12s
		HurtInvulnTime: 450, // 0.75s
	}
}
