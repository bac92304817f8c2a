// Package config provides YAML-based tuning for the platformer. Values are
// expressed in pixels and milliseconds (integers only) and converted exactly
// into the fixed-point sim.Config, so a tuning file can never introduce
// floating point into the simulation.
package config

import (
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// Tuning is the on-disk configuration shape.
type Tuning struct {
	Geometry Geometry `yaml:"geometry"`
	Movement Movement `yaml:"movement"`
	Combat   Combat   `yaml:"combat"`
	Timers   Timers   `yaml:"timers"`
}

// Geometry defines sizes in whole pixels.
type Geometry struct {
	TileSize int  `yaml:"tile_size"`
	Player   Size `yaml:"player"`
	Enemy    Size `yaml:"enemy"`
	Mushroom Size `yaml:"mushroom"`
}

// Size is a width/height pair in pixels.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Movement defines speeds in px/s and accelerations in px/s^2.
type Movement struct {
	MoveSpeed        int `yaml:"move_speed"`
	MoveAccel        int `yaml:"move_accel"`
	MoveDecel        int `yaml:"move_decel"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
	JumpSpeed        int `yaml:"jump_speed"`
}

// Combat defines enemy-interaction tuning. Speeds in px/s, the stomp
// tolerance in pixels.
type Combat struct {
	StompBounce    int `yaml:"stomp_bounce"`
	EnemySpeed     int `yaml:"enemy_speed"`
	KnockbackX     int `yaml:"knockback_x"`
	KnockbackY     int `yaml:"knockback_y"`
	StompTolerance int `yaml:"stomp_tolerance"`
}

// Timers defines grace windows in milliseconds.
type Timers struct {
	CoyoteMs     int `yaml:"coyote_ms"`
	JumpBufferMs int `yaml:"jump_buffer_ms"`
	HurtMs       int `yaml:"hurt_ms"`
}

// Unit conversions. A speed of v px/s is v*PosScale/TickHz units per tick;
// an acceleration of a px/s^2 is a*PosScale/TickHz^2 units per tick per
// tick. With PosScale = 3600 and TickHz = 60 both are exact integers.
func pxPerSec(v int) units.Unit {
	return units.Unit(v) * units.PosScale / units.TickHz
}

func pxPerSec2(v int) units.Unit {
	return units.Unit(v) * units.PosScale / (units.TickHz * units.TickHz)
}

// ms converts milliseconds to time units, truncating to the 1/TimeScale
// grid (values that are multiples of 5 ms convert exactly).
func ms(v int) int32 {
	return int32(int64(v) * int64(units.TimeScale) / 1000)
}

// ToSim converts the pixel/millisecond tuning into the fixed-point
// simulation config.
func (t Tuning) ToSim() sim.Config {
	return sim.Config{
		TileSize:     units.FromPx(int64(t.Geometry.TileSize)),
		PlayerSize:   units.Vec2{X: units.FromPx(int64(t.Geometry.Player.W)), Y: units.FromPx(int64(t.Geometry.Player.H))},
		EnemySize:    units.Vec2{X: units.FromPx(int64(t.Geometry.Enemy.W)), Y: units.FromPx(int64(t.Geometry.Enemy.H))},
		MushroomSize: units.Vec2{X: units.FromPx(int64(t.Geometry.Mushroom.W)), Y: units.FromPx(int64(t.Geometry.Mushroom.H))},

		MoveSpeed:        pxPerSec(t.Movement.MoveSpeed),
		MoveAccel:        pxPerSec2(t.Movement.MoveAccel),
		MoveDecel:        pxPerSec2(t.Movement.MoveDecel),
		Gravity:          pxPerSec2(t.Movement.Gravity),
		TerminalVelocity: pxPerSec(t.Movement.TerminalVelocity),
		JumpSpeed:        pxPerSec(t.Movement.JumpSpeed),

		StompBounce:    pxPerSec(t.Combat.StompBounce),
		EnemySpeed:     pxPerSec(t.Combat.EnemySpeed),
		HurtKnockbackX: pxPerSec(t.Combat.KnockbackX),
		HurtKnockbackY: pxPerSec(t.Combat.KnockbackY),
		StompTolerance: units.FromPx(int64(t.Combat.StompTolerance)),

		CoyoteTime:     ms(t.Timers.CoyoteMs),
		JumpBufferTime: ms(t.Timers.JumpBufferMs),
		HurtInvulnTime: ms(t.Timers.HurtMs),
	}
}
