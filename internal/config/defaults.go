package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// DefaultTuning returns the reference tuning in on-disk form.
func DefaultTuning() Tuning {
	return Tuning{
		Geometry: Geometry{
			TileSize: 32,
			Player:   Size{W: 22, H: 28},
			Enemy:    Size{W: 24, H: 20},
			Mushroom: Size{W: 24, H: 22},
		},
		Movement: Movement{
			MoveSpeed:        220,
			MoveAccel:        1600,
			MoveDecel:        2000,
			Gravity:          1200,
			TerminalVelocity: 780,
			JumpSpeed:        420,
		},
		Combat: Combat{
			StompBounce:    320,
			EnemySpeed:     65,
			KnockbackX:     200,
			KnockbackY:     260,
			StompTolerance: 6,
		},
		Timers: Timers{
			CoyoteMs:     100,
			JumpBufferMs: 120,
			HurtMs:       750,
		},
	}
}
