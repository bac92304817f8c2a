package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// Player is the player entity state machine. It is mutated once per tick by
// Update plus by the collision-outcome handlers in state.go.
type Player struct {
	Pos  units.Vec2
	Vel  units.Vec2
	Size units.Vec2

	OnGround bool
	Facing   int // -1 or +1, set by the last nonzero horizontal input

	CoyoteTimer     int32
	JumpBufferTimer int32
	InvulnTimer     int32
	Powered         bool
}

// Reset places the player at a spawn tile, feet on the tile's bottom edge,
// and clears all transient state.
func (p *Player) Reset(spawnTile units.Vec2, cfg Config) {
	p.Size = cfg.PlayerSize
	p.Pos = units.Vec2{
		X: spawnTile.X + (cfg.TileSize-p.Size.X)/2,
		Y: spawnTile.Y + (cfg.TileSize - p.Size.Y),
	}
	p.Vel = units.Vec2{}
	p.OnGround = false
	p.Facing = 1
	p.CoyoteTimer = 0
	p.JumpBufferTimer = 0
	p.InvulnTimer = 0
	p.Powered = false
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() units.Rect {
	return units.RectAt(p.Pos, p.Size)
}

// IsInvulnerable reports whether the post-hit grace window is active.
func (p *Player) IsInvulnerable() bool {
	return p.InvulnTimer > 0
}

// Update advances the player by one tick: timers, jump cut, horizontal
// approach, the pre-move buffered jump, gravity, collision-resolved motion,
// and the post-move buffered jump that lets a buffer press fire on the
// landing frame. Returns whether a jump triggered this tick.
func (p *Player) Update(in StepInput, w *level.World, cfg Config) bool {
	p.InvulnTimer = max(0, p.InvulnTimer-units.Dt)

	jumped := false

	if in.JumpPressed {
		p.JumpBufferTimer = cfg.JumpBufferTime
	} else {
		p.JumpBufferTimer = max(0, p.JumpBufferTimer-units.Dt)
	}

	// Jump cut: releasing jump while rising halves the upward velocity.
	if in.JumpReleased && p.Vel.Y < 0 {
		p.Vel.Y /= 2
	}

	if p.OnGround {
		p.CoyoteTimer = cfg.CoyoteTime
	} else {
		p.CoyoteTimer = max(0, p.CoyoteTimer-units.Dt)
	}

	moveX := in.MoveX()
	if moveX != 0 {
		if moveX < 0 {
			p.Facing = -1
		} else {
			p.Facing = 1
		}
	}

	targetSpeed := units.Unit(moveX) * cfg.MoveSpeed
	accel := cfg.MoveDecel
	if moveX != 0 {
		accel = cfg.MoveAccel
	}
	p.Vel.X = Approach(p.Vel.X, targetSpeed, accel)

	if p.JumpBufferTimer > 0 && p.CoyoteTimer > 0 {
		p.triggerJump(cfg)
		jumped = true
	}

	p.Vel.Y = min(p.Vel.Y+cfg.Gravity, cfg.TerminalVelocity)

	moved := MoveWithCollisions(p.Pos, p.Size, p.Vel, w.Solids)
	p.Pos = moved.Pos
	p.Vel = moved.Vel
	p.OnGround = moved.OnGround

	// The buffer persists across the landing frame: a press shortly before
	// touchdown fires as soon as the solver reports ground.
	if p.JumpBufferTimer > 0 && p.OnGround {
		p.triggerJump(cfg)
		jumped = true
	}

	return jumped
}

func (p *Player) triggerJump(cfg Config) {
	p.Vel.Y = -cfg.JumpSpeed
	p.OnGround = false
	p.CoyoteTimer = 0
	p.JumpBufferTimer = 0
}
