package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

// FNV-1a, folded byte by byte over little-endian 64-bit words.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

type hasher struct {
	h uint64
}

func (h *hasher) u64(v uint64) {
	for i := 0; i < 8; i++ {
		h.h ^= uint64(uint8(v >> (i * 8)))
		h.h *= fnvPrime
	}
}

func (h *hasher) unit(v units.Unit)   { h.u64(uint64(v)) }
func (h *hasher) vec(v units.Vec2)    { h.unit(v.X); h.unit(v.Y) }
func (h *hasher) i32(v int32)         { h.u64(uint64(v)) }
func (h *hasher) u32(v uint32)        { h.u64(uint64(v)) }
func (h *hasher) direction(v int)     { h.u64(uint64(int64(v))) }
func (h *hasher) boolean(v bool) {
	if v {
		h.u64(1)
	} else {
		h.u64(0)
	}
}

func (h *hasher) vecs(list []units.Vec2) {
	h.u64(uint64(len(list)))
	for _, v := range list {
		h.vec(v)
	}
}

// Hash folds every field that affects simulation outcome into a 64-bit
// digest: config constants, phase, tick, scores, player, world dimensions
// and spawns, all collectible and spawn lists (count-prefixed, in storage
// order) and all enemies. The field list is enumerated by hand, in a fixed
// order, so any addition to simulation state forces a deliberate update
// here. Nothing representational (addresses, capacities, wall-clock time)
// is included: two states reached by replaying the same inputs over the same
// level hash identically.
func Hash(s *State) uint64 {
	h := hasher{h: fnvOffsetBasis}

	h.unit(s.Config.TileSize)
	h.vec(s.Config.PlayerSize)
	h.vec(s.Config.EnemySize)
	h.vec(s.Config.MushroomSize)

	h.unit(s.Config.MoveSpeed)
	h.unit(s.Config.MoveAccel)
	h.unit(s.Config.MoveDecel)
	h.unit(s.Config.Gravity)
	h.unit(s.Config.TerminalVelocity)
	h.unit(s.Config.JumpSpeed)
	h.unit(s.Config.StompBounce)
	h.unit(s.Config.EnemySpeed)
	h.unit(s.Config.HurtKnockbackX)
	h.unit(s.Config.HurtKnockbackY)
	h.unit(s.Config.StompTolerance)
	h.i32(s.Config.CoyoteTime)
	h.i32(s.Config.JumpBufferTime)
	h.i32(s.Config.HurtInvulnTime)

	h.u64(uint64(s.Phase))
	h.u64(s.Tick)

	h.u32(s.Score)
	h.u32(s.HighScore)

	h.vec(s.Player.Pos)
	h.vec(s.Player.Vel)
	h.boolean(s.Player.OnGround)
	h.direction(s.Player.Facing)
	h.i32(s.Player.CoyoteTimer)
	h.i32(s.Player.JumpBufferTimer)
	h.boolean(s.Player.Powered)
	h.i32(s.Player.InvulnTimer)

	h.u64(uint64(s.World.Width))
	h.u64(uint64(s.World.Height))
	h.vec(s.World.PlayerSpawn)
	h.vec(s.World.GoalTile)

	h.vecs(s.World.Coins)
	h.vecs(s.World.Mushrooms)
	h.vecs(s.World.EnemySpawns)

	h.u64(uint64(len(s.World.SolidTiles)))
	for _, t := range s.World.SolidTiles {
		h.u64(uint64(t))
	}

	h.vecs(s.CoinSpawns)
	h.vecs(s.MushroomSpawns)

	h.u64(uint64(len(s.Enemies)))
	for i := range s.Enemies {
		e := &s.Enemies[i]
		h.vec(e.Pos)
		h.vec(e.Vel)
		h.direction(e.Dir)
		h.boolean(e.Alive)
		h.boolean(e.OnGround)
	}

	return h.h
}

// HashHex returns the state hash as a fixed-width lowercase hex string, the
// form used in replay verification output and run records.
func HashHex(s *State) string {
	return fmt.Sprintf("%016x", Hash(s))
}
