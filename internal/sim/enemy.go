package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// Enemy is a patrolling enemy. One instance exists per enemy spawn tile for
// a level's lifetime; death only clears Alive, and resets reconstruct it.
type Enemy struct {
	Pos  units.Vec2
	Vel  units.Vec2
	Size units.Vec2

	Dir      int // -1 or +1
	Alive    bool
	OnGround bool
}

// Reset places the enemy resting on the ground below its spawn tile.
func (e *Enemy) Reset(spawnTile units.Vec2, w *level.World, cfg Config) {
	e.Size = cfg.EnemySize
	tile := cfg.TileSize

	x := spawnTile.X + (tile-e.Size.X)/2
	sampleX := spawnTile.X + tile/2
	baseY, ok := w.GroundYForX(sampleX, spawnTile.Y, tile)
	if !ok {
		baseY = spawnTile.Y + tile
	}

	e.Pos = units.Vec2{X: x, Y: baseY - e.Size.Y}
	e.Vel = units.Vec2{}
	e.Dir = -1
	e.Alive = true
	e.OnGround = false
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() units.Rect {
	return units.RectAt(e.Pos, e.Size)
}

// Update advances the enemy by one tick. Horizontal velocity is always
// direction times EnemySpeed (no acceleration). The enemy reverses on wall
// hits, at ledges while grounded, and at the world's X bounds.
func (e *Enemy) Update(w *level.World, cfg Config) {
	if !e.Alive {
		return
	}

	e.Vel.Y = min(e.Vel.Y+cfg.Gravity, cfg.TerminalVelocity)
	e.Vel.X = units.Unit(e.Dir) * cfg.EnemySpeed

	desiredX := e.Vel.X
	moved := MoveWithCollisions(e.Pos, e.Size, e.Vel, w.Solids)
	hitWall := desiredX != 0 && moved.Vel.X == 0

	e.Pos = moved.Pos
	e.Vel = moved.Vel
	e.OnGround = moved.OnGround

	if hitWall {
		e.Dir = -e.Dir
		e.Vel.X = units.Unit(e.Dir) * cfg.EnemySpeed
	} else if e.OnGround {
		// Sample a foot point one pixel ahead of the leading edge; no ground
		// at or below it means a ledge.
		var footX units.Unit
		if e.Dir >= 0 {
			footX = e.Pos.X + e.Size.X + units.FromPx(1)
		} else {
			footX = e.Pos.X - units.FromPx(1)
		}
		footY := e.Pos.Y + e.Size.Y + units.FromPx(1)

		hasGround := false
		if groundY, ok := w.GroundYForX(footX, footY, cfg.TileSize); ok {
			hasGround = groundY <= footY
		}
		if !hasGround {
			e.Dir = -e.Dir
			e.Vel.X = units.Unit(e.Dir) * cfg.EnemySpeed
		}
	}

	// Map edges are hard walls regardless of tile layout.
	worldW := units.Unit(w.Width) * cfg.TileSize
	if e.Pos.X <= 0 {
		e.Pos.X = 0
		e.Dir = 1
	} else if e.Pos.X+e.Size.X >= worldW {
		e.Pos.X = max(0, worldW-e.Size.X)
		e.Dir = -1
	}
}
