// Package level provides the tile-based world representation and the ASCII
// level parser. The package depends only on the fixed-point unit model; game
// tuning (tile size, entity sizes) is passed in explicitly so the simulation
// config stays the single source of truth.
package level

import (
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// World owns a parsed level: the solid-tile bitmap, the derived solid
// rectangles, the mutable collectible lists and the immutable spawn records.
// Collectible lists shrink during play; spawn snapshots for resets are held
// by the game state, not here.
type World struct {
	Width  int
	Height int

	// Solids holds one rectangle per solid tile, in row-major parse order.
	// The collision solver resolves against them in this order.
	Solids []units.Rect

	// SolidTiles is a row-major width*height bitmap for fast point queries.
	SolidTiles []uint8

	Coins     []units.Vec2 // tile centers, removed on pickup
	Mushrooms []units.Vec2 // top-left positions, removed on pickup

	EnemySpawns []units.Vec2 // tile top-left positions
	PlayerSpawn units.Vec2   // tile top-left
	GoalTile    units.Vec2   // tile top-left
}

// IsSolidTile reports whether the tile at (col, row) is solid.
// Out-of-range tiles are not solid.
func (w *World) IsSolidTile(col, row int) bool {
	if col < 0 || row < 0 || col >= w.Width || row >= w.Height {
		return false
	}
	return w.SolidTiles[row*w.Width+col] != 0
}

// GroundYForX scans tile rows downward from startY and returns the top Y of
// the first solid tile in the column containing worldX. The second return is
// false when no solid tile lies below.
func (w *World) GroundYForX(worldX, startY, tile units.Unit) (units.Unit, bool) {
	col := int(units.FloorDiv(worldX, tile))
	startRow := int(units.FloorDiv(startY, tile))
	if startRow < 0 {
		startRow = 0
	}

	for row := startRow; row < w.Height; row++ {
		if w.IsSolidTile(col, row) {
			return units.Unit(row) * tile, true
		}
	}
	return 0, false
}

// GoalTriggerRect returns the win-trigger hitbox: a pole 3 tiles tall and
// 0.18 tiles wide, horizontally centered on the goal tile and standing on the
// first ground tile beneath the goal column. The goal tile itself is not the
// trigger.
func (w *World) GoalTriggerRect(tile units.Unit) units.Rect {
	goalCenterX := w.GoalTile.X + tile/2
	baseY, ok := w.GroundYForX(goalCenterX, w.GoalTile.Y, tile)
	if !ok {
		baseY = w.GoalTile.Y + tile
	}

	poleH := tile * 3
	poleW := (tile * 9) / 50 // tile * 0.18
	return units.Rect{
		X: goalCenterX - poleW/2,
		Y: baseY - poleH,
		W: poleW,
		H: poleH,
	}
}
