package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

// FallbackLevel is a small valid level used when no level file is supplied
// or the supplied one fails to parse.
const FallbackLevel = "................................\n" +
	"................................\n" +
	"................................\n" +
	"................................\n" +
	".......C.........C.......C......\n" +
	"......#####.....#####...#####...\n" +
	"..P....M....E................G..\n" +
	"#######...########..######...###\n"

// Structural parse failures. The parser never repairs or guesses; a level
// either parses completely or not at all.
var (
	ErrEmptyGrid            = errors.New("level: grid has no tiles")
	ErrMissingPlayerSpawn   = errors.New("level: missing player spawn")
	ErrDuplicatePlayerSpawn = errors.New("level: duplicate player spawn")
	ErrMissingGoal          = errors.New("level: missing goal tile")
	ErrDuplicateGoal        = errors.New("level: duplicate goal tile")
)

// ParseASCII builds a World from level text. One row per line; trailing
// whitespace is stripped per line and blank lines are dropped. Grid width is
// the longest line. Characters: '#' solid, '.' empty, 'P' player spawn
// (exactly one), 'G' goal tile (exactly one), 'E' enemy spawn, 'C' coin,
// 'M' mushroom. Anything else is an error naming the offending character.
//
// tile is the tile edge length in units; mushroomSize places mushrooms
// resting on the ground below their spawn tile.
func ParseASCII(text string, tile units.Unit, mushroomSize units.Vec2) (*World, error) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r\v\f")
		if line != "" {
			lines = append(lines, line)
		}
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}

	w := &World{
		Width:      width,
		Height:     height,
		SolidTiles: make([]uint8, width*height),
	}

	var mushroomTiles []units.Vec2
	havePlayer := false
	haveGoal := false

	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			ch := line[col]
			tilePos := units.Vec2{
				X: units.Unit(col) * tile,
				Y: units.Unit(row) * tile,
			}

			switch ch {
			case '#':
				w.SolidTiles[row*width+col] = 1
				w.Solids = append(w.Solids, units.Rect{X: tilePos.X, Y: tilePos.Y, W: tile, H: tile})
			case 'C':
				w.Coins = append(w.Coins, units.Vec2{X: tilePos.X + tile/2, Y: tilePos.Y + tile/2})
			case 'M':
				mushroomTiles = append(mushroomTiles, tilePos)
			case 'E':
				w.EnemySpawns = append(w.EnemySpawns, tilePos)
			case 'P':
				if havePlayer {
					return nil, ErrDuplicatePlayerSpawn
				}
				havePlayer = true
				w.PlayerSpawn = tilePos
			case 'G':
				if haveGoal {
					return nil, ErrDuplicateGoal
				}
				haveGoal = true
				w.GoalTile = tilePos
			case '.':
			default:
				return nil, fmt.Errorf("level: unexpected tile %q at row %d col %d", ch, row, col)
			}
		}
	}

	if !havePlayer {
		return nil, ErrMissingPlayerSpawn
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	// Mushrooms rest on the first ground tile below their spawn row; with no
	// ground below they fall back to one tile under the spawn.
	for _, tilePos := range mushroomTiles {
		x := tilePos.X + (tile-mushroomSize.X)/2
		sampleX := tilePos.X + tile/2
		baseY, ok := w.GroundYForX(sampleX, tilePos.Y, tile)
		if !ok {
			baseY = tilePos.Y + tile
		}
		w.Mushrooms = append(w.Mushrooms, units.Vec2{X: x, Y: baseY - mushroomSize.Y})
	}

	return w, nil
}
