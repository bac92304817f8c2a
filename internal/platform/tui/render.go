package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// hudHeight is the number of screen rows reserved above the world view.
const hudHeight = 2

// DrawWorld renders the public simulation state into the screen buffer:
// HUD, camera-followed world view, and phase overlays. One world tile maps
// to one screen cell.
func DrawWorld(dst *core.Screen, st *sim.State, levelName string, best int64) {
	dst.Clear()

	drawHUD(dst, st, levelName, best)

	tile := st.Config.TileSize
	viewW := dst.Width()
	viewH := dst.Height() - hudHeight
	if viewW <= 0 || viewH <= 0 {
		return
	}

	camX, camY := cameraOrigin(st, viewW, viewH)

	// put draws one world tile into the view, clipping anything above the
	// camera so it cannot bleed into the HUD rows.
	put := func(col, row int, r rune, c core.Color) {
		if row < camY {
			return
		}
		dst.SetColored(col-camX, row-camY+hudHeight, r, c)
	}

	// Solid tiles.
	for row := camY; row < camY+viewH && row < st.World.Height; row++ {
		if row < 0 {
			continue
		}
		for col := camX; col < camX+viewW && col < st.World.Width; col++ {
			if col >= 0 && st.World.IsSolidTile(col, row) {
				put(col, row, '#', core.ColorGreen)
			}
		}
	}

	// Goal pole (the trigger rect, not the goal tile).
	goal := st.World.GoalTriggerRect(tile)
	goalCol := int(units.FloorDiv(goal.X+goal.W/2, tile))
	for row := int(units.FloorDiv(goal.Y, tile)); row < int(units.FloorDiv(goal.Bottom(), tile)); row++ {
		put(goalCol, row, '|', core.ColorBrightCyan)
	}

	for _, c := range st.World.Coins {
		put(int(units.FloorDiv(c.X, tile)), int(units.FloorDiv(c.Y, tile)), 'o', core.ColorBrightYellow)
	}

	for _, m := range st.World.Mushrooms {
		col := int(units.FloorDiv(m.X+st.Config.MushroomSize.X/2, tile))
		row := int(units.FloorDiv(m.Y+st.Config.MushroomSize.Y/2, tile))
		put(col, row, 'm', core.ColorBrightMagenta)
	}

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if !e.Alive {
			continue
		}
		col := int(units.FloorDiv(e.Pos.X+e.Size.X/2, tile))
		row := int(units.FloorDiv(e.Pos.Y+e.Size.Y/2, tile))
		put(col, row, 'x', core.ColorBrightRed)
	}

	drawPlayer(put, st)

	switch st.Phase {
	case sim.PhaseTitle:
		drawOverlay(dst, "TUI PLATFORMER", "Press Enter to start")
	case sim.PhaseLevelComplete:
		drawOverlay(dst, "Level complete!", "R to restart · Q for title")
	}
}

func drawPlayer(put func(col, row int, r rune, c core.Color), st *sim.State) {
	p := &st.Player

	// Blink while invulnerable; derived from simulation state only, so the
	// view stays a pure function of the state.
	if p.IsInvulnerable() && (p.InvulnTimer/units.Dt)%2 == 1 {
		return
	}

	color := core.ColorBrightYellow
	if p.Powered {
		color = core.ColorBrightGreen
	}

	tile := st.Config.TileSize
	col := int(units.FloorDiv(p.Pos.X+p.Size.X/2, tile))
	row := int(units.FloorDiv(p.Pos.Y+p.Size.Y/2, tile))
	put(col, row, '@', color)
}

// cameraOrigin centers the view on the player, clamped to world bounds.
func cameraOrigin(st *sim.State, viewW, viewH int) (int, int) {
	tile := st.Config.TileSize
	playerCol := int(units.FloorDiv(st.Player.Pos.X+st.Player.Size.X/2, tile))
	playerRow := int(units.FloorDiv(st.Player.Pos.Y+st.Player.Size.Y/2, tile))

	camX := clamp(playerCol-viewW/2, 0, max(0, st.World.Width-viewW))
	camY := clamp(playerRow-viewH/2, 0, max(0, st.World.Height-viewH))
	return camX, camY
}

func drawHUD(dst *core.Screen, st *sim.State, levelName string, best int64) {
	hud := fmt.Sprintf(" SCORE %06d   HIGH %06d", st.Score, st.HighScore)
	if best > 0 {
		hud += fmt.Sprintf("   BEST %06d", best)
	}
	if levelName != "" {
		hud += "   " + levelName
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered boxed two-line message.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
