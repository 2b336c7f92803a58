package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeclub/slither/internal/core"
	"github.com/arcadeclub/slither/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
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

// hudHeight is the rows reserved above the board for the status line.
const hudHeight = 2

// Draw renders a game snapshot into the screen buffer. All phases render
// every frame; the phase decides which elements appear.
func (m Model) draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	// The board needs its border plus the HUD rows.
	requiredW := snap.GridCols + 2
	requiredH := snap.GridRows + 2 + hudHeight
	if dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCenteredColored(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	switch snap.Phase {
	case game.PhaseMenu:
		m.drawMenu(dst, snap, false)
	case game.PhasePaused:
		m.drawMenu(dst, snap, true)
	case game.PhasePlaying:
		m.drawBoard(dst, snap)
	case game.PhaseDying:
		m.drawBoard(dst, snap)
		m.drawParticles(dst, snap)
	case game.PhaseGameOver:
		m.drawBoard(dst, snap)
		m.drawGameOver(dst, snap)
	}
}

// boardOrigin returns the top-left of the board border, centered
// horizontally under the HUD.
func boardOrigin(dst *core.Screen, snap game.Snapshot) (int, int) {
	return (dst.Width() - (snap.GridCols + 2)) / 2, hudHeight
}

// drawBoard renders the HUD, border, food and snake.
func (m Model) drawBoard(dst *core.Screen, snap game.Snapshot) {
	m.drawHUD(dst, snap)

	ox, oy := boardOrigin(dst, snap)
	dst.DrawBox(core.NewRect(ox, oy, snap.GridCols+2, snap.GridRows+2))

	if snap.HasFood {
		dst.SetColored(ox+1+snap.Food.X, oy+1+snap.Food.Y, '*', core.ColorBrightRed)
	}

	for i, c := range snap.Snake {
		r, color := 'o', core.ColorGreen
		if i == 0 {
			r, color = 'O', core.ColorBrightGreen
		}
		dst.SetColored(ox+1+c.X, oy+1+c.Y, r, color)
	}

	m.drawHelp(dst, m.keys.GameHelp())
}

// drawParticles renders the death burst. Particle positions arrive in
// grid-cell coordinates; brightness follows normalized remaining life.
func (m Model) drawParticles(dst *core.Screen, snap game.Snapshot) {
	ox, oy := boardOrigin(dst, snap)
	board := core.NewRect(ox+1, oy+1, snap.GridCols, snap.GridRows)

	for _, p := range snap.Particles {
		x := ox + 1 + int(p.X)
		y := oy + 1 + int(p.Y)
		if !board.Contains(x, y) {
			continue
		}
		r, color := particleGlyph(p)
		dst.SetColored(x, y, r, color)
	}
}

// particleGlyph picks a rune and color for a particle by remaining life.
func particleGlyph(p game.ParticleView) (rune, core.Color) {
	switch {
	case p.Life > 0.66:
		return '●', p.Color
	case p.Life > 0.33:
		return '•', p.Color
	default:
		return '·', core.ColorGray
	}
}

// drawHUD renders the status line and separator above the board.
func (m Model) drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Slither | Score: %d  Best: %d  Speed: %d", snap.Score, snap.Best, snap.MoveRate)
	if !m.audio.Enabled() {
		hud += "  [MUTED]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawGameOver renders the end-of-game overlay on top of the final board.
func (m Model) drawGameOver(dst *core.Screen, snap game.Snapshot) {
	title := "GAME OVER"
	score := fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best)
	hint := "Press R to restart"

	boxW := core.Max(len(score), len(title)) + 6
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, score)
	dst.DrawTextCenteredColored(boxY+5, hint, core.ColorGray)
}

// drawMenu renders the start menu, also used for the pause screen where
// the same panel adjusts the live speed instead of the starting speed.
func (m Model) drawMenu(dst *core.Screen, snap game.Snapshot, paused bool) {
	title := "S L I T H E R"
	label := "Starting Speed (moves per second)"
	action := "Enter: Start"
	speed := snap.MenuSpeed
	if paused {
		title = "P A U S E D"
		label = "Speed (moves per second)"
		action = "Enter: Resume"
		speed = snap.MoveRate
	}

	boxW := core.Max(len(label)+8, 40)
	boxH := 12
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max((dst.Height()-boxH)/2, 1)

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCenteredColored(boxY+3, label, core.ColorGray)
	dst.DrawTextCentered(boxY+5, fmt.Sprintf("◀  %2d  ▶", speed))

	if paused {
		dst.DrawTextCentered(boxY+7, fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best))
	} else if snap.Best > 0 {
		dst.DrawTextCentered(boxY+7, fmt.Sprintf("Best: %d   Games: %d", snap.Best, m.store.GamesPlayed(gameID)))
	}

	dst.DrawTextCenteredColored(boxY+9, action, core.ColorBrightGreen)

	m.drawHelp(dst, m.keys.MenuHelp())
}

// drawHelp renders the binding help footer on the bottom row.
func (m Model) drawHelp(dst *core.Screen, bindings []key.Binding) {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, strings.Join(parts, "  •  "), core.ColorGray)
}
