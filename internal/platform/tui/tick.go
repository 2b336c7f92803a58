// Package tui provides the Bubble Tea integration: the frame loop, key
// mapping and screen rendering. It is the only package that talks to the
// terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per render frame. It carries the send time so the
// model can measure the real elapsed time between frames; the game's fixed
// step clock consumes that, not the nominal frame interval.
type TickMsg time.Time

// tickCmd returns a command that sends the next frame tick.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
