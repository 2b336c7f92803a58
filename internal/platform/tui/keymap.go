package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeclub/slither/internal/core"
)

// KeyMap declares all key bindings. The help text feeds the footer line.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Start     key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Sound     key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows/WASD to steer,
// enter/space to start or resume, p pause, r restart, m sound, q quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/resume"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Intent translates a key message into a game intent.
func (k KeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	case key.Matches(msg, k.Up):
		return core.IntentUp
	case key.Matches(msg, k.Down):
		return core.IntentDown
	case key.Matches(msg, k.Left):
		return core.IntentLeft
	case key.Matches(msg, k.Right):
		return core.IntentRight
	case key.Matches(msg, k.Start):
		return core.IntentStart
	case key.Matches(msg, k.Pause):
		return core.IntentPause
	case key.Matches(msg, k.Restart):
		return core.IntentRestart
	case key.Matches(msg, k.Sound):
		return core.IntentSound
	case key.Matches(msg, k.SpeedUp):
		return core.IntentSpeedUp
	case key.Matches(msg, k.SpeedDown):
		return core.IntentSpeedDown
	default:
		return core.IntentNone
	}
}

// GameHelp is the in-game footer line.
func (k KeyMap) GameHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Sound, k.Quit}
}

// MenuHelp is the menu footer line.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Sound, k.Quit}
}
