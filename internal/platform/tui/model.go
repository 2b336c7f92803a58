package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeclub/slither/internal/audio"
	"github.com/arcadeclub/slither/internal/core"
	"github.com/arcadeclub/slither/internal/game"
	"github.com/arcadeclub/slither/internal/storage"
)

// gameID keys score records in the store.
const gameID = "slither"

// maxFrameDelta caps the elapsed time fed to the simulation after a stall
// (resize, ctrl+z) so the snake does not teleport across the board.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model driving the game. One TickMsg arrives per
// render frame; the model measures the real time between ticks and hands
// it to the game, which converts it into fixed simulation steps.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     KeyMap
	audio    audio.Player
	store    *storage.Store
	config   core.RuntimeConfig
	frame    core.InputFrame
	lastTick time.Time
	quitting bool
}

// NewModel creates the model and resets the game.
func NewModel(g *game.Game, player audio.Player, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.Reset(cfg)

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		audio:  player,
		store:  store,
		config: cfg,
		frame:  core.NewInputFrame(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to an intent. Quit and the sound toggle are
// platform concerns handled here; everything else is queued for the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch intent := m.keys.Intent(msg); intent {
	case core.IntentQuit:
		m.audio.StopMusic()
		m.quitting = true
		return m, tea.Quit

	case core.IntentSound:
		on := !m.audio.Enabled()
		m.audio.SetEnabled(on)
		if on && m.game.Phase() == game.PhasePlaying {
			m.audio.StartMusic()
		}
		return m, nil

	case core.IntentNone:
		return m, nil

	default:
		m.frame.Set(intent)
		return m, nil
	}
}

// handleTick advances the game by the real time elapsed since the previous
// frame and reacts to the resulting events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDelta)
	}
	m.lastTick = now

	events := m.game.Advance(dt, m.frame)
	m.frame.Clear()

	for _, ev := range events {
		switch ev {
		case game.EventStarted:
			m.audio.StartMusic()
		case game.EventAte:
			m.audio.PlayEat()
		case game.EventDied:
			m.audio.StopMusic()
			m.audio.PlayExplosion()
			m.store.SaveScore(gameID, m.game.Snapshot().Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(g *game.Game, player audio.Player, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, player, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
