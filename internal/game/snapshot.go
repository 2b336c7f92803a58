package game

import (
	"github.com/arcadeclub/slither/internal/core"
)

// ParticleView is one death particle in render terms: position in
// grid-cell coordinates, remaining life normalized to [0,1], and color.
type ParticleView struct {
	X, Y  float64
	Life  float64
	Color core.Color
}

// Snapshot is the render contract: everything the presentation layer needs
// to draw a frame. The head is Snake[0]; Snake is nil in the menu and
// dying phases (the dying board shows only particles).
type Snapshot struct {
	Phase    Phase
	GridCols int
	GridRows int

	Snake   []core.Vec
	HasFood bool
	Food    core.Vec

	Score    int
	Best     int
	MoveRate int

	// MenuSpeed is the selected starting speed; meaningful only in menu.
	MenuSpeed int

	// Particles is populated only while dying.
	Particles []ParticleView
}

// Snapshot captures the current state for rendering and for tests.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    g.state.phase(),
		GridCols: g.cfg.Grid.Cols,
		GridRows: g.cfg.Grid.Rows,
		Best:     g.best,
	}

	switch st := g.state.(type) {
	case *menuState:
		snap.MenuSpeed = st.speed
		snap.MoveRate = st.speed
	case *playingState:
		fillSession(&snap, st.session)
	case *pausedState:
		fillSession(&snap, st.session)
	case *dyingState:
		snap.Score = st.session.score
		snap.MoveRate = st.session.moveRate
		snap.Particles = st.particles.views()
	case *gameOverState:
		fillSession(&snap, st.session)
	}

	return snap
}

func fillSession(snap *Snapshot, s *session) {
	snap.Snake = s.snake.cells()
	snap.HasFood = s.hasFood
	snap.Food = s.food
	snap.Score = s.score
	snap.MoveRate = s.moveRate
}
