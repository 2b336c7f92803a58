package game

// Phase identifies the top-level game state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseDying    Phase = "dying"
	PhaseGameOver Phase = "gameover"
)

// state is the tagged union of per-phase data. Each variant carries only
// the data meaningful in that phase, so a menu cannot have a score and
// only dying owns particles.
type state interface {
	phase() Phase
}

// menuState is the start menu with its speed selector.
type menuState struct {
	speed int
}

// playingState runs the simulation.
type playingState struct {
	session *session
}

// pausedState freezes the session; the live move rate stays adjustable.
type pausedState struct {
	session *session
}

// dyingState plays the death animation over the frozen session.
type dyingState struct {
	session   *session
	particles *particleSystem
}

// gameOverState shows the final board until a restart.
type gameOverState struct {
	session *session
}

func (*menuState) phase() Phase     { return PhaseMenu }
func (*playingState) phase() Phase  { return PhasePlaying }
func (*pausedState) phase() Phase   { return PhasePaused }
func (*dyingState) phase() Phase    { return PhaseDying }
func (*gameOverState) phase() Phase { return PhaseGameOver }
