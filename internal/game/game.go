package game

import (
	"math/rand"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

// Event is a gameplay side effect surfaced to the platform, which reacts
// with sound and score bookkeeping. The core itself never does I/O.
type Event int

const (
	EventStarted Event = iota // a session began (start or restart)
	EventAte                  // food was eaten this frame
	EventDied                 // fatal collision, death animation began
	EventGameOver             // death animation finished
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventAte:
		return "Ate"
	case EventDied:
		return "Died"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the snake game core. The platform drives it with one Advance call
// per render frame, passing real elapsed time and the frame's input; the
// fixed-step clock inside the playing session decouples the simulation
// rate from the frame rate.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	state state
	best  int
}

// New creates a game with the given gameplay configuration.
func New(cfg config.Config) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg}
}

// Reset seeds the RNG and puts the game in the menu. The best score
// survives: it tracks the maximum reached since process start.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.state = &menuState{speed: g.cfg.Speed.Base}
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase {
	return g.state.phase()
}

// Advance applies one frame's input intents and dt seconds of real time.
// Only the playing state executes simulation steps; only the dying state
// advances particle physics. Returned events are in occurrence order.
func (g *Game) Advance(dt float64, in core.InputFrame) []Event {
	var events []Event

	switch st := g.state.(type) {
	case *menuState:
		st.speed = core.Clamp(st.speed+speedDelta(in), g.cfg.Speed.Min, g.cfg.Speed.Max)
		if in.Has(core.IntentStart) || in.Has(core.IntentRestart) {
			g.startSession(st.speed)
			events = append(events, EventStarted)
		}

	case *playingState:
		s := st.session
		switch {
		case in.Has(core.IntentRestart):
			g.startSession(s.moveRate)
			events = append(events, EventStarted)
		case in.Has(core.IntentPause):
			g.state = &pausedState{session: s}
		default:
			for _, intent := range in.Steering {
				if d, ok := intent.Direction(); ok {
					s.queueDirection(d)
				}
			}
			events = append(events, g.runSteps(s, dt)...)
		}

	case *pausedState:
		s := st.session
		s.adjustRate(speedDelta(in))
		switch {
		case in.Has(core.IntentRestart):
			g.startSession(s.moveRate)
			events = append(events, EventStarted)
		case in.Has(core.IntentStart), in.Has(core.IntentResume), in.Has(core.IntentPause):
			g.state = &playingState{session: s}
		}

	case *dyingState:
		if st.particles.update(dt) {
			g.state = &gameOverState{session: st.session}
			events = append(events, EventGameOver)
		}

	case *gameOverState:
		if in.Has(core.IntentRestart) {
			g.startSession(st.session.moveRate)
			events = append(events, EventStarted)
		}
	}

	return events
}

// runSteps drains the session clock, executing fixed simulation steps.
// A fatal collision stops the drain and transitions to dying.
func (g *Game) runSteps(s *session, dt float64) []Event {
	var events []Event
	s.clock.Tick(dt,
		func() int { return s.moveRate },
		func() bool {
			switch s.step(g.rng) {
			case stepAte:
				events = append(events, EventAte)
				return true
			case stepHitWall, stepHitSelf:
				g.die(s)
				events = append(events, EventDied)
				return false
			default:
				return true
			}
		})
	return events
}

// die freezes gameplay, records the best score and spawns the death burst.
func (g *Game) die(s *session) {
	if s.score > g.best {
		g.best = s.score
	}
	g.state = &dyingState{
		session:   s,
		particles: newParticleSystem(g.cfg.Particles, g.rng, s.snake.cells()),
	}
}

// startSession begins a fresh session at the given move rate.
func (g *Game) startSession(rate int) {
	g.state = &playingState{session: newSession(g.cfg, g.rng, rate)}
}

// speedDelta folds the frame's speed-adjust intents into a single delta.
// Left/right double as speed keys in the menu and pause states.
func speedDelta(in core.InputFrame) int {
	delta := 0
	if in.Has(core.IntentSpeedDown) || in.Has(core.IntentLeft) {
		delta--
	}
	if in.Has(core.IntentSpeedUp) || in.Has(core.IntentRight) {
		delta++
	}
	return delta
}
