package game

import (
	"math/rand"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

// stepOutcome is the result of a single simulation step.
type stepOutcome int

const (
	stepMoved stepOutcome = iota
	stepAte
	stepHitWall
	stepHitSelf
)

// session holds the state of one play session, created on start/restart
// and discarded on the next reset.
type session struct {
	cfg config.Config

	snake   *snake
	dir     core.Vec
	nextDir core.Vec

	food    core.Vec
	hasFood bool

	score    int
	moveRate int

	clock Clock
}

// newSession builds a fresh session: snake centered heading right, food
// spawned, score zero, at the given move rate.
func newSession(cfg config.Config, rng *rand.Rand, rate int) *session {
	s := &session{
		cfg:      cfg,
		dir:      core.Right,
		nextDir:  core.Right,
		moveRate: core.Clamp(rate, cfg.Speed.Min, cfg.Speed.Max),
	}
	center := core.Vec{X: cfg.Grid.Cols / 2, Y: cfg.Grid.Rows / 2}
	s.snake = newSnake(center, core.Right, cfg.Snake.StartLength)
	s.food, s.hasFood = spawnFood(rng, cfg.Grid, s.snake)
	return s
}

// queueDirection buffers a direction for the next step. A 180° reversal of
// the direction of the last executed step is rejected; later valid presses
// within a frame overwrite earlier ones.
func (s *session) queueDirection(d core.Vec) {
	if d == s.dir.Opposite() {
		return
	}
	s.nextDir = d
}

// adjustRate changes the move rate by delta, clamped to the configured range.
func (s *session) adjustRate(delta int) {
	s.moveRate = core.Clamp(s.moveRate+delta, s.cfg.Speed.Min, s.cfg.Speed.Max)
}

// step advances the snake by one cell. The occupancy check runs against the
// pre-move body: the tail cell vacated by this step still blocks the head,
// per classic rules.
func (s *session) step(rng *rand.Rand) stepOutcome {
	s.dir = s.nextDir
	newHead := s.snake.head().Add(s.dir)

	if newHead.X < 0 || newHead.X >= s.cfg.Grid.Cols ||
		newHead.Y < 0 || newHead.Y >= s.cfg.Grid.Rows {
		return stepHitWall
	}
	if s.snake.occupies(newHead) {
		return stepHitSelf
	}

	s.snake.push(newHead)

	outcome := stepMoved
	if s.hasFood && newHead == s.food {
		s.score++
		s.snake.grow(1)
		if s.score%s.cfg.Speed.SpeedupEvery == 0 {
			s.moveRate = core.Clamp(s.moveRate+s.cfg.Speed.SpeedupAmount, s.cfg.Speed.Min, s.cfg.Speed.Max)
		}
		s.food, s.hasFood = spawnFood(rng, s.cfg.Grid, s.snake)
		outcome = stepAte
	}

	s.snake.settle()
	return outcome
}
