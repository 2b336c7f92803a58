// Package game implements the snake simulation core: the snake model, the
// food spawner, the fixed-step clock, the session state machine and the
// death particle system. It is pure logic with no platform dependencies.
package game

import (
	"fmt"

	"github.com/arcadeclub/slither/internal/core"
)

// snake is the ordered body of the snake, head at index 0, mirrored by an
// occupancy set for O(1) collision checks. Both structures must always
// agree; mutation happens only through push and settle.
type snake struct {
	body          []core.Vec
	occupied      map[core.Vec]struct{}
	pendingGrowth int
}

// newSnake builds a snake of the given length with its head at head,
// extending opposite to dir.
func newSnake(head core.Vec, dir core.Vec, length int) *snake {
	s := &snake{
		body:     make([]core.Vec, 0, length),
		occupied: make(map[core.Vec]struct{}, length),
	}
	back := dir.Opposite()
	cell := head
	for i := 0; i < length; i++ {
		s.body = append(s.body, cell)
		s.occupied[cell] = struct{}{}
		cell = cell.Add(back)
	}
	return s
}

// head returns the head cell.
func (s *snake) head() core.Vec {
	return s.body[0]
}

// length returns the number of occupied cells.
func (s *snake) length() int {
	return len(s.body)
}

// occupies reports whether the snake currently occupies the cell.
func (s *snake) occupies(c core.Vec) bool {
	_, ok := s.occupied[c]
	return ok
}

// cells returns a copy of the body, head first.
func (s *snake) cells() []core.Vec {
	out := make([]core.Vec, len(s.body))
	copy(out, s.body)
	return out
}

// grow schedules n future steps to skip tail removal.
func (s *snake) grow(n int) {
	s.pendingGrowth += n
}

// push prepends a new head cell. The caller must have verified the cell is
// free; pushing an occupied cell would corrupt the occupancy set.
func (s *snake) push(head core.Vec) {
	s.body = append([]core.Vec{head}, s.body...)
	s.occupied[head] = struct{}{}
}

// settle finishes a step after push: it consumes one unit of pending
// growth, or removes the tail when no growth is pending.
func (s *snake) settle() {
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	delete(s.occupied, tail)
}

// checkInvariant verifies that the body and the occupancy set agree.
// A violation is a programmer error; the test suite calls this after
// every step.
func (s *snake) checkInvariant() error {
	if len(s.body) != len(s.occupied) {
		return fmt.Errorf("snake: body has %d cells, occupancy set has %d", len(s.body), len(s.occupied))
	}
	seen := make(map[core.Vec]struct{}, len(s.body))
	for _, c := range s.body {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("snake: cell (%d,%d) repeated in body", c.X, c.Y)
		}
		seen[c] = struct{}{}
		if _, ok := s.occupied[c]; !ok {
			return fmt.Errorf("snake: cell (%d,%d) in body but not in occupancy set", c.X, c.Y)
		}
	}
	return nil
}
