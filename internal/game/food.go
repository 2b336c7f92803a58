package game

import (
	"math/rand"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

// spawnFood picks a uniformly random unoccupied cell. It reports false when
// the grid is fully occupied, in which case no food exists. The free set is
// recomputed from scratch on every call since occupancy changes each step.
func spawnFood(rng *rand.Rand, grid config.GridConfig, s *snake) (core.Vec, bool) {
	free := make([]core.Vec, 0, grid.Cols*grid.Rows-s.length())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			c := core.Vec{X: x, Y: y}
			if !s.occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Vec{}, false
	}
	return free[rng.Intn(len(free))], true
}
