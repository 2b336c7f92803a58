package game

// Clock converts irregular real frame durations into discrete simulation
// steps at a fixed rate. Unconsumed time accumulates across frames, so a
// slow frame runs several steps, a fast frame may run none, and the total
// number of steps depends only on elapsed time, not on frame pacing.
type Clock struct {
	acc float64
}

// Tick adds dt seconds of real time and invokes step once per elapsed step
// interval. The rate is consulted before each step so rate changes made by
// a step (eating speeds the game up) take effect immediately. A step
// returning false stops the drain; the remaining accumulator is kept.
// Returns the number of steps executed.
func (c *Clock) Tick(dt float64, rate func() int, step func() bool) int {
	c.acc += dt
	steps := 0
	for {
		r := rate()
		if r < 1 {
			r = 1
		}
		interval := 1.0 / float64(r)
		if c.acc < interval {
			return steps
		}
		c.acc -= interval
		steps++
		if !step() {
			return steps
		}
	}
}

// Reset discards accumulated time. Called on session reset so a long menu
// pause does not burst steps into a fresh game.
func (c *Clock) Reset() {
	c.acc = 0
}
