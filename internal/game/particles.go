package game

import (
	"math"
	"math/rand"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

// particle is one fragment of the death animation. Positions and velocities
// are in physics units (cfg.CellUnits per grid cell), not cells.
type particle struct {
	x, y    float64
	vx, vy  float64
	life    float64
	maxLife float64
	color   core.Color
}

// particleSystem owns the death animation: a contiguous batch of particles
// spawned from the snake's cells, integrated until every lifetime expires
// or the hard duration cap is reached.
type particleSystem struct {
	cfg       config.ParticleConfig
	particles []particle
	elapsed   float64
}

// newParticleSystem spawns the death burst from the snake's cells, head
// first. Each cell emits cfg.PerCell particles (the head cfg.HeadBonus
// more) from its center, with uniformly random direction, speed and
// lifetime.
func newParticleSystem(cfg config.ParticleConfig, rng *rand.Rand, cells []core.Vec) *particleSystem {
	ps := &particleSystem{cfg: cfg}
	for i, c := range cells {
		cx := (float64(c.X) + 0.5) * cfg.CellUnits
		cy := (float64(c.Y) + 0.5) * cfg.CellUnits
		n := cfg.PerCell
		color := core.ColorGreen
		if i == 0 {
			n += cfg.HeadBonus
			color = core.ColorBrightGreen
		}
		for j := 0; j < n; j++ {
			angle := rng.Float64() * 2 * math.Pi
			speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
			life := cfg.MinLife + rng.Float64()*(cfg.MaxLife-cfg.MinLife)
			ps.particles = append(ps.particles, particle{
				x:       cx,
				y:       cy,
				vx:      speed * math.Cos(angle),
				vy:      speed * math.Sin(angle),
				life:    life,
				maxLife: life,
				color:   color,
			})
		}
	}
	return ps
}

// update integrates the animation by dt seconds and reports completion.
// The animation is complete when no particle has positive remaining
// lifetime, or cfg.MaxDuration of animation time has elapsed, whichever
// comes first.
func (ps *particleSystem) update(dt float64) bool {
	ps.elapsed += dt
	alive := 0
	for i := range ps.particles {
		p := &ps.particles[i]
		if p.life <= 0 {
			continue
		}
		p.life -= dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += ps.cfg.Gravity * dt
		p.vx *= ps.cfg.Drag
		p.vy *= ps.cfg.Drag
		if p.life > 0 {
			alive++
		}
	}
	return alive == 0 || ps.elapsed >= ps.cfg.MaxDuration
}

// views converts live particles to the render contract: positions in
// grid-cell coordinates and lifetimes normalized to [0,1].
func (ps *particleSystem) views() []ParticleView {
	out := make([]ParticleView, 0, len(ps.particles))
	for i := range ps.particles {
		p := &ps.particles[i]
		if p.life <= 0 {
			continue
		}
		out = append(out, ParticleView{
			X:     p.x / ps.cfg.CellUnits,
			Y:     p.y / ps.cfg.CellUnits,
			Life:  core.ClampF(p.life/p.maxLife, 0, 1),
			Color: p.color,
		})
	}
	return out
}
