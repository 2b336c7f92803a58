package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

func particleConfig() config.ParticleConfig {
	return config.Default().Particles
}

func TestParticleSpawnCounts(t *testing.T) {
	cfg := particleConfig()
	rng := rand.New(rand.NewSource(1))
	cells := []core.Vec{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}

	ps := newParticleSystem(cfg, rng, cells)

	want := len(cells)*cfg.PerCell + cfg.HeadBonus
	if len(ps.particles) != want {
		t.Fatalf("spawned %d particles, expected %d", len(ps.particles), want)
	}

	// Head particles come first and are highlighted.
	headCount := cfg.PerCell + cfg.HeadBonus
	for i, p := range ps.particles {
		wantColor := core.ColorGreen
		if i < headCount {
			wantColor = core.ColorBrightGreen
		}
		if p.color != wantColor {
			t.Errorf("particle %d color = %v, expected %v", i, p.color, wantColor)
		}
	}
}

func TestParticleSpawnAtCellCenters(t *testing.T) {
	cfg := particleConfig()
	rng := rand.New(rand.NewSource(2))
	cell := core.Vec{X: 2, Y: 3}

	ps := newParticleSystem(cfg, rng, []core.Vec{cell})

	wantX := (float64(cell.X) + 0.5) * cfg.CellUnits
	wantY := (float64(cell.Y) + 0.5) * cfg.CellUnits
	for i, p := range ps.particles {
		if p.x != wantX || p.y != wantY {
			t.Errorf("particle %d spawned at (%v, %v), expected (%v, %v)", i, p.x, p.y, wantX, wantY)
		}
	}
}

func TestParticleSpawnRanges(t *testing.T) {
	cfg := particleConfig()
	rng := rand.New(rand.NewSource(3))
	cells := make([]core.Vec, 50)
	for i := range cells {
		cells[i] = core.Vec{X: i, Y: 0}
	}

	ps := newParticleSystem(cfg, rng, cells)
	for i, p := range ps.particles {
		speed := math.Hypot(p.vx, p.vy)
		if speed < cfg.MinSpeed-1e-9 || speed >= cfg.MaxSpeed+1e-9 {
			t.Errorf("particle %d speed = %v, expected in [%v, %v)", i, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if p.life < cfg.MinLife || p.life >= cfg.MaxLife {
			t.Errorf("particle %d life = %v, expected in [%v, %v)", i, p.life, cfg.MinLife, cfg.MaxLife)
		}
		if p.maxLife != p.life {
			t.Errorf("particle %d maxLife = %v, expected %v", i, p.maxLife, p.life)
		}
	}
}

func TestParticleIntegrationOrder(t *testing.T) {
	// Position integrates with the old velocity, then gravity, then drag.
	cfg := particleConfig()
	ps := &particleSystem{
		cfg: cfg,
		particles: []particle{{
			vx: 100, vy: 0, life: 1, maxLife: 1,
		}},
	}

	done := ps.update(0.1)
	if done {
		t.Fatal("animation reported complete after one frame")
	}

	p := ps.particles[0]
	if math.Abs(p.x-10) > 1e-9 {
		t.Errorf("x = %v, expected 10", p.x)
	}
	// vy was zero during integration, so y is unchanged this frame.
	if p.y != 0 {
		t.Errorf("y = %v, expected 0", p.y)
	}
	if math.Abs(p.vx-100*cfg.Drag) > 1e-9 {
		t.Errorf("vx = %v, expected %v", p.vx, 100*cfg.Drag)
	}
	wantVy := cfg.Gravity * 0.1 * cfg.Drag
	if math.Abs(p.vy-wantVy) > 1e-9 {
		t.Errorf("vy = %v, expected %v", p.vy, wantVy)
	}
}

func TestParticlesCompleteWhenAllExpire(t *testing.T) {
	cfg := particleConfig()
	cfg.MinLife = 0.1
	cfg.MaxLife = 0.1
	rng := rand.New(rand.NewSource(4))

	ps := newParticleSystem(cfg, rng, []core.Vec{{X: 1, Y: 1}})

	if ps.update(0.06) {
		t.Fatal("complete after 0.06s with 0.1s lifetimes")
	}
	if !ps.update(0.06) {
		t.Error("not complete after 0.12s with 0.1s lifetimes")
	}
}

func TestParticlesCompleteAtDurationCap(t *testing.T) {
	// Lifetimes far beyond the cap: the animation must still end at
	// MaxDuration.
	cfg := particleConfig()
	cfg.MinLife = 5
	cfg.MaxLife = 5
	rng := rand.New(rand.NewSource(5))

	ps := newParticleSystem(cfg, rng, []core.Vec{{X: 1, Y: 1}})

	for i := 0; i < 3; i++ {
		if ps.update(0.4) {
			t.Fatalf("complete after %v s, before the %v s cap", float64(i+1)*0.4, cfg.MaxDuration)
		}
	}
	if !ps.update(0.4) {
		t.Errorf("not complete after 1.6s, cap is %v", cfg.MaxDuration)
	}
}

func TestParticleViews(t *testing.T) {
	cfg := particleConfig()
	ps := &particleSystem{
		cfg: cfg,
		particles: []particle{
			{x: 50, y: 25, life: 0.5, maxLife: 1, color: core.ColorGreen},
			{x: 10, y: 10, life: -0.1, maxLife: 1, color: core.ColorGreen},
		},
	}

	views := ps.views()
	if len(views) != 1 {
		t.Fatalf("views() returned %d particles, expected 1 (dead excluded)", len(views))
	}
	v := views[0]
	if v.X != 50/cfg.CellUnits || v.Y != 25/cfg.CellUnits {
		t.Errorf("view at (%v, %v), expected (%v, %v)", v.X, v.Y, 50/cfg.CellUnits, 25/cfg.CellUnits)
	}
	if v.Life != 0.5 {
		t.Errorf("view life = %v, expected 0.5", v.Life)
	}
	if v.Color != core.ColorGreen {
		t.Errorf("view color = %v, expected green", v.Color)
	}
}
