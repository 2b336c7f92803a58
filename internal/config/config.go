// Package config provides YAML-based gameplay configuration loading
// with embedded defaults.
package config

// Config contains all gameplay configuration.
type Config struct {
	Grid      GridConfig     `yaml:"grid"`
	Snake     SnakeConfig    `yaml:"snake"`
	Speed     SpeedConfig    `yaml:"speed"`
	Particles ParticleConfig `yaml:"particles"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SnakeConfig defines snake parameters.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// SpeedConfig defines the move rate and its progression.
// Rates are simulation steps per second.
type SpeedConfig struct {
	Base          int `yaml:"base"`           // starting move rate
	Min           int `yaml:"min"`            // lower clamp for speed adjustment
	Max           int `yaml:"max"`            // upper clamp for speed adjustment
	SpeedupEvery  int `yaml:"speedup_every"`  // every N points the rate increases
	SpeedupAmount int `yaml:"speedup_amount"` // by this many steps per second
}

// ParticleConfig defines the death animation physics.
// Positions and velocities are in abstract units; one grid cell spans
// CellUnits units, so values stay meaningful at any render scale.
type ParticleConfig struct {
	CellUnits   float64 `yaml:"cell_units"`    // units per grid cell
	PerCell     int     `yaml:"per_cell"`      // particles spawned per body cell
	HeadBonus   int     `yaml:"head_bonus"`    // extra particles for the head cell
	MinSpeed    float64 `yaml:"min_speed"`     // units per second
	MaxSpeed    float64 `yaml:"max_speed"`     // units per second
	MinLife     float64 `yaml:"min_life"`      // seconds
	MaxLife     float64 `yaml:"max_life"`      // seconds
	Gravity     float64 `yaml:"gravity"`       // units per second squared, downward
	Drag        float64 `yaml:"drag"`          // per-frame velocity multiplier
	MaxDuration float64 `yaml:"max_duration"`  // hard cap on animation length, seconds
}

// Normalize clamps nonsense values back into a playable range.
// Loaded configs pass through here so a partial YAML cannot wedge the game.
func (c *Config) Normalize() {
	if c.Grid.Cols < 8 {
		c.Grid.Cols = 8
	}
	if c.Grid.Rows < 8 {
		c.Grid.Rows = 8
	}
	if c.Snake.StartLength < 2 {
		c.Snake.StartLength = 2
	}
	if c.Snake.StartLength > c.Grid.Cols/2 {
		c.Snake.StartLength = c.Grid.Cols / 2
	}
	if c.Speed.Min < 1 {
		c.Speed.Min = 1
	}
	if c.Speed.Max < c.Speed.Min {
		c.Speed.Max = c.Speed.Min
	}
	if c.Speed.Base < c.Speed.Min {
		c.Speed.Base = c.Speed.Min
	}
	if c.Speed.Base > c.Speed.Max {
		c.Speed.Base = c.Speed.Max
	}
	if c.Speed.SpeedupEvery < 1 {
		c.Speed.SpeedupEvery = 1
	}
	if c.Speed.SpeedupAmount < 0 {
		c.Speed.SpeedupAmount = 0
	}
	if c.Particles.CellUnits <= 0 {
		c.Particles.CellUnits = 25
	}
	if c.Particles.PerCell < 1 {
		c.Particles.PerCell = 1
	}
	if c.Particles.HeadBonus < 0 {
		c.Particles.HeadBonus = 0
	}
	if c.Particles.MaxSpeed < c.Particles.MinSpeed {
		c.Particles.MaxSpeed = c.Particles.MinSpeed
	}
	if c.Particles.MinLife <= 0 {
		c.Particles.MinLife = 0.1
	}
	if c.Particles.MaxLife < c.Particles.MinLife {
		c.Particles.MaxLife = c.Particles.MinLife
	}
	if c.Particles.Drag <= 0 || c.Particles.Drag > 1 {
		c.Particles.Drag = 0.98
	}
	if c.Particles.MaxDuration <= 0 {
		c.Particles.MaxDuration = 1.6
	}
}
