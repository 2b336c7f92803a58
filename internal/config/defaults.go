package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultYAML []byte

// Default returns the default gameplay configuration.
// Values match the classic tuning: 24×24 grid, start length 4, 10 moves/s
// with +1 every 5 points, and the particle physics of the death animation.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Cols: 24,
			Rows: 24,
		},
		Snake: SnakeConfig{
			StartLength: 4,
		},
		Speed: SpeedConfig{
			Base:          10,
			Min:           1,
			Max:           60,
			SpeedupEvery:  5,
			SpeedupAmount: 1,
		},
		Particles: ParticleConfig{
			CellUnits:   25,
			PerCell:     3,
			HeadBonus:   1,
			MinSpeed:    80,
			MaxSpeed:    220,
			MinLife:     0.6,
			MaxLife:     1.2,
			Gravity:     380,
			Drag:        0.98,
			MaxDuration: 1.6,
		},
	}
}
