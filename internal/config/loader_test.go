package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slither.yaml")
	yaml := `
grid:
  cols: 32
  rows: 16
speed:
  base: 15
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Cols != 32 || cfg.Grid.Rows != 16 {
		t.Errorf("grid = %dx%d, expected 32x16", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Speed.Base != 15 {
		t.Errorf("base speed = %d, expected 15", cfg.Speed.Base)
	}

	// Omitted sections keep their defaults.
	if cfg.Snake.StartLength != Default().Snake.StartLength {
		t.Errorf("start length = %d, expected default %d", cfg.Snake.StartLength, Default().Snake.StartLength)
	}
	if cfg.Particles.Gravity != Default().Particles.Gravity {
		t.Errorf("gravity = %v, expected default %v", cfg.Particles.Gravity, Default().Particles.Gravity)
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestLoadedConfigIsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	yaml := `
grid:
  cols: 2
  rows: 2
snake:
  start_length: 100
speed:
  base: -5
  min: -5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Cols < 8 || cfg.Grid.Rows < 8 {
		t.Errorf("grid = %dx%d, expected at least 8x8", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Snake.StartLength > cfg.Grid.Cols/2 {
		t.Errorf("start length %d exceeds half the grid width", cfg.Snake.StartLength)
	}
	if cfg.Speed.Min < 1 {
		t.Errorf("min speed = %d, expected at least 1", cfg.Speed.Min)
	}
	if cfg.Speed.Base < cfg.Speed.Min {
		t.Errorf("base %d below min %d", cfg.Speed.Base, cfg.Speed.Min)
	}
}

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	// The embedded YAML must agree with the hardcoded defaults, or users
	// editing a copied config would start from wrong numbers.
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	want := Default()
	want.Normalize()
	if cfg != want {
		t.Errorf("embedded defaults = %+v, code defaults = %+v", cfg, want)
	}
}

func TestNormalizeParticleBounds(t *testing.T) {
	cfg := Default()
	cfg.Particles.Drag = 1.5
	cfg.Particles.MaxDuration = -1
	cfg.Particles.MinLife = 0
	cfg.Normalize()

	if cfg.Particles.Drag <= 0 || cfg.Particles.Drag > 1 {
		t.Errorf("drag = %v, expected in (0, 1]", cfg.Particles.Drag)
	}
	if cfg.Particles.MaxDuration <= 0 {
		t.Errorf("max duration = %v, expected positive", cfg.Particles.MaxDuration)
	}
	if cfg.Particles.MinLife <= 0 {
		t.Errorf("min life = %v, expected positive", cfg.Particles.MinLife)
	}
}
