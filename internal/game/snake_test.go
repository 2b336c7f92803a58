package game

import (
	"math/rand"
	"testing"

	"github.com/arcadeclub/slither/internal/config"
	"github.com/arcadeclub/slither/internal/core"
)

func TestNewSnakeLayout(t *testing.T) {
	s := newSnake(core.Vec{X: 12, Y: 12}, core.Right, 4)

	if s.length() != 4 {
		t.Fatalf("length = %d, expected 4", s.length())
	}
	if s.head() != (core.Vec{X: 12, Y: 12}) {
		t.Errorf("head = %v, expected (12,12)", s.head())
	}

	// Body extends opposite the heading, head first.
	want := []core.Vec{{X: 12, Y: 12}, {X: 11, Y: 12}, {X: 10, Y: 12}, {X: 9, Y: 12}}
	cells := s.cells()
	for i, c := range want {
		if cells[i] != c {
			t.Errorf("cells[%d] = %v, expected %v", i, cells[i], c)
		}
	}

	for _, c := range want {
		if !s.occupies(c) {
			t.Errorf("occupies(%v) = false, expected true", c)
		}
	}
	if s.occupies(core.Vec{X: 13, Y: 12}) {
		t.Error("occupies cell ahead of head")
	}
	if err := s.checkInvariant(); err != nil {
		t.Error(err)
	}
}

func TestSnakePushAndSettle(t *testing.T) {
	s := newSnake(core.Vec{X: 5, Y: 5}, core.Right, 3)
	tail := core.Vec{X: 3, Y: 5}

	s.push(core.Vec{X: 6, Y: 5})
	s.settle()

	if s.length() != 3 {
		t.Errorf("length = %d after plain move, expected 3", s.length())
	}
	if s.occupies(tail) {
		t.Error("old tail still occupied after plain move")
	}
	if s.head() != (core.Vec{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", s.head())
	}
	if err := s.checkInvariant(); err != nil {
		t.Error(err)
	}
}

func TestSnakeGrowthSkipsTailRemoval(t *testing.T) {
	s := newSnake(core.Vec{X: 5, Y: 5}, core.Right, 3)
	tail := core.Vec{X: 3, Y: 5}

	s.grow(1)
	s.push(core.Vec{X: 6, Y: 5})
	s.settle()

	if s.length() != 4 {
		t.Errorf("length = %d after growing move, expected 4", s.length())
	}
	if !s.occupies(tail) {
		t.Error("tail removed despite pending growth")
	}

	// Growth is consumed: the next move removes the tail again.
	s.push(core.Vec{X: 7, Y: 5})
	s.settle()
	if s.length() != 4 {
		t.Errorf("length = %d after follow-up move, expected 4", s.length())
	}
	if s.occupies(tail) {
		t.Error("tail still occupied after growth was consumed")
	}
	if err := s.checkInvariant(); err != nil {
		t.Error(err)
	}
}

func TestSpawnFoodNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := config.GridConfig{Cols: 8, Rows: 8}
	s := newSnake(core.Vec{X: 4, Y: 4}, core.Right, 4)

	for i := 0; i < 200; i++ {
		f, ok := spawnFood(rng, grid, s)
		if !ok {
			t.Fatal("spawnFood failed on a mostly empty grid")
		}
		if s.occupies(f) {
			t.Fatalf("food spawned on snake at %v", f)
		}
		if f.X < 0 || f.X >= grid.Cols || f.Y < 0 || f.Y >= grid.Rows {
			t.Fatalf("food out of bounds at %v", f)
		}
	}
}

func TestSpawnFoodFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := config.GridConfig{Cols: 2, Rows: 2}

	// Snake occupying every cell.
	s := &snake{occupied: make(map[core.Vec]struct{})}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := core.Vec{X: x, Y: y}
			s.body = append(s.body, c)
			s.occupied[c] = struct{}{}
		}
	}

	if _, ok := spawnFood(rng, grid, s); ok {
		t.Error("spawnFood reported success on a full grid")
	}
}
