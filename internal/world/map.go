package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 15
	DefaultHeight = 15

	// One cell in obstacleOdds becomes an obstacle.
	obstacleOdds = 10
)

// Map is a fixed-size grid of cell codes stored row-major.
// It is generated once and never mutated afterwards.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewMap creates a map of the given size filled with floor.
func NewMap(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
}

// Generate scatters obstacles over the map, roughly one cell in ten.
func (m *Map) Generate(ctx context.Context, rng *rand.Rand) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	obstacles := 0
	for i := range m.Tiles {
		if rng.Intn(obstacleOdds) == 1 {
			m.Tiles[i] = TileObstacle
			obstacles++
		} else {
			m.Tiles[i] = TileFloor
		}
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.obstacles", obstacles),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// Idx returns the flat index of (x, y).
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// InBounds returns true if (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[m.Idx(x, y)].IsPassable()
}

// GetTile returns the tile at the given position.
func (m *Map) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileObstacle
	}
	return m.Tiles[m.Idx(x, y)]
}

// RandomPoint returns a uniformly random in-bounds cell.
func (m *Map) RandomPoint(rng *rand.Rand) (int, int) {
	return rng.Intn(m.Width), rng.Intn(m.Height)
}

// RandomFloor returns a random passable cell.
// Falls back to any in-bounds cell when none is found.
func (m *Map) RandomFloor(rng *rand.Rand) (int, int) {
	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x, y := m.RandomPoint(rng)
		if m.IsPassable(x, y) {
			return x, y
		}
	}
	return m.RandomPoint(rng)
}
