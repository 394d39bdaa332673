// Package world provides map generation and map queries.
package world

// Tile is a single map cell code.
type Tile uint8

const (
	// TileFloor is a walkable cell.
	TileFloor Tile = 0
	// TileObstacle is a blocked cell.
	TileObstacle Tile = 1
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileObstacle:
		return '#'
	default:
		return '?'
	}
}
