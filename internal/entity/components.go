package entity

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// Renderable describes how an entity is drawn. Set once at spawn.
type Renderable struct {
	Glyph uint32 // Tileset glyph index (code point for terminal output)
	Color RGB
}

// Unit marks an entity as controllable and carries its current mission.
type Unit struct {
	Mission Mission
}

// Name is a display name.
type Name struct {
	Name string
}

// Physical holds bulk attributes.
type Physical struct {
	Weight int
	Size   int
}

// Material describes what an entity is made of.
type Material struct {
	Kind      string // e.g. "wood"
	Choppable bool
}

// BlocksTile marks an entity as occupying its cell.
type BlocksTile struct{}

// Living holds health for creatures.
type Living struct {
	Health    int
	MaxHealth int
}

// IsAlive returns true if health remains.
func (l Living) IsAlive() bool { return l.Health > 0 }
