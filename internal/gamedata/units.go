package gamedata

// UnitDef defines a unit archetype loaded from JSON.
type UnitDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "worker")
	Name        string `json:"name"`        // Display name of the archetype
	Glyph       string `json:"glyph"`       // Single character for rendering
	HP          int    `json:"hp"`          // Starting health
	Weight      int    `json:"weight"`      // Physical weight
	Size        int    `json:"size"`        // Physical size
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphIndex returns the glyph as a code point.
func (u *UnitDef) GlyphIndex() uint32 {
	return glyphIndex(u.Glyph)
}

// UnitsFile represents the structure of units.json.
type UnitsFile struct {
	Units []UnitDef `json:"units"`
	Names []string  `json:"names"`
}

// LoadUnits loads unit archetypes and the name pool from units.json.
func LoadUnits() (UnitsFile, error) {
	return Load[UnitsFile]("units.json")
}

// PropDef defines a static world object, such as a tree, loaded from JSON.
type PropDef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	Color     string `json:"color"` // Hex color code (e.g., "#228B22")
	Material  string `json:"material"`
	Choppable bool   `json:"choppable"`
	Blocks    bool   `json:"blocks"`
	Weight    int    `json:"weight"`
	Size      int    `json:"size"`
	Count     int    `json:"count"` // How many to place at world init
}

// GlyphIndex returns the glyph as a code point.
func (p *PropDef) GlyphIndex() uint32 {
	return glyphIndex(p.Glyph)
}

// PropsFile represents the structure of props.json.
type PropsFile struct {
	Props []PropDef `json:"props"`
}

// LoadProps loads prop definitions from props.json.
func LoadProps() ([]PropDef, error) {
	file, err := Load[PropsFile]("props.json")
	if err != nil {
		return nil, err
	}
	return file.Props, nil
}

func glyphIndex(s string) uint32 {
	for _, r := range s {
		return uint32(r)
	}
	return '?'
}
