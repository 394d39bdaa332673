package gamedata

import (
	"errors"
	"math/rand"
)

// Registry holds loaded spawn tables and provides spawning utilities.
type Registry struct {
	units       []UnitDef
	names       []string
	props       []PropDef
	totalWeight int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry(units []UnitDef, names []string, props []PropDef) *Registry {
	totalWeight := 0
	for _, u := range units {
		totalWeight += u.SpawnWeight
	}
	return &Registry{
		units:       units,
		names:       names,
		props:       props,
		totalWeight: totalWeight,
	}
}

// LoadRegistry loads units.json and props.json into a registry.
func LoadRegistry() (*Registry, error) {
	units, err := LoadUnits()
	if err != nil {
		return nil, err
	}
	if len(units.Units) == 0 {
		return nil, errors.New("no units loaded from units.json")
	}
	props, err := LoadProps()
	if err != nil {
		return nil, err
	}
	return NewRegistry(units.Units, units.Names, props), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random unit archetype using weighted probability.
func (r *Registry) SpawnRandom(rng *rand.Rand) *UnitDef {
	if r.totalWeight <= 0 || len(r.units) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.units {
		cumulative += r.units[i].SpawnWeight
		if roll < cumulative {
			return &r.units[i]
		}
	}

	return &r.units[0]
}

// RandomName picks a name from the pool, or "Unit" if the pool is empty.
func (r *Registry) RandomName(rng *rand.Rand) string {
	if len(r.names) == 0 {
		return "Unit"
	}
	return r.names[rng.Intn(len(r.names))]
}

// GetByID returns the unit archetype with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *UnitDef {
	for i := range r.units {
		if r.units[i].ID == id {
			return &r.units[i]
		}
	}
	return nil
}

// Props returns all prop definitions.
func (r *Registry) Props() []PropDef {
	return r.props
}

// Count returns the number of unit archetypes.
func (r *Registry) Count() int {
	return len(r.units)
}
