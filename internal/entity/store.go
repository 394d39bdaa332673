// Package entity provides the entity store, component types and missions.
package entity

import (
	"errors"
	"fmt"
)

// ID identifies an entity. It carries no data of its own.
type ID uint32

var (
	// ErrUnknownEntity is returned for ids that are not alive in the store.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNoUnit is returned when a unit-only operation targets a non-unit.
	ErrNoUnit = errors.New("entity is not a unit")
)

// Store holds entities and their components in sparse per-component tables.
// Iteration order is creation order and stays stable until Maintain compacts
// destroyed entities away.
type Store struct {
	nextID ID
	order  []ID
	alive  map[ID]bool
	dead   []ID

	positions   table[Position]
	renderables table[Renderable]
	units       table[Unit]
	names       table[Name]
	physicals   table[Physical]
	materials   table[Material]
	blockers    table[BlocksTile]
	livings     table[Living]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nextID:      1,
		alive:       make(map[ID]bool),
		positions:   newTable[Position](),
		renderables: newTable[Renderable](),
		units:       newTable[Unit](),
		names:       newTable[Name](),
		physicals:   newTable[Physical](),
		materials:   newTable[Material](),
		blockers:    newTable[BlocksTile](),
		livings:     newTable[Living](),
	}
}

// Create mints a new entity with no components.
func (s *Store) Create() ID {
	id := s.nextID
	s.nextID++
	s.alive[id] = true
	s.order = append(s.order, id)
	return id
}

// Alive reports whether the entity exists and has not been destroyed.
func (s *Store) Alive(id ID) bool {
	return s.alive[id]
}

// Destroy marks an entity dead. Its components stay in place until Maintain.
func (s *Store) Destroy(id ID) {
	if !s.alive[id] {
		return
	}
	s.alive[id] = false
	s.dead = append(s.dead, id)
}

// Maintain drops destroyed entities and their components.
// Returns the number of entities removed.
func (s *Store) Maintain() int {
	if len(s.dead) == 0 {
		return 0
	}

	for _, id := range s.dead {
		s.positions.remove(id)
		s.renderables.remove(id)
		s.units.remove(id)
		s.names.remove(id)
		s.physicals.remove(id)
		s.materials.remove(id)
		s.blockers.remove(id)
		s.livings.remove(id)
		delete(s.alive, id)
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if s.alive[id] {
			kept = append(kept, id)
		}
	}
	s.order = kept

	removed := len(s.dead)
	s.dead = s.dead[:0]
	return removed
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	for _, id := range s.order {
		if s.alive[id] {
			n++
		}
	}
	return n
}

// Entities returns all live entities in store order.
func (s *Store) Entities() []ID {
	result := make([]ID, 0, len(s.order))
	for _, id := range s.order {
		if s.alive[id] {
			result = append(result, id)
		}
	}
	return result
}

// Units returns live entities carrying a Unit component, in store order.
// The selection cursor indexes into this slice.
func (s *Store) Units() []ID {
	result := make([]ID, 0, s.units.count())
	for _, id := range s.order {
		if s.alive[id] && s.units.has(id) {
			result = append(result, id)
		}
	}
	return result
}

// UnitCount returns the number of live units.
func (s *Store) UnitCount() int {
	return len(s.Units())
}

// =============================================================================
// Typed component accessors
// =============================================================================

// Setters are no-ops for entities that are not alive.

// Position returns the entity's position.
func (s *Store) Position(id ID) (Position, bool) { return s.positions.get(id) }

// SetPosition attaches or replaces the entity's position.
func (s *Store) SetPosition(id ID, p Position) {
	if s.alive[id] {
		s.positions.set(id, p)
	}
}

// Renderable returns the entity's appearance.
func (s *Store) Renderable(id ID) (Renderable, bool) { return s.renderables.get(id) }

// SetRenderable attaches or replaces the entity's appearance.
func (s *Store) SetRenderable(id ID, r Renderable) {
	if s.alive[id] {
		s.renderables.set(id, r)
	}
}

// Unit returns the entity's unit component.
func (s *Store) Unit(id ID) (Unit, bool) { return s.units.get(id) }

// SetUnit attaches or replaces the entity's unit component.
// A nil mission is stored as Stay.
func (s *Store) SetUnit(id ID, u Unit) {
	if !s.alive[id] {
		return
	}
	if u.Mission == nil {
		u.Mission = Stay{}
	}
	s.units.set(id, u)
}

// Name returns the entity's name.
func (s *Store) Name(id ID) (Name, bool) { return s.names.get(id) }

// SetName attaches or replaces the entity's name.
func (s *Store) SetName(id ID, n Name) {
	if s.alive[id] {
		s.names.set(id, n)
	}
}

// Physical returns the entity's physical attributes.
func (s *Store) Physical(id ID) (Physical, bool) { return s.physicals.get(id) }

// SetPhysical attaches or replaces the entity's physical attributes.
func (s *Store) SetPhysical(id ID, p Physical) {
	if s.alive[id] {
		s.physicals.set(id, p)
	}
}

// Material returns the entity's material.
func (s *Store) Material(id ID) (Material, bool) { return s.materials.get(id) }

// SetMaterial attaches or replaces the entity's material.
func (s *Store) SetMaterial(id ID, m Material) {
	if s.alive[id] {
		s.materials.set(id, m)
	}
}

// BlocksTile reports whether the entity blocks its cell.
func (s *Store) BlocksTile(id ID) bool { return s.blockers.has(id) }

// SetBlocksTile marks the entity as blocking its cell.
func (s *Store) SetBlocksTile(id ID) {
	if s.alive[id] {
		s.blockers.set(id, BlocksTile{})
	}
}

// Living returns the entity's health.
func (s *Store) Living(id ID) (Living, bool) { return s.livings.get(id) }

// SetLiving attaches or replaces the entity's health.
func (s *Store) SetLiving(id ID, l Living) {
	if s.alive[id] {
		s.livings.set(id, l)
	}
}

// Choppable returns live entities whose material can be chopped, in store order.
func (s *Store) Choppable() []ID {
	var result []ID
	for _, id := range s.order {
		if !s.alive[id] {
			continue
		}
		if m, ok := s.materials.get(id); ok && m.Choppable {
			result = append(result, id)
		}
	}
	return result
}

// =============================================================================
// Missions
// =============================================================================

// Mission returns the unit's current mission.
func (s *Store) Mission(id ID) (Mission, error) {
	if !s.alive[id] {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	u, ok := s.units.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoUnit, id)
	}
	return u.Mission, nil
}

// AssignMission replaces the unit's mission wholesale.
// The new mission takes effect on the next tick.
func (s *Store) AssignMission(id ID, m Mission) error {
	if !s.alive[id] {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	u, ok := s.units.get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoUnit, id)
	}
	if m == nil {
		m = Stay{}
	}
	u.Mission = m
	s.units.set(id, u)
	return nil
}

// MustAssignMission is like AssignMission but panics on error.
// Assigning to a non-unit is a programming error.
func (s *Store) MustAssignMission(id ID, m Mission) {
	if err := s.AssignMission(id, m); err != nil {
		panic(err)
	}
}
