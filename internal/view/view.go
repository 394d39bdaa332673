// Package view defines the read-only snapshot handed to the renderer each frame.
package view

import (
	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/menu"
	"github.com/samdwyer/necronix/internal/world"
)

// Entity is one drawable entity.
type Entity struct {
	ID         entity.ID
	Name       string
	Pos        entity.Position
	Renderable entity.Renderable
	Mission    string // Mission label; empty for non-units
}

// View is everything the renderer may read for one frame.
type View struct {
	Menu     menu.State
	Selected int // Index into Units, -1 when there are none
	Map      *world.Map
	Units    []Entity
	Props    []Entity
	Log      []string
	Tick     uint64
}

// SelectedUnit returns the highlighted unit, if any.
func (v View) SelectedUnit() (Entity, bool) {
	if v.Selected < 0 || v.Selected >= len(v.Units) {
		return Entity{}, false
	}
	return v.Units[v.Selected], true
}
