// Package mission advances unit missions one step per tick.
package mission

import (
	"math"

	"github.com/samdwyer/necronix/internal/entity"
)

// Advance returns the position and mission a unit has after one tick.
// It never reads other units.
//
// GoTo walks one step along the normalised displacement, each axis rounded
// half away from zero, so moves are at most one cell per axis. The mission
// becomes Stay once the unit stands on its target. Stay and Chop are inert.
func Advance(pos entity.Position, m entity.Mission) (entity.Position, entity.Mission) {
	switch m := m.(type) {
	case entity.GoTo:
		return advanceGoTo(pos, m)
	case entity.Stay:
		return pos, m
	case entity.Chop:
		return pos, m
	case nil:
		return pos, entity.Stay{}
	default:
		return pos, m
	}
}

func advanceGoTo(pos entity.Position, g entity.GoTo) (entity.Position, entity.Mission) {
	if pos.X == g.X && pos.Y == g.Y {
		return pos, entity.Stay{}
	}

	dx := float64(g.X - pos.X)
	dy := float64(g.Y - pos.Y)
	length := math.Hypot(dx, dy)

	next := entity.Position{
		X: pos.X + int(math.Round(dx/length)),
		Y: pos.Y + int(math.Round(dy/length)),
	}

	if next.X == g.X && next.Y == g.Y {
		return next, entity.Stay{}
	}
	return next, g
}
