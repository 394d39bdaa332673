package mission

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/telemetry"
)

// Arrival records a unit that finished a GoTo during a run.
type Arrival struct {
	ID  entity.ID
	Pos entity.Position
}

// Result summarises one pass over all units.
type Result struct {
	Units    int
	Moved    int
	Arrivals []Arrival
}

// System runs Advance over every unit in a store.
type System struct {
	logger logr.Logger
}

// NewSystem creates a mission system.
func NewSystem(logger logr.Logger) *System {
	return &System{logger: logger}
}

// Run advances every unit that has both a Unit and a Position by one step.
// Units without a position are skipped.
func (s *System) Run(ctx context.Context, store *entity.Store) Result {
	tracer := telemetry.Tracer("mission")
	_, span := tracer.Start(ctx, "mission.run")
	defer span.End()

	var result Result
	for _, id := range store.Units() {
		pos, ok := store.Position(id)
		if !ok {
			continue
		}
		unit, _ := store.Unit(id)
		result.Units++

		next, m := Advance(pos, unit.Mission)
		if next != pos {
			store.SetPosition(id, next)
			result.Moved++
		}

		if _, wasGoTo := unit.Mission.(entity.GoTo); wasGoTo {
			if _, isStay := m.(entity.Stay); isStay {
				result.Arrivals = append(result.Arrivals, Arrival{ID: id, Pos: next})
				s.logger.V(1).Info("unit arrived", "entity", id, "x", next.X, "y", next.Y)
			}
		}
		if m != unit.Mission {
			unit.Mission = m
			store.SetUnit(id, unit)
		}
	}

	span.SetAttributes(
		attribute.Int("mission.units", result.Units),
		attribute.Int("mission.moved", result.Moved),
		attribute.Int("mission.arrivals", len(result.Arrivals)),
	)
	return result
}
