// Package sim decouples the simulation tick from the frame loop.
package sim

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/mission"
	"github.com/samdwyer/necronix/internal/telemetry"
)

// TickSize is the number of frames per simulation tick.
// At 60 FPS this gives roughly 4.6 ticks per second.
const TickSize = 13

// Scheduler counts frames and runs the mission system every tickSize frames.
type Scheduler struct {
	tickSize int
	frame    int
	ticks    uint64
	missions *mission.System
	logger   logr.Logger
}

// NewScheduler creates a scheduler. A tickSize below 1 falls back to TickSize.
func NewScheduler(tickSize int, missions *mission.System, logger logr.Logger) *Scheduler {
	if tickSize < 1 {
		tickSize = TickSize
	}
	return &Scheduler{
		tickSize: tickSize,
		missions: missions,
		logger:   logger,
	}
}

// Frame advances the frame counter. When the counter wraps to zero the
// mission system runs over every unit, followed by store maintenance.
// Returns the tick result and true if a tick ran this frame.
func (s *Scheduler) Frame(ctx context.Context, store *entity.Store) (mission.Result, bool) {
	s.frame = (s.frame + 1) % s.tickSize
	if s.frame != 0 {
		return mission.Result{}, false
	}
	return s.Tick(ctx, store), true
}

// Tick runs one simulation step immediately, independent of the frame counter.
func (s *Scheduler) Tick(ctx context.Context, store *entity.Store) mission.Result {
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "sim.tick")
	defer span.End()

	s.ticks++
	result := s.missions.Run(ctx, store)
	removed := store.Maintain()

	span.SetAttributes(
		attribute.Int64("sim.tick", int64(s.ticks)),
		attribute.Int("sim.units", result.Units),
		attribute.Int("sim.removed", removed),
	)
	s.logger.V(2).Info("tick", "tick", s.ticks, "moved", result.Moved, "removed", removed)
	return result
}

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// FrameInTick returns the current position of the frame counter in [0, tickSize).
func (s *Scheduler) FrameInTick() int {
	return s.frame
}

// TickSize returns the configured frames per tick.
func (s *Scheduler) TickSize() int {
	return s.tickSize
}
