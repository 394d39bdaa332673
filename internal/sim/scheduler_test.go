package sim

import (
	"context"
	"testing"

	"github.com/go-logr/logr"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/mission"
)

func newScheduler() *Scheduler {
	return NewScheduler(TickSize, mission.NewSystem(logr.Discard()), logr.Discard())
}

func TestFrameGating(t *testing.T) {
	s := newScheduler()
	store := entity.NewStore()
	ctx := context.Background()

	for i := 1; i < TickSize; i++ {
		if _, ticked := s.Frame(ctx, store); ticked {
			t.Fatalf("Frame() ticked on frame %d, want only on frame %d", i, TickSize)
		}
	}
	if _, ticked := s.Frame(ctx, store); !ticked {
		t.Fatalf("Frame() did not tick on frame %d", TickSize)
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", s.Ticks())
	}
	if s.FrameInTick() != 0 {
		t.Errorf("FrameInTick() = %d, want 0", s.FrameInTick())
	}

	for i := 0; i < TickSize*4; i++ {
		s.Frame(ctx, store)
	}
	if s.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", s.Ticks())
	}
}

func TestWalkScenario(t *testing.T) {
	s := newScheduler()
	store := entity.NewStore()
	ctx := context.Background()

	id := store.Create()
	store.SetPosition(id, entity.Position{X: 0, Y: 0})
	store.SetUnit(id, entity.Unit{Mission: entity.GoTo{X: 3, Y: 0}})

	for i := 0; i < 3*TickSize; i++ {
		s.Frame(ctx, store)
	}

	if s.Ticks() != 3 {
		t.Fatalf("Ticks() = %d, want 3", s.Ticks())
	}
	pos, _ := store.Position(id)
	if pos != (entity.Position{X: 3, Y: 0}) {
		t.Errorf("pos after 3 ticks = %v, want 3:0", pos)
	}
	m, _ := store.Mission(id)
	if m != (entity.Stay{}) {
		t.Errorf("mission after 3 ticks = %v, want Stay", m)
	}

	for i := 0; i < TickSize; i++ {
		s.Frame(ctx, store)
	}
	pos, _ = store.Position(id)
	m, _ = store.Mission(id)
	if pos != (entity.Position{X: 3, Y: 0}) || m != (entity.Stay{}) {
		t.Errorf("after 4th tick = %v %v, want unchanged 3:0 Stay", pos, m)
	}
}

func TestTickMaintainsStore(t *testing.T) {
	s := newScheduler()
	store := entity.NewStore()

	a := store.Create()
	store.SetUnit(a, entity.Unit{})
	b := store.Create()
	store.SetUnit(b, entity.Unit{})
	store.Destroy(a)

	s.Tick(context.Background(), store)

	if store.Len() != 1 {
		t.Errorf("Len() after tick = %d, want 1", store.Len())
	}
	if _, ok := store.Unit(a); ok {
		t.Error("destroyed entity kept its Unit after tick")
	}
}

func TestNewSchedulerDefaultsTickSize(t *testing.T) {
	s := NewScheduler(0, mission.NewSystem(logr.Discard()), logr.Discard())
	if s.TickSize() != TickSize {
		t.Errorf("TickSize() = %d, want %d", s.TickSize(), TickSize)
	}
}
