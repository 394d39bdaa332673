package mission

import (
	"context"
	"math"
	"testing"

	"github.com/go-logr/logr"

	"github.com/samdwyer/necronix/internal/entity"
)

func dist(p entity.Position, x, y int) float64 {
	return math.Hypot(float64(x-p.X), float64(y-p.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestAdvanceGoToSteps(t *testing.T) {
	tests := []struct {
		name     string
		pos      entity.Position
		target   entity.GoTo
		wantPos  entity.Position
		wantStay bool
	}{
		{"east", entity.Position{X: 0, Y: 0}, entity.GoTo{X: 3, Y: 0}, entity.Position{X: 1, Y: 0}, false},
		{"west", entity.Position{X: 5, Y: 5}, entity.GoTo{X: 0, Y: 5}, entity.Position{X: 4, Y: 5}, false},
		{"south", entity.Position{X: 2, Y: 2}, entity.GoTo{X: 2, Y: 9}, entity.Position{X: 2, Y: 3}, false},
		{"diagonal", entity.Position{X: 0, Y: 0}, entity.GoTo{X: 4, Y: 4}, entity.Position{X: 1, Y: 1}, false},
		{"diagonal negative", entity.Position{X: 4, Y: 4}, entity.GoTo{X: 0, Y: 0}, entity.Position{X: 3, Y: 3}, false},
		{"shallow", entity.Position{X: 0, Y: 0}, entity.GoTo{X: 2, Y: 1}, entity.Position{X: 1, Y: 0}, false},
		{"last step", entity.Position{X: 2, Y: 0}, entity.GoTo{X: 3, Y: 0}, entity.Position{X: 3, Y: 0}, true},
		{"already there", entity.Position{X: 3, Y: 3}, entity.GoTo{X: 3, Y: 3}, entity.Position{X: 3, Y: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, m := Advance(tt.pos, tt.target)
			if pos != tt.wantPos {
				t.Errorf("Advance() pos = %v, want %v", pos, tt.wantPos)
			}
			_, isStay := m.(entity.Stay)
			if isStay != tt.wantStay {
				t.Errorf("Advance() mission = %v, want stay=%v", m, tt.wantStay)
			}
			if !isStay && m != tt.target {
				t.Errorf("Advance() mission = %v, want %v", m, tt.target)
			}
		})
	}
}

func TestAdvanceGoToProperties(t *testing.T) {
	const width, height = 15, 15

	for sx := 0; sx < width; sx++ {
		for sy := 0; sy < height; sy++ {
			for _, target := range []entity.GoTo{{X: 0, Y: 0}, {X: 14, Y: 14}, {X: 7, Y: 3}, {X: 0, Y: 14}} {
				pos := entity.Position{X: sx, Y: sy}
				if pos.X == target.X && pos.Y == target.Y {
					continue
				}

				next, _ := Advance(pos, target)

				if abs(next.X-pos.X) > 1 || abs(next.Y-pos.Y) > 1 {
					t.Fatalf("Advance(%v, %v) moved more than one cell: %v", pos, target, next)
				}
				if next.X < 0 || next.X >= width || next.Y < 0 || next.Y >= height {
					t.Fatalf("Advance(%v, %v) left the map: %v", pos, target, next)
				}
				if dist(next, target.X, target.Y) >= dist(pos, target.X, target.Y) {
					t.Fatalf("Advance(%v, %v) = %v did not get closer", pos, target, next)
				}
			}
		}
	}
}

func TestAdvanceReachesTarget(t *testing.T) {
	pos := entity.Position{X: 1, Y: 13}
	var m entity.Mission = entity.GoTo{X: 12, Y: 2}

	for i := 0; i < 100; i++ {
		pos, m = Advance(pos, m)
		if _, ok := m.(entity.Stay); ok {
			break
		}
	}

	if pos != (entity.Position{X: 12, Y: 2}) {
		t.Errorf("final pos = %v, want 12:2", pos)
	}
	if m != (entity.Stay{}) {
		t.Errorf("final mission = %v, want Stay", m)
	}
}

func TestAdvanceFixedPoints(t *testing.T) {
	pos := entity.Position{X: 4, Y: 6}

	for _, m := range []entity.Mission{entity.Stay{}, entity.Chop{Target: 3}} {
		p1, m1 := Advance(pos, m)
		p2, m2 := Advance(p1, m1)
		if p1 != pos || m1 != m {
			t.Errorf("Advance(%v, %v) = %v, %v, want unchanged", pos, m, p1, m1)
		}
		if p2 != p1 || m2 != m1 {
			t.Errorf("Advance is not idempotent for %v", m)
		}
	}

	p, m := Advance(pos, nil)
	if p != pos || m != (entity.Stay{}) {
		t.Errorf("Advance(nil mission) = %v, %v, want unchanged Stay", p, m)
	}
}

func TestSystemRun(t *testing.T) {
	store := entity.NewStore()

	walker := store.Create()
	store.SetPosition(walker, entity.Position{X: 0, Y: 0})
	store.SetUnit(walker, entity.Unit{Mission: entity.GoTo{X: 1, Y: 1}})

	idle := store.Create()
	store.SetPosition(idle, entity.Position{X: 5, Y: 5})
	store.SetUnit(idle, entity.Unit{Mission: entity.Stay{}})

	ghost := store.Create()
	store.SetUnit(ghost, entity.Unit{Mission: entity.GoTo{X: 2, Y: 2}})

	sys := NewSystem(logr.Discard())
	result := sys.Run(context.Background(), store)

	if result.Units != 2 {
		t.Errorf("Run().Units = %d, want 2", result.Units)
	}
	if result.Moved != 1 {
		t.Errorf("Run().Moved = %d, want 1", result.Moved)
	}
	if len(result.Arrivals) != 1 || result.Arrivals[0].ID != walker {
		t.Errorf("Run().Arrivals = %v, want walker", result.Arrivals)
	}

	pos, _ := store.Position(walker)
	if pos != (entity.Position{X: 1, Y: 1}) {
		t.Errorf("walker pos = %v, want 1:1", pos)
	}
	m, _ := store.Mission(walker)
	if m != (entity.Stay{}) {
		t.Errorf("walker mission = %v, want Stay", m)
	}

	// The unit with no position keeps its mission untouched.
	m, _ = store.Mission(ghost)
	if m != (entity.GoTo{X: 2, Y: 2}) {
		t.Errorf("ghost mission = %v, want GoTo 2:2", m)
	}
}
