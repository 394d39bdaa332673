package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/gamedata"
	"github.com/samdwyer/necronix/internal/gamelog"
	"github.com/samdwyer/necronix/internal/menu"
	"github.com/samdwyer/necronix/internal/mission"
	"github.com/samdwyer/necronix/internal/sim"
	"github.com/samdwyer/necronix/internal/telemetry"
	"github.com/samdwyer/necronix/internal/view"
)

// Session owns all mutable game state for one run: the world, the
// scheduler, the menu state, the selection cursor and the game log.
// It is driven from a single goroutine; nothing here locks.
type Session struct {
	id        string
	world     *World
	scheduler *sim.Scheduler
	menu      menu.State
	cursor    menu.Cursor
	log       *gamelog.Log
	rng       *rand.Rand
	logger    logr.Logger
	running   bool

	// exportLog receives the game log text on export-log.
	exportLog func(text string) error
}

// NewSession generates a world from cfg and returns a session in the main menu.
func NewSession(ctx context.Context, cfg Config, logger logr.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		return nil, err
	}

	w, err := NewWorld(ctx, cfg, rng, registry)
	if err != nil {
		return nil, err
	}

	id := cfg.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	logger = logger.WithValues("session", id)
	logger.Info("world ready", "seed", seed, "units", w.Store.UnitCount(), "entities", w.Store.Len())

	return newSession(id, w, cfg, rng, logger), nil
}

func newSession(id string, w *World, cfg Config, rng *rand.Rand, logger logr.Logger) *Session {
	s := &Session{
		id:        id,
		world:     w,
		scheduler: sim.NewScheduler(cfg.TickSize, mission.NewSystem(logger), logger),
		menu:      menu.Initial(),
		log:       gamelog.New(cfg.LogCapacity),
		rng:       rng,
		logger:    logger,
		running:   true,
	}
	s.log.Addf(0, "%d units await orders", w.Store.UnitCount())
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Running reports whether the session is still live.
func (s *Session) Running() bool { return s.running }

// Quit ends the session.
func (s *Session) Quit() { s.running = false }

// Menu returns the current menu state.
func (s *Session) Menu() menu.State { return s.menu }

// Selected returns the selection cursor position.
func (s *Session) Selected() int { return s.cursor.Index() }

// World returns the session's world.
func (s *Session) World() *World { return s.world }

// Log returns the game log.
func (s *Session) Log() *gamelog.Log { return s.log }

// Ticks returns the number of simulation ticks run.
func (s *Session) Ticks() uint64 { return s.scheduler.Ticks() }

// SetLogExporter installs the destination for export-log.
func (s *Session) SetLogExporter(fn func(text string) error) {
	s.exportLog = fn
}

// ChooseDestination picks a random passable cell for a reassign command.
func (s *Session) ChooseDestination() (int, int) {
	return s.world.Map.RandomFloor(s.rng)
}

// Apply runs one input command through the menu state machine and performs
// the resulting effect. All commands for a frame are applied before Frame.
func (s *Session) Apply(ctx context.Context, cmd menu.Command) {
	if !s.running {
		return
	}

	next, effect := s.menu.Apply(cmd)
	if next != s.menu {
		s.logger.V(1).Info("menu transition", "from", s.menu.String(), "to", next.String(), "command", cmd.String())
	}
	s.menu = next

	switch effect {
	case menu.EffectNone:
	case menu.EffectQuit:
		s.logger.Info("session ending", "ticks", s.scheduler.Ticks())
		s.running = false
	case menu.EffectNextUnit:
		s.cursor.Next(s.world.Store.UnitCount())
	case menu.EffectPrevUnit:
		s.cursor.Prev(s.world.Store.UnitCount())
	case menu.EffectReassign:
		s.reassignSelected(ctx, cmd.X, cmd.Y)
	case menu.EffectExportLog:
		s.exportLogText()
	}
}

// reassignSelected sends the selected unit to (x, y).
// Targets off the map are rejected; the unit keeps its mission.
func (s *Session) reassignSelected(ctx context.Context, x, y int) {
	units := s.world.Store.Units()
	id := units[s.cursor.Selected(len(units))]

	if !s.world.Map.InBounds(x, y) {
		s.logger.Info("reassign rejected: target off map", "entity", id, "x", x, "y", y)
		return
	}

	tracer := telemetry.Tracer("mission")
	_, span := tracer.Start(ctx, "mission.assign")
	defer span.End()

	m := entity.GoTo{X: x, Y: y}
	s.world.Store.MustAssignMission(id, m)

	span.SetAttributes(
		attribute.Int("entity", int(id)),
		attribute.String("mission", m.String()),
	)
	s.log.Addf(s.scheduler.Ticks(), "%s ordered to %d:%d", s.world.NameOf(id), x, y)
}

func (s *Session) exportLogText() {
	if s.exportLog == nil {
		s.logger.Info("export-log ignored: no exporter")
		return
	}
	if err := s.exportLog(s.log.Text()); err != nil {
		s.logger.Error(err, "export-log failed")
		s.log.Add(s.scheduler.Ticks(), "Log export failed")
		return
	}
	s.log.Add(s.scheduler.Ticks(), "Log copied to clipboard")
}

// Frame advances the scheduler by one frame. Returns true if a simulation
// tick ran.
func (s *Session) Frame(ctx context.Context) bool {
	result, ticked := s.scheduler.Frame(ctx, s.world.Store)
	if !ticked {
		return false
	}
	for _, a := range result.Arrivals {
		s.log.Addf(s.scheduler.Ticks(), "%s arrived at %d:%d", s.world.NameOf(a.ID), a.Pos.X, a.Pos.Y)
	}
	return true
}

// View returns a snapshot for the renderer.
func (s *Session) View() view.View {
	store := s.world.Store
	v := view.View{
		Menu:     s.menu,
		Selected: -1,
		Map:      s.world.Map,
		Log:      s.log.Lines(),
		Tick:     s.scheduler.Ticks(),
	}

	for _, id := range store.Entities() {
		pos, ok := store.Position(id)
		if !ok {
			continue
		}
		r, _ := store.Renderable(id)
		e := view.Entity{
			ID:         id,
			Name:       s.world.NameOf(id),
			Pos:        pos,
			Renderable: r,
		}
		if u, ok := store.Unit(id); ok {
			e.Mission = entity.Describe(u.Mission)
			v.Units = append(v.Units, e)
		} else {
			v.Props = append(v.Props, e)
		}
	}

	if len(v.Units) > 0 {
		v.Selected = s.cursor.Selected(store.UnitCount())
	}
	return v
}
