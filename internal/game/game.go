// Package game provides the session state and the main frame loop.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/menu"
	"github.com/samdwyer/necronix/internal/telemetry"
	"github.com/samdwyer/necronix/internal/ui"
)

// Game binds a Session to a terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	logger   logr.Logger
}

// New creates a new game instance.
func New(ctx context.Context, cfg Config, logger logr.Logger) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	session, err := NewSession(ctx, cfg, logger)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	session.SetLogExporter(ui.CopyToClipboard)

	screen, err := ui.NewScreen()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("session.id", session.ID()),
		attribute.Int("map.width", cfg.MapWidth),
		attribute.Int("map.height", cfg.MapHeight),
		attribute.Int("world.units", session.World().Store.UnitCount()),
	)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		logger:   logger.WithValues("session", session.ID()),
	}, nil
}

// Run executes the main loop until the session ends. Each frame drains
// pending input, then runs the scheduler, then renders.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	done := make(chan struct{})
	defer close(done)
	events := g.pumpEvents(done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	for g.session.Running() {
		g.drainInput(ctx, events)
		if !g.session.Running() {
			break
		}

		g.session.Frame(ctx)
		g.renderer.Render(g.session.View())

		select {
		case <-ctx.Done():
			g.session.Quit()
		case <-ticker.C:
		}
	}

	g.logger.Info("game loop finished", "ticks", g.session.Ticks())
	return nil
}

// pumpEvents forwards terminal events to a channel so the frame loop never blocks on input.
func (g *Game) pumpEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// drainInput applies every event that arrived since the last frame.
func (g *Game) drainInput(ctx context.Context, events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			g.handleEvent(ctx, ev)
		default:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.session.Quit()
		return
	}

	cmd, ok := ui.Translate(g.session.Menu(), ev)
	if !ok {
		return
	}
	if cmd.Kind == menu.CmdReassign {
		cmd = menu.Reassign(g.session.ChooseDestination())
	}
	g.session.Apply(ctx, cmd)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
