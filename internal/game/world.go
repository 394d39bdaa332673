package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/necronix/internal/entity"
	"github.com/samdwyer/necronix/internal/gamedata"
	"github.com/samdwyer/necronix/internal/telemetry"
	"github.com/samdwyer/necronix/internal/world"
)

// World is the session's map and entity store.
type World struct {
	Map   *world.Map
	Store *entity.Store
}

// NewWorld generates the map, places props and spawns cfg.Units units.
func NewWorld(ctx context.Context, cfg Config, rng *rand.Rand, registry *gamedata.Registry) (*World, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.spawn")
	defer span.End()

	w := &World{
		Map:   world.NewMap(cfg.MapWidth, cfg.MapHeight),
		Store: entity.NewStore(),
	}
	w.Map.Generate(ctx, rng)

	props := 0
	for _, def := range registry.Props() {
		for i := 0; i < def.Count; i++ {
			if err := w.spawnProp(def, rng); err != nil {
				return nil, err
			}
			props++
		}
	}

	for i := 0; i < cfg.Units; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			return nil, fmt.Errorf("spawn unit %d: registry has no unit archetypes", i)
		}
		w.spawnUnit(def, registry.RandomName(rng), rng)
	}

	span.SetAttributes(
		attribute.Int("world.units", cfg.Units),
		attribute.Int("world.props", props),
	)
	return w, nil
}

func (w *World) spawnProp(def gamedata.PropDef, rng *rand.Rand) error {
	color, err := gamedata.ParseHexColor(def.Color)
	if err != nil {
		return fmt.Errorf("prop %s: %w", def.ID, err)
	}
	r, g, b := color.RGB255()

	x, y := w.Map.RandomFloor(rng)
	id := w.Store.Create()
	w.Store.SetPosition(id, entity.Position{X: x, Y: y})
	w.Store.SetRenderable(id, entity.Renderable{
		Glyph: def.GlyphIndex(),
		Color: entity.RGB{R: r, G: g, B: b},
	})
	w.Store.SetName(id, entity.Name{Name: def.Name})
	w.Store.SetMaterial(id, entity.Material{Kind: def.Material, Choppable: def.Choppable})
	w.Store.SetPhysical(id, entity.Physical{Weight: def.Weight, Size: def.Size})
	if def.Blocks {
		w.Store.SetBlocksTile(id)
	}
	return nil
}

func (w *World) spawnUnit(def *gamedata.UnitDef, name string, rng *rand.Rand) entity.ID {
	r, g, b := gamedata.RandomUnitColor(rng.Float64() * 360).RGB255()

	x, y := w.Map.RandomPoint(rng)
	id := w.Store.Create()
	w.Store.SetPosition(id, entity.Position{X: x, Y: y})
	w.Store.SetRenderable(id, entity.Renderable{
		Glyph: def.GlyphIndex(),
		Color: entity.RGB{R: r, G: g, B: b},
	})
	w.Store.SetName(id, entity.Name{Name: name})
	w.Store.SetLiving(id, entity.Living{Health: def.HP, MaxHealth: def.HP})
	w.Store.SetPhysical(id, entity.Physical{Weight: def.Weight, Size: def.Size})
	w.Store.SetUnit(id, entity.Unit{Mission: w.randomMission(rng)})
	return id
}

// randomMission picks Stay, GoTo somewhere on the map, or Chop a choppable prop.
func (w *World) randomMission(rng *rand.Rand) entity.Mission {
	switch rng.Intn(3) {
	case 1:
		x, y := w.Map.RandomPoint(rng)
		return entity.GoTo{X: x, Y: y}
	case 2:
		targets := w.Store.Choppable()
		if len(targets) == 0 {
			return entity.Stay{}
		}
		return entity.Chop{Target: targets[rng.Intn(len(targets))]}
	default:
		return entity.Stay{}
	}
}

// NameOf returns the entity's name, or "#id" if it has none.
func (w *World) NameOf(id entity.ID) string {
	if n, ok := w.Store.Name(id); ok && n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("#%d", id)
}
