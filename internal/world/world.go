package world

import (
	"fmt"
	"log/slog"

	"charms/internal/components"
	"charms/internal/engine"
	"charms/internal/pendulum"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const CharmTag = "charm"

// World is the page: a scene of charms plus the shared scroll input.
type World struct {
	Scene      *engine.Scene
	Background rl.Color
	Renderer   *Renderer

	// OnGrab and OnRelease fire for every charm spawned or loaded into
	// the world.
	OnGrab    engine.EventWithArg[*components.CharmBody]
	OnRelease engine.EventWithArg[*components.CharmBody]
}

func New() *World {
	return &World{
		Scene:      engine.NewScene("Main"),
		Background: rl.RayWhite,
		Renderer:   NewRenderer(),
	}
}

// SpawnCharm adds a charm of the named size preset hanging from anchor,
// with a chain renderer.
func (w *World) SpawnCharm(preset string, anchor rl.Vector2) (*engine.GameObject, error) {
	p, err := pendulum.Preset(preset)
	if err != nil {
		return nil, fmt.Errorf("spawn charm: %w", err)
	}
	body, err := components.NewCharmBody(p.Config(anchor))
	if err != nil {
		return nil, fmt.Errorf("spawn charm: %w", err)
	}
	body.Preset = preset

	g := engine.NewGameObject(fmt.Sprintf("Charm %d", len(w.Charms())+1))
	g.Tags = []string{CharmTag}
	g.AddComponent(body)
	g.AddComponent(components.NewChainRenderer())
	w.Scene.AddGameObject(g)
	w.watch(body)
	return g, nil
}

// AddBead threads a new bead onto link of body's chain, replacing a bead
// already on that link.
func (w *World) AddBead(body *components.CharmBody, link int) (*engine.GameObject, error) {
	if body.Charm() == nil {
		return nil, fmt.Errorf("add bead: charm %s is disabled", body.ID)
	}
	chain := engine.GetComponent[*components.ChainRenderer](body.GetGameObject())
	if chain == nil {
		return nil, fmt.Errorf("add bead: charm %s has no chain", body.ID)
	}
	links := body.Charm().Links()
	if link < 0 || link >= len(links) {
		return nil, fmt.Errorf("add bead: link %d outside chain of %d", link, len(links))
	}
	for _, t := range chain.Targets {
		if t.Link != link {
			continue
		}
		if old := t.Object.Get(w.Scene); old != nil {
			w.Scene.RemoveGameObject(old)
		}
	}

	g := engine.NewGameObject("Bead")
	g.Transform.Position = links[link]
	g.AddComponent(components.NewBead())
	w.Scene.AddGameObject(g)
	chain.Attach(link, g)
	g.Start()
	return g, nil
}

// watch forwards a charm's grab events to the world.
func (w *World) watch(body *components.CharmBody) {
	body.OnGrab.AddListener(func(p rl.Vector2) {
		slog.Debug("charm grabbed", "id", body.ID, "at", p)
		w.OnGrab.Invoke(body)
	})
	body.OnRelease.AddListener(func(v rl.Vector2) {
		slog.Debug("charm released", "id", body.ID, "velocity", v)
		w.OnRelease.Invoke(body)
	})
}

// Charms returns every charm body in scene order.
func (w *World) Charms() []*components.CharmBody {
	var bodies []*components.CharmBody
	for _, g := range w.Scene.GameObjects {
		if b := engine.GetComponent[*components.CharmBody](g); b != nil {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

// BodyAt returns the topmost charm under p, or nil. Later objects draw on
// top, so the search runs back to front.
func (w *World) BodyAt(p rl.Vector2) *components.CharmBody {
	objs := w.Scene.GameObjects
	for i := len(objs) - 1; i >= 0; i-- {
		if !objs[i].Active {
			continue
		}
		if b := engine.GetComponent[*components.CharmBody](objs[i]); b != nil && b.Contains(p) {
			return b
		}
	}
	return nil
}

func (w *World) Start() {
	w.Scene.Start()
	slog.Info("world started", "objects", len(w.Scene.GameObjects), "charms", len(w.Charms()))
}

// Update feeds the page scroll velocity (px/s) to every charm and advances
// the scene by deltaTime seconds.
func (w *World) Update(deltaTime, scrollVelocity float32) {
	for _, b := range w.Charms() {
		b.ScrollVelocity = scrollVelocity
	}
	w.Scene.Update(deltaTime)
}

func (w *World) Draw() {
	w.Renderer.Draw(w.Scene, w.Background)
}
