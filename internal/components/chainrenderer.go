package components

import (
	"charms/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("ChainRenderer", func() engine.Serializable { return NewChainRenderer() })
}

// ChainRenderer draws the chain of the CharmBody on the same object: an
// anchor pin, segments between consecutive points and a dot per link.
// CharmBody calls DrawChain before painting the body.
type ChainRenderer struct {
	engine.BaseComponent

	LinkRadius float32
	Thickness  float32

	// Targets are objects that follow individual links, e.g. a bead
	// threaded on the chain. Targets that are missing from the scene or
	// point past the last link are skipped.
	Targets []LinkTarget

	points []rl.Vector2
}

// LinkTarget pins an object to chain link Link.
type LinkTarget struct {
	Link   int
	Object engine.GameObjectRef
}

func NewChainRenderer() *ChainRenderer {
	return &ChainRenderer{LinkRadius: 3, Thickness: 2}
}

// Attach makes g follow link i, replacing any earlier target of that link.
// Passing nil detaches.
func (c *ChainRenderer) Attach(i int, g *engine.GameObject) {
	if i < 0 {
		return
	}
	for k := range c.Targets {
		if c.Targets[k].Link == i {
			c.Targets = append(c.Targets[:k], c.Targets[k+1:]...)
			break
		}
	}
	if g == nil {
		return
	}
	t := LinkTarget{Link: i}
	t.Object.Set(g)
	c.Targets = append(c.Targets, t)
}

// Start places targets before the first frame is drawn.
func (c *ChainRenderer) Start() { c.follow() }

// Update moves attached targets onto their links. It runs after CharmBody
// when added after it, so targets see this frame's chain.
func (c *ChainRenderer) Update(deltaTime float32) { c.follow() }

func (c *ChainRenderer) follow() {
	g := c.GetGameObject()
	if g == nil || len(c.Targets) == 0 {
		return
	}
	body := engine.GetComponent[*CharmBody](g)
	if body == nil || body.Charm() == nil {
		return
	}
	links := body.Charm().Links()
	for _, t := range c.Targets {
		target := t.Object.Get(g.Scene)
		if target == nil || t.Link < 0 || t.Link >= len(links) {
			continue
		}
		target.Transform.Position = links[t.Link]
	}
}

// Points returns the anchor followed by the current link positions. The
// slice is reused between calls.
func (c *ChainRenderer) Points() []rl.Vector2 {
	body := engine.GetComponent[*CharmBody](c.GetGameObject())
	if body == nil || body.Charm() == nil {
		return nil
	}
	charm := body.Charm()
	c.points = append(c.points[:0], charm.Config().Anchor)
	c.points = append(c.points, charm.Links()...)
	return c.points
}

func (c *ChainRenderer) DrawChain() {
	pts := c.Points()
	if len(pts) == 0 {
		return
	}
	body := engine.GetComponent[*CharmBody](c.GetGameObject())
	color := colorOr(body.Charm().Config().ChainColor, rl.DarkGray)

	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(pts[i-1], pts[i], c.Thickness, color)
	}
	rl.DrawCircleV(pts[0], c.LinkRadius*1.5, color)
	for _, p := range pts[1:] {
		rl.DrawCircleV(p, c.LinkRadius, color)
	}
}

func (c *ChainRenderer) TypeName() string { return "ChainRenderer" }

func (c *ChainRenderer) Serialize() map[string]any {
	data := map[string]any{
		"linkRadius": c.LinkRadius,
		"thickness":  c.Thickness,
	}
	if len(c.Targets) > 0 {
		attach := make([]any, 0, len(c.Targets))
		for _, t := range c.Targets {
			attach = append(attach, map[string]any{
				"link": float64(t.Link),
				"uid":  float64(t.Object.UID),
			})
		}
		data["attach"] = attach
	}
	return data
}

func (c *ChainRenderer) Deserialize(data map[string]any) {
	c.LinkRadius = getFloat(data, "linkRadius", c.LinkRadius)
	c.Thickness = getFloat(data, "thickness", c.Thickness)

	list, _ := data["attach"].([]any)
	c.Targets = c.Targets[:0]
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ref := engine.RefFromData(m, "uid")
		link := getInt(m, "link", -1)
		if !ref.IsValid() || link < 0 {
			continue
		}
		c.Targets = append(c.Targets, LinkTarget{Link: link, Object: ref})
	}
}
