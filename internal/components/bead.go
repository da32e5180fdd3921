package components

import (
	"charms/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Bead", func() engine.Serializable { return NewBead() })
}

// Bead is a decoration threaded on a chain. It has no motion of its own;
// a ChainRenderer attach entry moves it onto a link every frame.
type Bead struct {
	engine.BaseComponent

	Radius float32
	Color  string

	color rl.Color
}

func NewBead() *Bead {
	return &Bead{Radius: 6, Color: "Gold"}
}

func (b *Bead) Start() {
	b.color = colorOr(b.Color, rl.Gold)
}

func (b *Bead) Draw() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	p := g.WorldPosition()
	rl.DrawCircleV(p, b.Radius, b.color)
	rl.DrawCircleLines(int32(p.X), int32(p.Y), b.Radius, rl.Fade(rl.Black, 0.3))
}

func (b *Bead) TypeName() string { return "Bead" }

func (b *Bead) Serialize() map[string]any {
	return map[string]any{
		"radius": b.Radius,
		"color":  b.Color,
	}
}

func (b *Bead) Deserialize(data map[string]any) {
	b.Radius = getFloat(data, "radius", b.Radius)
	b.Color = getString(data, "color", b.Color)
}
