package components

import (
	"math"

	"charms/internal/engine"

	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Bobber", func() engine.Serializable { return NewBobber() })
}

// Bobber is the simple charm variant: a square that floats up Amplitude px
// and back with sine easing, once per Period. No physics, no chain.
type Bobber struct {
	engine.BaseComponent

	Size      float32
	Color     string
	Amplitude float32 // px
	Period    float32 // seconds per full up-and-down loop

	base    rl.Vector2
	elapsed float32
	color   rl.Color
}

func NewBobber() *Bobber {
	return &Bobber{
		Size:      48,
		Color:     "#FF6B9D",
		Amplitude: 10,
		Period:    2,
	}
}

func (b *Bobber) Start() {
	b.color = colorOr(b.Color, rl.Pink)
	if g := b.GetGameObject(); g != nil {
		b.base = g.Transform.Position
	}
}

func (b *Bobber) Update(deltaTime float32) {
	if b.Period <= 0 {
		return
	}
	b.elapsed = float32(math.Mod(float64(b.elapsed+deltaTime), float64(b.Period)))
	if g := b.GetGameObject(); g != nil {
		g.Transform.Position.Y = b.base.Y + b.Offset(b.elapsed)
	}
}

// Offset is the vertical displacement at time t into the loop. Negative is up.
func (b *Bobber) Offset(t float32) float32 {
	half := b.Period / 2
	if t < half {
		return easings.SineInOut(t, 0, -b.Amplitude, half)
	}
	return easings.SineInOut(t-half, -b.Amplitude, b.Amplitude, half)
}

func (b *Bobber) Draw() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	p := g.WorldPosition()
	rl.DrawRectangleV(
		rl.Vector2{X: p.X - b.Size/2, Y: p.Y - b.Size/2},
		rl.Vector2{X: b.Size, Y: b.Size},
		b.color,
	)
}

func (b *Bobber) TypeName() string { return "Bobber" }

func (b *Bobber) Serialize() map[string]any {
	return map[string]any{
		"size":      b.Size,
		"color":     b.Color,
		"amplitude": b.Amplitude,
		"period":    b.Period,
	}
}

func (b *Bobber) Deserialize(data map[string]any) {
	b.Size = getFloat(data, "size", b.Size)
	b.Color = getString(data, "color", b.Color)
	b.Amplitude = getFloat(data, "amplitude", b.Amplitude)
	b.Period = getFloat(data, "period", b.Period)
}
