package components

import (
	"charms/internal/engine"

	opensimplex "github.com/ojrac/opensimplex-go"
)

func init() {
	engine.RegisterComponent("WindGust", func() engine.Serializable { return NewWindGust(1, 0.3, 0.4) })
}

// WindGust is an ambient horizontal breeze. Charms reference the object
// carrying it and add Force to their external force each step.
type WindGust struct {
	engine.BaseComponent

	Seed      int64
	Strength  float32 // peak force, px/frame²
	Frequency float32 // noise units per second

	noise   opensimplex.Noise
	elapsed float64
}

func NewWindGust(seed int64, strength, frequency float32) *WindGust {
	return &WindGust{
		Seed:      seed,
		Strength:  strength,
		Frequency: frequency,
		noise:     opensimplex.NewNormalized(seed),
	}
}

func (w *WindGust) Update(deltaTime float32) {
	w.elapsed += float64(deltaTime)
}

// Force samples the breeze at the current time, in [-Strength, Strength].
func (w *WindGust) Force() float32 {
	if w.noise == nil {
		w.noise = opensimplex.NewNormalized(w.Seed)
	}
	n := w.noise.Eval2(w.elapsed*float64(w.Frequency), 0)
	return w.Strength * float32(n*2-1)
}

func (w *WindGust) TypeName() string { return "WindGust" }

func (w *WindGust) Serialize() map[string]any {
	return map[string]any{
		"seed":      float64(w.Seed),
		"strength":  w.Strength,
		"frequency": w.Frequency,
	}
}

func (w *WindGust) Deserialize(data map[string]any) {
	w.Seed = int64(getInt(data, "seed", int(w.Seed)))
	w.Strength = getFloat(data, "strength", w.Strength)
	w.Frequency = getFloat(data, "frequency", w.Frequency)
	w.noise = opensimplex.NewNormalized(w.Seed)
}
