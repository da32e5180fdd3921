package pendulum

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SizePreset is a named body/string size.
type SizePreset struct {
	Width        float32
	Height       float32
	StringLength float32
	ChainLinks   int
	Overlap      float32
}

var presets = map[string]SizePreset{
	"small":  {Width: 55, Height: 95, StringLength: 70, ChainLinks: 10, Overlap: 20},
	"medium": {Width: 85, Height: 145, StringLength: 110, ChainLinks: 16, Overlap: 30},
	"large":  {Width: 120, Height: 205, StringLength: 160, ChainLinks: 22, Overlap: 42},
}

const DefaultPreset = "medium"

// Preset looks up a size preset by name.
func Preset(name string) (SizePreset, error) {
	p, ok := presets[name]
	if !ok {
		return SizePreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config builds a default charm config of this size hanging from anchor.
func (p SizePreset) Config(anchor rl.Vector2) Config {
	return Config{
		Width:  p.Width,
		Height: p.Height,
		Anchor: anchor,
		String: StringConfig{
			Length:     p.StringLength,
			Elasticity: 0.1,
			Links:      p.ChainLinks,
		},
		Overlap:    p.Overlap,
		Variant:    ChainInclusive,
		Drag:       DragAnchorPointer,
		BodyColor:  DefaultBodyColor,
		ChainColor: DefaultChainColor,
		Tuning:     DefaultTuning(),
		Scroll:     DefaultScrollForce(),
	}
}
