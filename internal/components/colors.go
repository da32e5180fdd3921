package components

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Orange":    rl.Orange,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Beige":     rl.Beige,
	"Gold":      rl.Gold,
}

// ParseColor accepts a raylib color name or a CSS-style hex color, #RGB or
// #RRGGBB. Hex colors are opaque.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rl.Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255), nil
}

// ColorHex formats c as #rrggbb, dropping alpha.
func ColorHex(c rl.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// colorOr parses s and falls back on error.
func colorOr(s string, fallback rl.Color) rl.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
