package world

import (
	"charms/internal/components"
	"charms/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a scene in 2D screen space. Callers own BeginDrawing and
// EndDrawing.
type Renderer struct {
	// ShowHooks marks each charm's anchor and physical hook.
	ShowHooks bool
	HookColor rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{HookColor: rl.Red}
}

func (r *Renderer) Draw(scene *engine.Scene, background rl.Color) {
	rl.ClearBackground(background)
	scene.Draw()
	if r.ShowHooks {
		r.drawHooks(scene)
	}
}

func (r *Renderer) drawHooks(scene *engine.Scene) {
	for _, g := range scene.GameObjects {
		body := engine.GetComponent[*components.CharmBody](g)
		if body == nil || body.Charm() == nil {
			continue
		}
		charm := body.Charm()
		anchor := charm.Config().Anchor
		hook := charm.Hook()
		rl.DrawLineV(anchor, hook, rl.Fade(r.HookColor, 0.4))
		rl.DrawCircleLines(int32(hook.X), int32(hook.Y), 4, r.HookColor)
	}
}
