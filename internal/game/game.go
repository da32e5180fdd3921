package game

import (
	"fmt"
	"log/slog"

	"charms/internal/components"
	"charms/internal/engine"
	"charms/internal/input"
	"charms/internal/pendulum"
	"charms/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultScrollStep is how far one mouse wheel notch scrolls the page, px.
const DefaultScrollStep = 120

type Game struct {
	World     *world.World
	Panel     *TuningPanel
	ScenePath string

	Width, Height int32
	ScrollStep    float32

	pointer *input.Pointer
	scroll  input.ScrollTracker
	spawned int
}

func New(w *world.World, scenePath string) *Game {
	g := &Game{
		World:      w,
		Panel:      NewTuningPanel(),
		ScenePath:  scenePath,
		Width:      960,
		Height:     640,
		ScrollStep: DefaultScrollStep,
		pointer:    input.NewPointer(),
	}
	w.OnGrab.AddListener(func(*components.CharmBody) { rl.SetMouseCursor(rl.MouseCursorResizeAll) })
	w.OnRelease.AddListener(func(*components.CharmBody) { rl.SetMouseCursor(rl.MouseCursorDefault) })
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Width, g.Height, "Charms")
	defer rl.CloseWindow()

	// Physics velocities are per frame; the scheduler assumes 60 Hz.
	rl.SetTargetFPS(60)

	g.World.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	slog.Info("window closed")
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	now := rl.GetTime()

	g.handlePointer(now)
	g.pointer.Flush()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		// Wheel up scrolls the page up, i.e. toward smaller positions.
		g.scroll.Scroll(-wheel * g.ScrollStep)
	}
	scrollVelocity := g.scroll.Sample(now)

	g.World.Update(deltaTime, scrollVelocity)
	g.handleKeys()
}

func (g *Game) handlePointer(now float64) {
	pos := rl.GetMousePosition()
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if g.Panel.Contains(pos) {
			return
		}
		if body := g.World.BodyAt(pos); body != nil {
			g.pointer.Press(body, pos, now)
		}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		g.pointer.Release(pos, now)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		g.pointer.Move(pos, now)
	}
}

func (g *Game) handleKeys() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.Panel.ShowHooks = !g.Panel.ShowHooks
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.Panel.Visible = !g.Panel.Visible
	}
	if ctrl && rl.IsKeyPressed(rl.KeyZ) && g.Panel.Undo() {
		g.Panel.Apply(g.World.Charms())
	}
	if ctrl && rl.IsKeyPressed(rl.KeyS) && g.ScenePath != "" {
		if err := g.World.SaveScene(g.ScenePath); err != nil {
			slog.Error("save scene failed", "path", g.ScenePath, "error", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.spawnAtMouse()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.beadUnderMouse()
	}
}

// beadUnderMouse threads a bead onto the middle link of the charm under
// the cursor.
func (g *Game) beadUnderMouse() {
	body := g.World.BodyAt(rl.GetMousePosition())
	if body == nil {
		return
	}
	if _, err := g.World.AddBead(body, len(body.Charm().Links())/2); err != nil {
		slog.Error("add bead failed", "error", err)
	}
}

// spawnAtMouse hangs a new charm from the top edge above the cursor,
// cycling through the size presets.
func (g *Game) spawnAtMouse() {
	names := pendulum.PresetNames()
	preset := names[g.spawned%len(names)]
	g.spawned++

	anchor := rl.Vector2{X: rl.GetMousePosition().X, Y: 40}
	obj, err := g.World.SpawnCharm(preset, anchor)
	if err != nil {
		slog.Error("spawn failed", "preset", preset, "error", err)
		return
	}
	if g.Panel.Edited() {
		g.Panel.Apply([]*components.CharmBody{engine.GetComponent[*components.CharmBody](obj)})
	}
	obj.Start()
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	g.World.Renderer.ShowHooks = g.Panel.ShowHooks
	g.World.Draw()
	if g.Panel.Draw() {
		g.Panel.Apply(g.World.Charms())
	}
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Drag a charm and let go. Scroll to shake them.", 10, 10, 20, rl.DarkGray)
	rl.DrawText("N spawn, B bead, Tab panel, F1 hooks, Ctrl+S save, Ctrl+Z undo", 10, 35, 16, rl.Gray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	rl.DrawText(fmt.Sprintf("scroll %.0f px/s", g.scroll.Velocity()), 10, 56, 16, rl.Gray)
}
