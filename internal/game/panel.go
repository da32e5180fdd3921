package game

import (
	"fmt"

	"charms/internal/components"
	"charms/internal/pendulum"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxUndoStack = 50

// tuningSnapshot is everything the panel edits.
type tuningSnapshot struct {
	Tuning     pendulum.Tuning
	Elasticity float32
	Scroll     pendulum.ScrollForce
}

// TuningPanel edits the shared physics constants live. Charms keep their
// scene values until the first edit, which then applies to every charm.
// Ctrl+Z walks back through earlier values.
type TuningPanel struct {
	Visible   bool
	Bounds    rl.Rectangle
	ShowHooks bool

	current   tuningSnapshot
	editing   bool
	undoStack []tuningSnapshot
}

func NewTuningPanel() *TuningPanel {
	return &TuningPanel{
		Visible: true,
		Bounds:  rl.Rectangle{X: 10, Y: 80, Width: 280, Height: 200},
		current: tuningSnapshot{
			Tuning:     pendulum.DefaultTuning(),
			Elasticity: 0.1,
			Scroll:     pendulum.DefaultScrollForce(),
		},
	}
}

func (p *TuningPanel) Tuning() pendulum.Tuning      { return p.current.Tuning }
func (p *TuningPanel) Elasticity() float32          { return p.current.Elasticity }
func (p *TuningPanel) Scroll() pendulum.ScrollForce { return p.current.Scroll }

func (p *TuningPanel) Contains(pos rl.Vector2) bool {
	return p.Visible && rl.CheckCollisionPointRec(pos, p.Bounds)
}

// Edited reports whether the values differ from where the panel started,
// as far as the undo history knows.
func (p *TuningPanel) Edited() bool { return len(p.undoStack) > 0 }

// Apply pushes the current values into every charm.
func (p *TuningPanel) Apply(bodies []*components.CharmBody) {
	for _, b := range bodies {
		c := b.Charm()
		if c == nil {
			continue
		}
		c.SetTuning(p.current.Tuning)
		c.SetElasticity(p.current.Elasticity)
		c.SetScroll(p.current.Scroll)
	}
}

// commit records next as the current values. The first change of a slider
// drag saves the previous values for undo; the drag ends when the mouse is
// released. It reports whether anything changed.
func (p *TuningPanel) commit(next tuningSnapshot, mouseDown bool) bool {
	changed := next != p.current
	if changed {
		if !p.editing {
			p.pushUndo()
		}
		p.current = next
		p.editing = mouseDown
	}
	if !mouseDown {
		p.editing = false
	}
	return changed
}

func (p *TuningPanel) pushUndo() {
	if len(p.undoStack) >= maxUndoStack {
		p.undoStack = p.undoStack[1:]
	}
	p.undoStack = append(p.undoStack, p.current)
}

// Undo restores the values from before the last edit.
func (p *TuningPanel) Undo() bool {
	if len(p.undoStack) == 0 {
		return false
	}
	p.current = p.undoStack[len(p.undoStack)-1]
	p.undoStack = p.undoStack[:len(p.undoStack)-1]
	p.editing = false
	return true
}

// Draw shows the sliders and returns true when a value changed this frame.
func (p *TuningPanel) Draw() bool {
	if !p.Visible {
		return false
	}
	gui.Panel(p.Bounds, "Tuning")

	x := p.Bounds.X + 90
	y := p.Bounds.Y + 34
	w := p.Bounds.Width - 140
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: w, Height: 18}
		y += 26
		return r
	}

	next := p.current
	next.Tuning.Gravity = gui.Slider(row(), "Gravity", fmt.Sprintf("%.2f", next.Tuning.Gravity), next.Tuning.Gravity, 0, 2)
	next.Tuning.Friction = gui.Slider(row(), "Friction", fmt.Sprintf("%.3f", next.Tuning.Friction), next.Tuning.Friction, 0.9, 1)
	next.Elasticity = gui.Slider(row(), "Elasticity", fmt.Sprintf("%.2f", next.Elasticity), next.Elasticity, 0, 1)
	next.Scroll.Sensitivity = gui.Slider(row(), "Scroll", fmt.Sprintf("%.4f", next.Scroll.Sensitivity), next.Scroll.Sensitivity, 0, 0.001)
	next.Scroll.MaxForce = gui.Slider(row(), "Max force", fmt.Sprintf("%.1f", next.Scroll.MaxForce), next.Scroll.MaxForce, 0, 5)
	p.ShowHooks = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Show hooks", p.ShowHooks)

	return p.commit(next, rl.IsMouseButtonDown(rl.MouseButtonLeft))
}
