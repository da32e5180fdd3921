package pendulum

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Charm is one simulated charm: its state, drag session and chain links.
// A Charm is not safe for concurrent use; callers apply input between frames.
type Charm struct {
	cfg   Config
	state State
	drag  DragController
	links []rl.Vector2
}

// New validates cfg and returns a charm resting at cfg.RestState.
func New(cfg Config) (*Charm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Charm{
		cfg:   cfg,
		state: cfg.RestState(),
		links: make([]rl.Vector2, cfg.String.Links),
	}
	c.Render()
	return c, nil
}

func (c *Charm) Config() Config   { return c.cfg }
func (c *Charm) State() State     { return c.state }
func (c *Charm) Phase() DragPhase { return c.drag.Phase() }
func (c *Charm) Dragging() bool   { return c.drag.Phase() == Dragging }

// SetState replaces the physical state, e.g. when restoring a scene.
func (c *Charm) SetState(s State) {
	c.state = s
	c.Render()
}

// SetTuning swaps the physics constants used from the next frame on.
func (c *Charm) SetTuning(t Tuning) { c.cfg.Tuning = t }

// SetElasticity changes the string's give from the next frame on.
func (c *Charm) SetElasticity(e float32) { c.cfg.String.Elasticity = rl.Clamp(e, 0, 1) }

// SetScroll swaps the scroll force adapter.
func (c *Charm) SetScroll(f ScrollForce) { c.cfg.Scroll = f }

// Hook returns the current hook position.
func (c *Charm) Hook() rl.Vector2 {
	return HookPosition(c.state.Center, c.state.Rotation, c.cfg.Height)
}

// Links returns the chain link positions from the last Render. The slice is
// reused by the next Render; copy it to keep it.
func (c *Charm) Links() []rl.Vector2 { return c.links }

// ScrollForce maps a scroll velocity sample through this charm's adapter.
func (c *Charm) ScrollForce(velocity float32) float32 { return c.cfg.Scroll.Force(velocity) }

// Contains reports whether world point p lies on the body rectangle.
func (c *Charm) Contains(p rl.Vector2) bool {
	local := WorldToLocal(rl.Vector2Subtract(p, c.state.Center), c.state.Rotation)
	return local.X >= -c.cfg.Width/2 && local.X <= c.cfg.Width/2 &&
		local.Y >= -c.cfg.Height/2 && local.Y <= c.cfg.Height/2
}

// Step advances physics by one frame unless a drag owns the body.
// The whole state is read first and committed at once.
func (c *Charm) Step(force float32) {
	if c.Dragging() {
		return
	}
	c.state = Step(c.state, c.cfg.Anchor, c.cfg.Height, c.cfg.String, c.cfg.Tuning, force)
}

// Render regenerates chain links from the resolved hook.
func (c *Charm) Render() {
	c.links = ChainLinks(c.links, c.cfg.Anchor, c.Hook(), c.state.Rotation, ChainSpec{
		Variant: c.cfg.Variant,
		Links:   c.cfg.String.Links,
		Length:  c.cfg.String.Length,
		Overlap: c.cfg.Overlap,
	})
}

// Frame is one display frame: step then render.
func (c *Charm) Frame(force float32) {
	c.Step(force)
	c.Render()
}

// GrabStart begins a drag at world point p.
func (c *Charm) GrabStart(p rl.Vector2) bool {
	s, ok := c.drag.Start(c.state, p, c.cfg)
	c.state = s
	return ok
}

// GrabMove drags the body to world point p and re-renders the chain.
func (c *Charm) GrabMove(p rl.Vector2) bool {
	s, ok := c.drag.Move(c.state, p, c.cfg)
	if !ok {
		return false
	}
	c.state = s
	c.Render()
	return true
}

// GrabRelease ends the drag with the gesture velocity in px/s.
func (c *Charm) GrabRelease(velocity rl.Vector2) bool {
	s, ok := c.drag.Release(c.state, velocity, c.cfg)
	c.state = s
	return ok
}

// Session exposes the active drag session, if any.
func (c *Charm) Session() (DragSession, bool) { return c.drag.Session() }
