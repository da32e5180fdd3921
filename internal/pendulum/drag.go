package pendulum

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DragStrategy selects how a body grab turns pointer motion into rotation.
type DragStrategy int

const (
	// DragAnchorPointer rotates the body to hang along the anchor->body
	// direction. Overstretch is bounded by a slack budget captured at grab
	// start that decays while the string is taut.
	DragAnchorPointer DragStrategy = iota
	// DragBodyOffset rotates by the anchor->pointer direction plus a
	// correction captured at grab start, so the grab never snaps rotation.
	// The string is held rigidly at its rest length.
	DragBodyOffset
)

func (s DragStrategy) String() string {
	switch s {
	case DragAnchorPointer:
		return "anchor-pointer"
	case DragBodyOffset:
		return "body-offset"
	}
	return fmt.Sprintf("DragStrategy(%d)", int(s))
}

// ParseDragStrategy is the inverse of String.
func ParseDragStrategy(s string) (DragStrategy, error) {
	switch s {
	case "anchor-pointer", "":
		return DragAnchorPointer, nil
	case "body-offset":
		return DragBodyOffset, nil
	}
	return 0, fmt.Errorf("%w: drag strategy %q", ErrInvalidConfig, s)
}

type DragPhase int

const (
	Idle DragPhase = iota
	Dragging
)

func (p DragPhase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragSession lives from grab start to grab release.
type DragSession struct {
	LocalOffset        rl.Vector2 // grab point relative to the body center, body space
	HookGrab           bool       // grabbed within the hook radius; rotation is frozen
	RotationCorrection float32    // DragBodyOffset only, fixed for the session
	SlackBudget        float32    // DragAnchorPointer only, decays while taut
}

// DragController is the Idle/Dragging state machine. The zero value is Idle.
type DragController struct {
	session *DragSession
}

func (d *DragController) Phase() DragPhase {
	if d.session == nil {
		return Idle
	}
	return Dragging
}

// Session returns a copy of the active session.
func (d *DragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// Start begins a drag at pointer. Velocity is zeroed; position and rotation
// are left untouched. It is a no-op while already dragging.
func (d *DragController) Start(s State, pointer rl.Vector2, cfg Config) (State, bool) {
	if d.session != nil {
		return s, false
	}

	offset := WorldToLocal(rl.Vector2Subtract(pointer, s.Center), s.Rotation)
	sess := &DragSession{
		LocalOffset: offset,
		HookGrab:    rl.Vector2Distance(offset, HookLocal(cfg.Height)) < cfg.Tuning.HookGrabRadius,
	}

	switch cfg.Drag {
	case DragBodyOffset:
		if !sess.HookGrab {
			if grabRot, ok := HangingRotation(cfg.Anchor, pointer); ok {
				sess.RotationCorrection = s.Rotation - grabRot
			}
		}
	case DragAnchorPointer:
		hook := HookPosition(s.Center, s.Rotation, cfg.Height)
		sess.SlackBudget = Slack(cfg.Anchor, hook, cfg.String.Length)
	}

	d.session = sess
	s.Velocity = rl.Vector2{}
	return s, true
}

// Move places the body under pointer. It returns false with s unchanged
// when no drag is active.
func (d *DragController) Move(s State, pointer rl.Vector2, cfg Config) (State, bool) {
	sess := d.session
	if sess == nil {
		return s, false
	}

	rot := s.Rotation
	if !sess.HookGrab {
		switch cfg.Drag {
		case DragBodyOffset:
			if grabRot, ok := HangingRotation(cfg.Anchor, pointer); ok {
				rot = grabRot + sess.RotationCorrection
			}
		case DragAnchorPointer:
			provisional := rl.Vector2Subtract(pointer, LocalToWorld(sess.LocalOffset, s.Rotation))
			if r, ok := HangingRotation(cfg.Anchor, provisional); ok {
				rot = r
			}
		}
	}

	center := rl.Vector2Subtract(pointer, LocalToWorld(sess.LocalOffset, rot))
	hook := HookPosition(center, rot, cfg.Height)

	maxLength := cfg.String.Length
	if cfg.Drag == DragAnchorPointer {
		maxLength += sess.SlackBudget * cfg.Tuning.SlackAllowance
	}
	center, _, stretched := resolveString(center, hook, cfg.Anchor, maxLength, 0)
	if stretched && cfg.Drag == DragAnchorPointer {
		sess.SlackBudget *= cfg.Tuning.SlackDecay
	}

	return State{Center: center, Rotation: rot}, true
}

// Release ends the drag, converting the gesture velocity (px/s) into the
// per-frame velocity free motion resumes from. It returns false with s
// unchanged when no drag is active.
func (d *DragController) Release(s State, velocity rl.Vector2, cfg Config) (State, bool) {
	if d.session == nil {
		return s, false
	}
	d.session = nil
	s.Velocity = rl.Vector2Scale(velocity, 1/cfg.Tuning.FrameRate)
	return s, true
}
