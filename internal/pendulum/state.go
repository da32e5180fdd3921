// Package pendulum simulates charms hanging from an anchor on a string:
// free swing under gravity and scroll force, a soft string constraint,
// chain link placement and pointer drag.
package pendulum

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidConfig = errors.New("invalid charm config")
	ErrUnknownPreset = errors.New("unknown size preset")
)

// State is the mutable physical state of one charm.
type State struct {
	Center   rl.Vector2 // body geometric center, px
	Velocity rl.Vector2 // px per frame
	Rotation float32    // degrees about Center, clockwise
}

// StringConfig describes the string the body hangs from.
type StringConfig struct {
	Length     float32 // rest length, px
	Elasticity float32 // fraction of overstretch kept per frame, 0..1
	Links      int     // visual chain links
}

// Tuning holds the physics constants shared by the integrator and the drag controller.
type Tuning struct {
	Gravity        float32 // px/frame² added to vertical velocity
	Friction       float32 // per-frame velocity multiplier, (0,1]
	RotationEase   float32 // fraction of the way toward the hanging angle per frame
	FrameRate      float32 // release velocity divisor (px/s -> px/frame)
	HookGrabRadius float32 // px around the hook that counts as a hook grab

	// Slack budget used by DragAnchorPointer.
	SlackAllowance float32 // fraction of the budget added to the max length
	SlackDecay     float32 // budget multiplier per taut frame
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:        0.6,
		Friction:       0.99,
		RotationEase:   0.1,
		FrameRate:      60,
		HookGrabRadius: 20,
		SlackAllowance: 0.5,
		SlackDecay:     0.95,
	}
}

const (
	DefaultBodyColor  = "#E8E5DC"
	DefaultChainColor = "#333"
)

// Config is everything a charm needs at construction.
type Config struct {
	Width   float32
	Height  float32
	Anchor  rl.Vector2
	String  StringConfig
	Overlap float32 // chain end pulled into the body, px

	Variant ChainVariant
	Drag    DragStrategy

	// Opaque to the simulation; carried for the presentation layer.
	BodyColor  string
	ChainColor string

	Tuning Tuning
	Scroll ScrollForce
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: body size %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.String.Length <= 0:
		return fmt.Errorf("%w: string length %g", ErrInvalidConfig, c.String.Length)
	case c.String.Elasticity < 0 || c.String.Elasticity > 1:
		return fmt.Errorf("%w: elasticity %g outside [0,1]", ErrInvalidConfig, c.String.Elasticity)
	case c.String.Links < c.Variant.MinLinks():
		return fmt.Errorf("%w: %d links, %s chain needs at least %d", ErrInvalidConfig, c.String.Links, c.Variant, c.Variant.MinLinks())
	case c.Tuning.Friction <= 0 || c.Tuning.Friction > 1:
		return fmt.Errorf("%w: friction %g outside (0,1]", ErrInvalidConfig, c.Tuning.Friction)
	case c.Tuning.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %g", ErrInvalidConfig, c.Tuning.FrameRate)
	case c.Scroll.MaxForce < 0:
		return fmt.Errorf("%w: negative max scroll force", ErrInvalidConfig)
	}
	return nil
}

// RestState is the body hanging straight down with the string exactly taut.
func (c Config) RestState() State {
	return State{
		Center: rl.Vector2{X: c.Anchor.X, Y: c.Anchor.Y + c.String.Length + c.Height/2},
	}
}
