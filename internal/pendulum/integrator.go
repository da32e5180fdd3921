package pendulum

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Step advances s by one frame of free motion: gravity, horizontal force,
// friction, the soft string constraint and rotational settling toward the
// string direction. It does not modify s.
func Step(s State, anchor rl.Vector2, height float32, str StringConfig, tun Tuning, force float32) State {
	vel := s.Velocity
	vel.Y += tun.Gravity
	vel.X += force
	vel = rl.Vector2Scale(vel, tun.Friction)

	next := rl.Vector2Add(s.Center, vel)
	rot := s.Rotation

	hook := HookPosition(next, rot, height)
	if hook == anchor {
		// Direction undefined: no constraint, no rotation this frame.
		return State{Center: next, Velocity: vel, Rotation: rot}
	}

	next, normal, stretched := resolveString(next, hook, anchor, str.Length, str.Elasticity)
	if stretched {
		// Cancel only the outward radial component so tangential motion swings.
		if radial := rl.Vector2DotProduct(vel, normal); radial > 0 {
			vel = rl.Vector2Subtract(vel, rl.Vector2Scale(normal, radial))
		}
	}

	if target, ok := HangingRotation(anchor, next); ok {
		rot += ShortestAngle(rot, target) * tun.RotationEase
	}

	return State{Center: next, Velocity: vel, Rotation: rot}
}
