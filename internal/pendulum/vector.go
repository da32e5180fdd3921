package pendulum

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HookPosition returns the top-center point of a body of the given height
// centered at center and rotated rotationDeg degrees (clockwise, screen space).
func HookPosition(center rl.Vector2, rotationDeg, height float32) rl.Vector2 {
	return rl.Vector2Add(center, LocalToWorld(HookLocal(height), rotationDeg))
}

// HookLocal is the hook point in body-local coordinates.
func HookLocal(height float32) rl.Vector2 {
	return rl.Vector2{X: 0, Y: -height / 2}
}

// CenterFromHook is the inverse of HookPosition.
func CenterFromHook(hook rl.Vector2, rotationDeg, height float32) rl.Vector2 {
	return rl.Vector2Subtract(hook, LocalToWorld(HookLocal(height), rotationDeg))
}

// LocalToWorld rotates a body-local offset into world space.
func LocalToWorld(local rl.Vector2, rotationDeg float32) rl.Vector2 {
	return rl.Vector2Rotate(local, rotationDeg*rl.Deg2rad)
}

// WorldToLocal rotates a world-space offset into body-local space.
func WorldToLocal(offset rl.Vector2, rotationDeg float32) rl.Vector2 {
	return rl.Vector2Rotate(offset, -rotationDeg*rl.Deg2rad)
}

// AngleDeg returns atan2(v.Y, v.X) in degrees.
func AngleDeg(v rl.Vector2) float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X))) * rl.Rad2deg
}

// HangingRotation returns the rotation that lines the body's long axis up
// with the direction from anchor to p. ok is false when p == anchor.
func HangingRotation(anchor, p rl.Vector2) (rotationDeg float32, ok bool) {
	d := rl.Vector2Subtract(p, anchor)
	if d.X == 0 && d.Y == 0 {
		return 0, false
	}
	return AngleDeg(d) - 90, true
}

// ShortestAngle returns to-from wrapped into (-180, 180].
func ShortestAngle(from, to float32) float32 {
	d := math.Mod(float64(to-from), 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return float32(d)
}

// resolveString rigidly translates center so that hook ends up at most
// length + overstretch*give from anchor. normal is the unit vector from
// anchor to the uncorrected hook; stretched reports whether a correction
// was applied. A zero-length anchor->hook vector is never corrected.
func resolveString(center, hook, anchor rl.Vector2, length, give float32) (next, normal rl.Vector2, stretched bool) {
	d := rl.Vector2Subtract(hook, anchor)
	dist := rl.Vector2Length(d)
	if dist == 0 || dist <= length {
		return center, rl.Vector2{}, false
	}

	normal = rl.Vector2Scale(d, 1/dist)
	target := length + (dist-length)*give
	constrained := rl.Vector2Add(anchor, rl.Vector2Scale(normal, target))
	return rl.Vector2Add(center, rl.Vector2Subtract(constrained, hook)), normal, true
}
