package pendulum

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScrollForce maps page scroll velocity to a bounded horizontal force.
type ScrollForce struct {
	Sensitivity float32 // force per px/s of scroll velocity
	MaxForce    float32 // absolute clamp, px/frame²
}

func DefaultScrollForce() ScrollForce {
	return ScrollForce{Sensitivity: 0.0001, MaxForce: 2}
}

// Force returns clamp(velocity*Sensitivity, -MaxForce, MaxForce).
func (f ScrollForce) Force(velocity float32) float32 {
	return rl.Clamp(velocity*f.Sensitivity, -f.MaxForce, f.MaxForce)
}
