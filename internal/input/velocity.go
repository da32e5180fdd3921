package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// VelocityWindow is how far back the tracker looks when estimating a
// gesture's release velocity, in seconds.
const VelocityWindow = 0.1

const maxSamples = 32

type sample struct {
	pos rl.Vector2
	t   float64
}

// VelocityTracker estimates pointer velocity (px/s) from recent samples.
type VelocityTracker struct {
	Window  float64
	samples []sample
}

func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{Window: VelocityWindow, samples: make([]sample, 0, maxSamples)}
}

// Add records the pointer at time t (seconds). Samples out of order are dropped.
func (v *VelocityTracker) Add(pos rl.Vector2, t float64) {
	if n := len(v.samples); n > 0 && t < v.samples[n-1].t {
		return
	}
	if len(v.samples) == maxSamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:maxSamples-1]
	}
	v.samples = append(v.samples, sample{pos: pos, t: t})
}

// Velocity returns the average velocity over the samples inside the window
// ending at the latest sample. Fewer than two usable samples give zero.
func (v *VelocityTracker) Velocity() rl.Vector2 {
	n := len(v.samples)
	if n < 2 {
		return rl.Vector2{}
	}
	last := v.samples[n-1]
	first := last
	for i := n - 2; i >= 0; i-- {
		if last.t-v.samples[i].t > v.Window {
			break
		}
		first = v.samples[i]
	}
	dt := float32(last.t - first.t)
	if dt <= 0 {
		return rl.Vector2{}
	}
	return rl.Vector2Scale(rl.Vector2Subtract(last.pos, first.pos), 1/dt)
}

func (v *VelocityTracker) Reset() { v.samples = v.samples[:0] }

// ScrollTracker turns scroll position samples into a scroll velocity (px/s).
type ScrollTracker struct {
	position float32
	lastPos  float32
	lastT    float64
	velocity float32
	primed   bool
}

// Scroll moves the tracked position by delta px.
func (s *ScrollTracker) Scroll(delta float32) { s.position += delta }

// Position is the accumulated scroll position.
func (s *ScrollTracker) Position() float32 { return s.position }

// Sample records the current position at time t and returns the velocity
// since the previous sample.
func (s *ScrollTracker) Sample(t float64) float32 {
	return s.Observe(s.position, t)
}

// Observe records an externally supplied position at time t and returns
// the velocity since the previous observation.
func (s *ScrollTracker) Observe(pos float32, t float64) float32 {
	s.position = pos
	if !s.primed {
		s.lastPos, s.lastT, s.primed = pos, t, true
		return 0
	}
	if dt := t - s.lastT; dt > 0 {
		s.velocity = (pos - s.lastPos) / float32(dt)
		s.lastPos, s.lastT = pos, t
	}
	return s.velocity
}

// Velocity is the last computed scroll velocity.
func (s *ScrollTracker) Velocity() float32 { return s.velocity }
