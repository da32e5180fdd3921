package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pointer turns raw press/move/release samples into grab events for one
// target at a time. Samples are queued as they arrive and delivered by
// Flush at the start of the next frame.
type Pointer struct {
	Queue   Queue
	Tracker *VelocityTracker

	target    Grabber
	releasing bool
	buf       []Event
}

func NewPointer() *Pointer {
	return &Pointer{Tracker: NewVelocityTracker()}
}

// Active reports whether a gesture is in progress.
func (p *Pointer) Active() bool { return p.target != nil }

// Press starts a gesture on target. It is ignored while another gesture is
// in progress or when target is nil.
func (p *Pointer) Press(target Grabber, pos rl.Vector2, t float64) bool {
	if p.target != nil || target == nil {
		return false
	}
	p.target = target
	p.releasing = false
	p.Tracker.Reset()
	p.Tracker.Add(pos, t)
	p.Queue.Push(Event{Kind: GrabStart, Position: pos})
	return true
}

func (p *Pointer) Move(pos rl.Vector2, t float64) {
	if p.target == nil || p.releasing {
		return
	}
	p.Tracker.Add(pos, t)
	p.Queue.Push(Event{Kind: GrabMove, Position: pos})
}

// Release ends the gesture at pos with the tracked release velocity.
func (p *Pointer) Release(pos rl.Vector2, t float64) {
	if p.target == nil || p.releasing {
		return
	}
	p.Tracker.Add(pos, t)
	p.Queue.Push(Event{Kind: GrabRelease, Position: pos, Velocity: p.Tracker.Velocity()})
	p.releasing = true
}

// Flush delivers queued events to the current target and returns how many
// were accepted. A delivered release frees the pointer for the next press.
func (p *Pointer) Flush() int {
	p.buf = p.Queue.Drain(p.buf[:0])
	if p.target == nil {
		return 0
	}
	n := Apply(p.target, p.buf)
	if p.releasing {
		p.target = nil
		p.releasing = false
	}
	return n
}
