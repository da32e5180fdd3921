// Package input buffers pointer and scroll input so it can be applied to
// charms between frames, whatever thread the platform delivers it on.
package input

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind int

const (
	GrabStart Kind = iota
	GrabMove
	GrabRelease
)

func (k Kind) String() string {
	switch k {
	case GrabStart:
		return "grab-start"
	case GrabMove:
		return "grab-move"
	case GrabRelease:
		return "grab-release"
	}
	return "unknown"
}

// Event is one pointer event in world coordinates. Velocity is only set on
// GrabRelease and is in px/s.
type Event struct {
	Kind     Kind
	Position rl.Vector2
	Velocity rl.Vector2
}

// Grabber receives drag events. *pendulum.Charm implements it.
type Grabber interface {
	GrabStart(p rl.Vector2) bool
	GrabMove(p rl.Vector2) bool
	GrabRelease(velocity rl.Vector2) bool
}

// Queue collects events from any goroutine until the frame loop drains them.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain appends all pending events to dst in arrival order and empties the queue.
func (q *Queue) Drain(dst []Event) []Event {
	q.mu.Lock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Apply delivers events to g in order and returns how many were accepted.
func Apply(g Grabber, events []Event) int {
	accepted := 0
	for _, e := range events {
		var ok bool
		switch e.Kind {
		case GrabStart:
			ok = g.GrabStart(e.Position)
		case GrabMove:
			ok = g.GrabMove(e.Position)
		case GrabRelease:
			ok = g.GrabRelease(e.Velocity)
		}
		if ok {
			accepted++
		}
	}
	return accepted
}
