package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is a 2D screen-space transform. Y grows downward and rotation
// is in degrees, clockwise.
type Transform struct {
	Position rl.Vector2
	Rotation float32
	Scale    rl.Vector2
}

var nextUID atomic.Uint64

// reserveUID makes sure freshly created objects never reuse uid.
func reserveUID(uid uint64) {
	for {
		cur := nextUID.Load()
		if cur >= uid || nextUID.CompareAndSwap(cur, uid) {
			return
		}
	}
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector2{X: 1, Y: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// SetUID assigns a persisted UID, e.g. when loading a scene file.
// Call before adding the object to a scene.
func (g *GameObject) SetUID(uid uint64) {
	if uid == 0 {
		return
	}
	g.UID = uid
	reserveUID(uid)
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// Draw calls Draw on every Drawable component, then on active children.
func (g *GameObject) Draw() {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if d, ok := c.(Drawable); ok {
			d.Draw()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector2{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
	}

	rotated := rl.Vector2Rotate(scaled, g.Parent.WorldRotation()*rl.Deg2rad)
	return rl.Vector2Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() float32 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation() + g.Transform.Rotation
}

func (g *GameObject) WorldScale() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector2{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
	}
}
