// Package tui runs the charm world inside a terminal: each cell stands for
// a CellWidth x CellHeight block of pixels, the mouse drags charms and the
// wheel scrolls the page.
package tui

import (
	"log/slog"
	"time"

	"charms/internal/components"
	"charms/internal/engine"
	"charms/internal/input"
	"charms/internal/pendulum"
	"charms/internal/world"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	CellWidth  = 8
	CellHeight = 16

	// ScrollStep is the page scroll per wheel event, px.
	ScrollStep = 60

	// One tick per physics step, so the scheduler runs exactly one step
	// per drawn frame.
	frameInterval = time.Second / 60
)

type Sandbox struct {
	screen  tcell.Screen
	world   *world.World
	pointer *input.Pointer
	scroll  input.ScrollTracker

	buttonDown bool
	held       *components.CharmBody
	spawned    int
	start      time.Time
}

func New(screen tcell.Screen, w *world.World) *Sandbox {
	s := &Sandbox{
		screen:  screen,
		world:   w,
		pointer: input.NewPointer(),
		start:   time.Now(),
	}
	w.OnGrab.AddListener(func(b *components.CharmBody) { s.held = b })
	w.OnRelease.AddListener(func(b *components.CharmBody) {
		if s.held == b {
			s.held = nil
		}
	})
	return s
}

// ToWorld maps a cell to the pixel at its center.
func ToWorld(x, y int) rl.Vector2 {
	return rl.Vector2{
		X: (float32(x) + 0.5) * CellWidth,
		Y: (float32(y) + 0.5) * CellHeight,
	}
}

// ToCell maps a pixel to the cell containing it.
func ToCell(p rl.Vector2) (int, int) {
	return floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight)
}

func floorDiv(v, size float32) int {
	q := int(v / size)
	if v < 0 && float32(q)*size != v {
		q--
	}
	return q
}

// HandleEvent applies one terminal event at time now (seconds). It returns
// false when the user asked to quit.
func (s *Sandbox) HandleEvent(ev tcell.Event, now float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				s.spawn()
			}
		}

	case *tcell.EventMouse:
		s.handleMouse(ev, now)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) handleMouse(ev *tcell.EventMouse, now float64) {
	x, y := ev.Position()
	pos := ToWorld(x, y)
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		s.scroll.Scroll(-ScrollStep)
	}
	if buttons&tcell.WheelDown != 0 {
		s.scroll.Scroll(ScrollStep)
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !s.buttonDown:
		if body := s.world.BodyAt(pos); body != nil {
			s.pointer.Press(body, pos, now)
		}
	case down:
		s.pointer.Move(pos, now)
	case s.buttonDown:
		s.pointer.Release(pos, now)
	}
	s.buttonDown = down
}

func (s *Sandbox) spawn() {
	names := pendulum.PresetNames()
	preset := names[s.spawned%len(names)]
	s.spawned++

	w, _ := s.screen.Size()
	anchor := rl.Vector2{X: float32(w*CellWidth) * float32(s.spawned%4+1) / 5, Y: CellHeight}
	obj, err := s.world.SpawnCharm(preset, anchor)
	if err != nil {
		slog.Error("spawn failed", "preset", preset, "error", err)
		return
	}
	obj.Start()
}

// Frame delivers queued input and advances the world by deltaTime seconds.
func (s *Sandbox) Frame(deltaTime float32, now float64) {
	s.pointer.Flush()
	s.world.Update(deltaTime, s.scroll.Sample(now))
}

// Draw rasterizes the world into terminal cells.
func (s *Sandbox) Draw() {
	s.screen.Clear()
	for _, g := range s.world.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if body := engine.GetComponent[*components.CharmBody](g); body != nil && body.Charm() != nil {
			s.drawCharm(body.Charm(), body == s.held)
		}
		if bob := engine.GetComponent[*components.Bobber](g); bob != nil {
			s.drawBobber(g, bob)
		}
		if bead := engine.GetComponent[*components.Bead](g); bead != nil {
			x, y := ToCell(g.WorldPosition())
			s.screen.SetContent(x, y, '●', nil, styleFor(bead.Color, tcell.ColorYellow))
		}
	}
	s.screen.Show()
}

// drawCharm rasterizes one charm. A held body is shaded lighter.
func (s *Sandbox) drawCharm(c *pendulum.Charm, held bool) {
	cfg := c.Config()
	chainStyle := styleFor(cfg.ChainColor, tcell.ColorGray)
	bodyStyle := styleFor(cfg.BodyColor, tcell.ColorWhite)

	ax, ay := ToCell(cfg.Anchor)
	s.screen.SetContent(ax, ay, '┬', nil, chainStyle)
	for _, p := range c.Links() {
		x, y := ToCell(p)
		s.screen.SetContent(x, y, '•', nil, chainStyle)
	}

	fill := '█'
	if held {
		fill = '▓'
	}

	// Scan the bounding box of the body's circumscribed circle.
	st := c.State()
	r := rl.Vector2Length(rl.Vector2{X: cfg.Width / 2, Y: cfg.Height / 2})
	x0, y0 := ToCell(rl.Vector2{X: st.Center.X - r, Y: st.Center.Y - r})
	x1, y1 := ToCell(rl.Vector2{X: st.Center.X + r, Y: st.Center.Y + r})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.Contains(ToWorld(x, y)) {
				s.screen.SetContent(x, y, fill, nil, bodyStyle)
			}
		}
	}
}

func (s *Sandbox) drawBobber(g *engine.GameObject, b *components.Bobber) {
	style := styleFor(b.Color, tcell.ColorPink)
	p := g.WorldPosition()
	x0, y0 := ToCell(rl.Vector2{X: p.X - b.Size/2, Y: p.Y - b.Size/2})
	x1, y1 := ToCell(rl.Vector2{X: p.X + b.Size/2, Y: p.Y + b.Size/2})
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, '█', nil, style)
		}
	}
}

func styleFor(color string, fallback tcell.Color) tcell.Style {
	c, err := components.ParseColor(color)
	if err != nil {
		return tcell.StyleDefault.Foreground(fallback)
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Run polls terminal events on a goroutine and steps the world on a ~60 Hz
// ticker until the user quits.
func (s *Sandbox) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go s.pollEvents(eventChan, done)

	s.world.Start()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.HandleEvent(ev, time.Since(s.start).Seconds()) {
				return
			}

		case now := <-ticker.C:
			s.Frame(float32(now.Sub(last).Seconds()), now.Sub(s.start).Seconds())
			last = now
			s.Draw()
		}
	}
}

// pollEvents forwards terminal events to events until the screen is
// finalized or done is closed.
func (s *Sandbox) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
