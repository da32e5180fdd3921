package components

import (
	"log/slog"

	"charms/internal/engine"
	"charms/internal/pendulum"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

func init() {
	engine.RegisterComponent("CharmBody", func() engine.Serializable { return &CharmBody{} })
}

// CharmBody hangs one pendulum charm off the scene. It owns the charm's
// fixed-step scheduler and mirrors the body pose into the object transform.
type CharmBody struct {
	engine.BaseComponent

	ID     uuid.UUID
	Preset string

	// Wind points at an object carrying a WindGust. Optional.
	Wind engine.GameObjectRef

	// ScrollVelocity is the page scroll velocity in px/s, set by the host
	// before each Update.
	ScrollVelocity float32

	OnGrab    engine.EventWithArg[rl.Vector2]
	OnRelease engine.EventWithArg[rl.Vector2]

	charm     *pendulum.Charm
	scheduler *pendulum.Scheduler
	bodyColor rl.Color
	err       error
}

// NewCharmBody validates cfg and builds a resting charm.
func NewCharmBody(cfg pendulum.Config) (*CharmBody, error) {
	b := &CharmBody{ID: uuid.New(), Preset: pendulum.DefaultPreset}
	if err := b.build(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *CharmBody) build(cfg pendulum.Config) error {
	charm, err := pendulum.New(cfg)
	if err != nil {
		return err
	}
	b.charm = charm
	b.scheduler = pendulum.NewScheduler()
	b.bodyColor = colorOr(cfg.BodyColor, rl.Beige)
	return nil
}

// Validate returns the error, if any, from building the charm out of
// scene data.
func (b *CharmBody) Validate() error { return b.err }

// Charm returns the simulated charm, or nil when the config was invalid.
func (b *CharmBody) Charm() *pendulum.Charm { return b.charm }

func (b *CharmBody) Start() {
	if b.charm == nil {
		slog.Warn("charm disabled", "id", b.ID, "error", b.err)
		return
	}
	b.syncTransform()
	slog.Info("charm spawned", "id", b.ID, "preset", b.Preset, "anchor", b.charm.Config().Anchor)
}

func (b *CharmBody) Update(deltaTime float32) {
	if b.charm == nil {
		return
	}
	force := b.charm.ScrollForce(b.ScrollVelocity) + b.windForce()
	b.scheduler.Tick(deltaTime, b.charm, force)
	b.syncTransform()
}

func (b *CharmBody) windForce() float32 {
	g := b.GetGameObject()
	if g == nil {
		return 0
	}
	gust := engine.GetComponent[*WindGust](b.Wind.Get(g.Scene))
	if gust == nil {
		return 0
	}
	return gust.Force()
}

func (b *CharmBody) syncTransform() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	s := b.charm.State()
	g.Transform.Position = s.Center
	g.Transform.Rotation = s.Rotation
}

// Contains reports whether p hits the body.
func (b *CharmBody) Contains(p rl.Vector2) bool {
	return b.charm != nil && b.charm.Contains(p)
}

func (b *CharmBody) GrabStart(p rl.Vector2) bool {
	if b.charm == nil || !b.charm.GrabStart(p) {
		return false
	}
	b.scheduler.Reset()
	b.OnGrab.Invoke(p)
	return true
}

func (b *CharmBody) GrabMove(p rl.Vector2) bool {
	if b.charm == nil {
		return false
	}
	moved := b.charm.GrabMove(p)
	if moved {
		b.syncTransform()
	}
	return moved
}

func (b *CharmBody) GrabRelease(velocity rl.Vector2) bool {
	if b.charm == nil || !b.charm.GrabRelease(velocity) {
		return false
	}
	b.OnRelease.Invoke(velocity)
	return true
}

// Draw paints the chain first so the body covers the overlapping chain end.
func (b *CharmBody) Draw() {
	if b.charm == nil {
		return
	}
	if chain := engine.GetComponent[*ChainRenderer](b.GetGameObject()); chain != nil {
		chain.DrawChain()
	}
	cfg := b.charm.Config()
	s := b.charm.State()
	rl.DrawRectanglePro(
		rl.Rectangle{X: s.Center.X, Y: s.Center.Y, Width: cfg.Width, Height: cfg.Height},
		rl.Vector2{X: cfg.Width / 2, Y: cfg.Height / 2},
		s.Rotation,
		b.bodyColor,
	)
}

func (b *CharmBody) TypeName() string { return "CharmBody" }

func (b *CharmBody) Serialize() map[string]any {
	data := map[string]any{
		"id":     b.ID.String(),
		"preset": b.Preset,
	}
	if b.Wind.IsValid() {
		data["wind"] = float64(b.Wind.UID)
	}
	if b.charm == nil {
		return data
	}
	cfg := b.charm.Config()
	data["anchor"] = vec2Data(cfg.Anchor)
	data["width"] = cfg.Width
	data["height"] = cfg.Height
	data["length"] = cfg.String.Length
	data["elasticity"] = cfg.String.Elasticity
	data["links"] = cfg.String.Links
	data["overlap"] = cfg.Overlap
	data["variant"] = cfg.Variant.String()
	data["drag"] = cfg.Drag.String()
	data["bodyColor"] = cfg.BodyColor
	data["chainColor"] = cfg.ChainColor
	data["sensitivity"] = cfg.Scroll.Sensitivity
	data["maxForce"] = cfg.Scroll.MaxForce

	st := b.charm.State()
	data["center"] = vec2Data(st.Center)
	data["velocity"] = vec2Data(st.Velocity)
	data["rotation"] = st.Rotation
	return data
}

// Deserialize starts from the named size preset and applies any explicit
// overrides. A saved pose replaces the rest pose. Build errors are kept for
// Validate.
func (b *CharmBody) Deserialize(data map[string]any) {
	b.ID = uuid.New()
	if s, ok := data["id"].(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			b.ID = id
		}
	}
	b.Wind = engine.RefFromData(data, "wind")
	b.Preset = getString(data, "preset", pendulum.DefaultPreset)

	preset, err := pendulum.Preset(b.Preset)
	if err != nil {
		b.err = err
		return
	}
	cfg := preset.Config(getVec2(data, "anchor", rl.Vector2{}))
	cfg.Width = getFloat(data, "width", cfg.Width)
	cfg.Height = getFloat(data, "height", cfg.Height)
	cfg.String.Length = getFloat(data, "length", cfg.String.Length)
	cfg.String.Elasticity = getFloat(data, "elasticity", cfg.String.Elasticity)
	cfg.String.Links = getInt(data, "links", cfg.String.Links)
	cfg.Overlap = getFloat(data, "overlap", cfg.Overlap)
	cfg.BodyColor = getString(data, "bodyColor", cfg.BodyColor)
	cfg.ChainColor = getString(data, "chainColor", cfg.ChainColor)
	cfg.Scroll.Sensitivity = getFloat(data, "sensitivity", cfg.Scroll.Sensitivity)
	cfg.Scroll.MaxForce = getFloat(data, "maxForce", cfg.Scroll.MaxForce)

	if s := getString(data, "variant", ""); s != "" {
		if cfg.Variant, err = pendulum.ParseChainVariant(s); err != nil {
			b.err = err
			return
		}
	}
	if s := getString(data, "drag", ""); s != "" {
		if cfg.Drag, err = pendulum.ParseDragStrategy(s); err != nil {
			b.err = err
			return
		}
	}
	if b.err = b.build(cfg); b.err != nil {
		return
	}
	if _, ok := data["center"]; ok {
		rest := b.charm.State()
		b.charm.SetState(pendulum.State{
			Center:   getVec2(data, "center", rest.Center),
			Velocity: getVec2(data, "velocity", rest.Velocity),
			Rotation: getFloat(data, "rotation", rest.Rotation),
		})
	}
}
