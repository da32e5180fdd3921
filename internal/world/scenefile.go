package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"charms/internal/components"
	"charms/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Background string      `json:"background,omitempty"`
	Objects    []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64         `json:"uid,omitempty"`
	Name       string         `json:"name"`
	Tags       []string       `json:"tags,omitempty"`
	Position   [2]float32     `json:"position"`
	Rotation   float32        `json:"rotation,omitempty"`
	Components []ComponentDef `json:"components"`
}

type ComponentDef struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

type validator interface {
	Validate() error
}

// --- Loading ---

// LoadScene adds the objects in the scene file at path to the world.
// Unknown component types are skipped. A component that fails validation
// aborts the load.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	if sf.Background != "" {
		bg, err := components.ParseColor(sf.Background)
		if err != nil {
			return fmt.Errorf("parse scene: background: %w", err)
		}
		w.Background = bg
	}

	// Build everything first so a bad object leaves the scene untouched.
	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return err
		}
		objects = append(objects, g)
	}
	for _, g := range objects {
		w.Scene.AddGameObject(g)
		if body := engine.GetComponent[*components.CharmBody](g); body != nil {
			w.watch(body)
		}
	}

	slog.Info("scene loaded", "path", path, "objects", len(objects))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.SetUID(def.UID)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector2{X: def.Position[0], Y: def.Position[1]}
	g.Transform.Rotation = def.Rotation

	for _, cd := range def.Components {
		comp := engine.CreateComponent(cd.Type, cd.Props)
		if comp == nil {
			slog.Warn("unknown component skipped", "object", def.Name, "type", cd.Type)
			continue
		}
		if v, ok := comp.(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("object %q: %s: %w", def.Name, cd.Type, err)
			}
		}
		g.AddComponent(comp)
	}
	return g, nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	sf := SceneFile{Background: components.ColorHex(w.Background)}

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			UID:      g.UID,
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [2]float32{g.Transform.Position.X, g.Transform.Position.Y},
			Rotation: g.Transform.Rotation,
		}
		for _, c := range g.Components() {
			s, ok := c.(engine.Serializable)
			if !ok {
				continue
			}
			objDef.Components = append(objDef.Components, ComponentDef{
				Type:  s.TypeName(),
				Props: s.Serialize(),
			})
		}
		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	slog.Info("scene saved", "path", path, "objects", len(sf.Objects))
	return nil
}

// IsNotExist reports whether a LoadScene error means the file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
