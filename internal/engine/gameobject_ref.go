package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
// Charms use it to point at a shared wind source:
//
//	type CharmBody struct {
//	    engine.BaseComponent
//	    Wind engine.GameObjectRef
//	}
//
//	if breeze := body.Wind.Get(body.GetGameObject().Scene); breeze != nil {
//	    // read the breeze's force...
//	}
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. It does not check the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// RefFromData reads a UID stored by Serialize under key. Missing or
// malformed values give an empty reference.
func RefFromData(data map[string]any, key string) GameObjectRef {
	if v, ok := data[key].(float64); ok && v > 0 {
		return GameObjectRef{UID: uint64(v)}
	}
	return GameObjectRef{}
}
