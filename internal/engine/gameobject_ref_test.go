package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Charms")
	breeze := NewGameObject("Breeze")
	scene.AddGameObject(breeze)

	ref := GameObjectRef{UID: breeze.UID}
	if ref.Get(scene) != breeze {
		t.Error("Get() should resolve the referenced object")
	}
	if (GameObjectRef{}).Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}
	if (GameObjectRef{UID: 99999999}).Get(scene) != nil {
		t.Error("Get() with unknown UID should return nil")
	}
	if ref.Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefIsValid(t *testing.T) {
	if !(GameObjectRef{UID: 7}).IsValid() {
		t.Error("Ref with UID > 0 should be valid")
	}
	if (GameObjectRef{}).IsValid() {
		t.Error("Ref with UID 0 should be invalid")
	}
}

func TestRefFromData(t *testing.T) {
	data := map[string]any{"wind": float64(42), "bad": "x", "neg": float64(-3)}

	if got := RefFromData(data, "wind"); got.UID != 42 {
		t.Errorf("Expected UID 42, got %d", got.UID)
	}
	for _, key := range []string{"bad", "neg", "missing"} {
		if RefFromData(data, key).IsValid() {
			t.Errorf("Expected invalid ref for key %q", key)
		}
	}
}
