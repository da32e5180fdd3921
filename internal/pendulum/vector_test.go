package pendulum

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestHookPosition(t *testing.T) {
	center := rl.Vector2{X: 100, Y: 100}

	tests := []struct {
		name string
		rot  float32
		want rl.Vector2
	}{
		{"upright", 0, rl.Vector2{X: 100, Y: 60}},
		{"quarter turn clockwise", 90, rl.Vector2{X: 140, Y: 100}},
		{"upside down", 180, rl.Vector2{X: 100, Y: 140}},
		{"quarter turn counter-clockwise", -90, rl.Vector2{X: 60, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "hook", HookPosition(center, tt.rot, 80), tt.want, 1e-3)
		})
	}
}

func TestCenterFromHookInvertsHookPosition(t *testing.T) {
	center := rl.Vector2{X: 12, Y: -7}
	for _, rot := range []float32{-170, -33, 0, 45, 120} {
		hook := HookPosition(center, rot, 64)
		assertVec(t, "center", CenterFromHook(hook, rot, 64), center, 1e-3)
	}
}

func TestLocalWorldRoundTrip(t *testing.T) {
	local := rl.Vector2{X: 30, Y: 30}
	for _, rot := range []float32{-90, 10, 75, 200} {
		back := WorldToLocal(LocalToWorld(local, rot), rot)
		assertVec(t, "local", back, local, 1e-3)
	}
}

func TestHangingRotation(t *testing.T) {
	anchor := rl.Vector2{X: 0, Y: 0}

	rot, ok := HangingRotation(anchor, rl.Vector2{X: 0, Y: 100})
	if !ok || !approx(rot, 0, 1e-4) {
		t.Errorf("Expected straight down to hang at 0°, got %.4f (ok=%v)", rot, ok)
	}

	rot, ok = HangingRotation(anchor, rl.Vector2{X: 100, Y: 0})
	if !ok || !approx(rot, -90, 1e-4) {
		t.Errorf("Expected body to the right to hang at -90°, got %.4f", rot)
	}

	if _, ok := HangingRotation(anchor, anchor); ok {
		t.Error("HangingRotation should be undefined at the anchor")
	}
}

func TestShortestAngle(t *testing.T) {
	tests := []struct {
		from, to, want float32
	}{
		{0, 10, 10},
		{10, 0, -10},
		{170, -170, 20},
		{-170, 170, -20},
		{0, 180, 180},
		{0, -180, 180},
		{0, 540, 180},
		{350, 10, 20},
	}
	for _, tt := range tests {
		if got := ShortestAngle(tt.from, tt.to); !approx(got, tt.want, 1e-3) {
			t.Errorf("ShortestAngle(%v, %v): expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestResolveStringLeavesSlackAlone(t *testing.T) {
	center := rl.Vector2{X: 0, Y: 50}
	hook := rl.Vector2{X: 0, Y: 10}
	next, _, stretched := resolveString(center, hook, rl.Vector2{}, 20, 0)
	if stretched || next != center {
		t.Errorf("Expected no correction inside rest length, got %v (stretched=%v)", next, stretched)
	}
}

func TestResolveStringZeroDistance(t *testing.T) {
	center := rl.Vector2{X: 5, Y: 5}
	next, _, stretched := resolveString(center, rl.Vector2{}, rl.Vector2{}, 0, 0)
	if stretched || next != center {
		t.Error("Zero-distance hook must not be corrected")
	}
}
