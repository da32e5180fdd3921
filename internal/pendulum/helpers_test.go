package pendulum

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func assertVec(t *testing.T, what string, got, want rl.Vector2, eps float32) {
	t.Helper()
	if !approx(got.X, want.X, eps) || !approx(got.Y, want.Y, eps) {
		t.Errorf("%s: expected (%.4f, %.4f), got (%.4f, %.4f)", what, want.X, want.Y, got.X, got.Y)
	}
}

// testConfig is the reference charm: anchor (200,50), length 220, height 80.
func testConfig() Config {
	return Config{
		Width:  50,
		Height: 80,
		Anchor: rl.Vector2{X: 200, Y: 50},
		String: StringConfig{Length: 220, Elasticity: 0.1, Links: 10},
		Tuning: DefaultTuning(),
		Scroll: DefaultScrollForce(),
	}
}
