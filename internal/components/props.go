package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene file data arrives from encoding/json, so numbers are usually
// float64 and pairs are []any. Serialize output is accepted as well.

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func getFloat(data map[string]any, key string, fallback float32) float32 {
	if v, ok := number(data[key]); ok {
		return float32(v)
	}
	return fallback
}

func getInt(data map[string]any, key string, fallback int) int {
	if v, ok := number(data[key]); ok {
		return int(v)
	}
	return fallback
}

func getString(data map[string]any, key string, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func getVec2(data map[string]any, key string, fallback rl.Vector2) rl.Vector2 {
	arr, ok := data[key].([]any)
	if !ok || len(arr) != 2 {
		return fallback
	}
	x, okx := number(arr[0])
	y, oky := number(arr[1])
	if !okx || !oky {
		return fallback
	}
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

func vec2Data(v rl.Vector2) []any {
	return []any{float64(v.X), float64(v.Y)}
}
