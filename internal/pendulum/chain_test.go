package pendulum

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSag(t *testing.T) {
	if got := Sag(20, 0.5, 0.5); !approx(got, 10, 1e-5) {
		t.Errorf("Expected midpoint sag 10, got %v", got)
	}
	for _, tt := range []float32{0, 1} {
		if got := Sag(20, 0.5, tt); got != 0 {
			t.Errorf("Expected zero sag at t=%v, got %v", tt, got)
		}
	}
	if got := Sag(0, 0.5, 0.5); got != 0 {
		t.Errorf("Expected no sag when taut, got %v", got)
	}
}

func TestSlack(t *testing.T) {
	if got := Slack(rl.Vector2{}, rl.Vector2{X: 100}, 120); !approx(got, 20, 1e-5) {
		t.Errorf("Expected slack 20, got %v", got)
	}
	if got := Slack(rl.Vector2{}, rl.Vector2{X: 150}, 120); got != 0 {
		t.Errorf("Expected no slack when overstretched, got %v", got)
	}
}

func TestVariantParam(t *testing.T) {
	if got := ChainInclusive.Param(0, 11); got != 0 {
		t.Errorf("Inclusive first link should sit on the anchor, got t=%v", got)
	}
	if got := ChainInclusive.Param(10, 11); got != 1 {
		t.Errorf("Inclusive last link should sit on the hook, got t=%v", got)
	}
	if got := ChainExclusive.Param(0, 9); !approx(got, 0.1, 1e-6) {
		t.Errorf("Exclusive first link should be t=0.1, got %v", got)
	}
	if got := ChainExclusive.Param(8, 9); !approx(got, 0.9, 1e-6) {
		t.Errorf("Exclusive last link should be t=0.9, got %v", got)
	}
}

func TestChainLinksMidpointSag(t *testing.T) {
	anchor := rl.Vector2{X: 0, Y: 0}
	hook := rl.Vector2{X: 100, Y: 0}

	tests := []struct {
		name    string
		variant ChainVariant
		links   int
		mid     int
		sag     float32
	}{
		{"exclusive", ChainExclusive, 9, 4, 20 * 0.5},
		{"inclusive", ChainInclusive, 11, 5, 20 * 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ChainSpec{Variant: tt.variant, Links: tt.links, Length: 120}
			links := ChainLinks(nil, anchor, hook, -90, spec)

			if len(links) != tt.links {
				t.Fatalf("Expected %d links, got %d", tt.links, len(links))
			}
			assertVec(t, "midpoint", links[tt.mid], rl.Vector2{X: 50, Y: tt.sag}, 1e-3)
			for i, p := range links {
				if p.Y > links[tt.mid].Y+1e-4 {
					t.Errorf("Link %d sags %.4f, more than the midpoint", i, p.Y)
				}
			}
		})
	}
}

func TestChainLinksInclusiveEndpoints(t *testing.T) {
	anchor := rl.Vector2{X: 10, Y: 10}
	hook := rl.Vector2{X: 10, Y: 60}
	links := ChainLinks(nil, anchor, hook, 0, ChainSpec{Variant: ChainInclusive, Links: 6, Length: 80})

	assertVec(t, "first", links[0], anchor, 1e-4)
	assertVec(t, "last", links[5], hook, 1e-4)
}

func TestChainLinksTautHasNoSag(t *testing.T) {
	anchor := rl.Vector2{X: 0, Y: 0}
	hook := rl.Vector2{X: 0, Y: 100}
	links := ChainLinks(nil, anchor, hook, 0, ChainSpec{Variant: ChainExclusive, Links: 4, Length: 100})

	for i, p := range links {
		want := rl.Vector2{X: 0, Y: 100 * float32(i+1) / 5}
		assertVec(t, "link", p, want, 1e-3)
	}
}

func TestChainLinksOverlapPullsEndIntoBody(t *testing.T) {
	anchor := rl.Vector2{X: 0, Y: 0}
	hook := rl.Vector2{X: 0, Y: 100}
	links := ChainLinks(nil, anchor, hook, 0, ChainSpec{Variant: ChainInclusive, Links: 3, Length: 100, Overlap: 20})

	assertVec(t, "end", links[2], rl.Vector2{X: 0, Y: 120}, 1e-3)

	// Rotated a quarter turn the body's down axis points left.
	links = ChainLinks(links, anchor, hook, 90, ChainSpec{Variant: ChainInclusive, Links: 3, Length: 100, Overlap: 20})
	assertVec(t, "rotated end", links[2], rl.Vector2{X: -20, Y: 100}, 1e-3)
}

func TestChainLinksIdempotent(t *testing.T) {
	spec := ChainSpec{Variant: ChainInclusive, Links: 16, Length: 110, Overlap: 30}
	anchor := rl.Vector2{X: 8, Y: 8}
	hook := rl.Vector2{X: 40, Y: 90}

	first := append([]rl.Vector2(nil), ChainLinks(nil, anchor, hook, 12, spec)...)
	second := ChainLinks(nil, anchor, hook, 12, spec)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Link %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestChainLinksReusesBuffer(t *testing.T) {
	buf := make([]rl.Vector2, 0, 32)
	out := ChainLinks(buf, rl.Vector2{}, rl.Vector2{Y: 10}, 0, ChainSpec{Links: 8, Length: 10})
	if &out[0] != &buf[:1][0] {
		t.Error("Expected ChainLinks to reuse a large enough buffer")
	}
	if got := ChainLinks(out, rl.Vector2{}, rl.Vector2{Y: 10}, 0, ChainSpec{Links: 0}); len(got) != 0 {
		t.Errorf("Expected no links, got %d", len(got))
	}
}

func TestParseChainVariant(t *testing.T) {
	for _, v := range []ChainVariant{ChainInclusive, ChainExclusive} {
		got, err := ParseChainVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseChainVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseChainVariant("spiral"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}
