package pendulum

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChainVariant selects how links are sampled along the string.
type ChainVariant int

const (
	// ChainInclusive places link i at t = i/(n-1): the first link sits on the
	// anchor and the last on the (visual) hook. Sag factor 0.4.
	ChainInclusive ChainVariant = iota
	// ChainExclusive places link i at t = i/(n+1) for i in 1..n, leaving
	// both endpoints bare. Sag factor 0.5.
	ChainExclusive
)

func (v ChainVariant) String() string {
	switch v {
	case ChainInclusive:
		return "inclusive"
	case ChainExclusive:
		return "exclusive"
	}
	return fmt.Sprintf("ChainVariant(%d)", int(v))
}

// ParseChainVariant is the inverse of String.
func ParseChainVariant(s string) (ChainVariant, error) {
	switch s {
	case "inclusive", "":
		return ChainInclusive, nil
	case "exclusive":
		return ChainExclusive, nil
	}
	return 0, fmt.Errorf("%w: chain variant %q", ErrInvalidConfig, s)
}

// SagFactor scales slack into the midpoint sag.
func (v ChainVariant) SagFactor() float32 {
	if v == ChainExclusive {
		return 0.5
	}
	return 0.4
}

// MinLinks is the smallest link count the variant can sample.
func (v ChainVariant) MinLinks() int {
	if v == ChainExclusive {
		return 1
	}
	return 2
}

// Param returns the curve parameter of the k-th link (k counted from 0) of n.
func (v ChainVariant) Param(k, n int) float32 {
	if v == ChainExclusive {
		return float32(k+1) / float32(n+1)
	}
	if n < 2 {
		return 0
	}
	return float32(k) / float32(n-1)
}

// Slack is how much shorter the anchor-to-hook distance is than the rest length.
func Slack(anchor, hook rl.Vector2, length float32) float32 {
	return max(0, length-rl.Vector2Distance(anchor, hook))
}

// Sag is the downward offset of the parabolic chain curve at t.
// It is zero at both ends and peaks at t = 0.5.
func Sag(slack, sagFactor, t float32) float32 {
	return slack * sagFactor * 4 * t * (1 - t)
}

// ChainSpec is what the chain generator needs beyond the endpoints.
type ChainSpec struct {
	Variant ChainVariant
	Links   int
	Length  float32
	Overlap float32
}

// ChainLinks computes link positions between anchor and the hook of a body
// rotated rotationDeg. The drawn end is pulled Overlap px into the body
// while slack comes from the physical hook. Results are written into dst,
// which is grown when too short, and returned.
func ChainLinks(dst []rl.Vector2, anchor, hook rl.Vector2, rotationDeg float32, spec ChainSpec) []rl.Vector2 {
	if spec.Links <= 0 {
		return dst[:0]
	}
	if cap(dst) < spec.Links {
		dst = make([]rl.Vector2, spec.Links)
	}
	dst = dst[:spec.Links]

	end := rl.Vector2Add(hook, LocalToWorld(rl.Vector2{X: 0, Y: spec.Overlap}, rotationDeg))
	span := rl.Vector2Subtract(end, anchor)
	sag := spec.Variant.SagFactor()
	slack := Slack(anchor, hook, spec.Length)

	for k := range dst {
		t := spec.Variant.Param(k, spec.Links)
		p := rl.Vector2Add(anchor, rl.Vector2Scale(span, t))
		p.Y += Sag(slack, sag, t)
		dst[k] = p
	}
	return dst
}
