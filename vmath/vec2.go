package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in play-field pixels
// Y grows downward, matching screen space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(b, a))
}

// V2Direction returns the unit vector pointing from a to b, zero when they coincide
func V2Direction(from, to Vec2) Vec2 {
	return V2Normalize(V2Sub(to, from))
}

// V2MoveToward advances from toward to by at most step, never overshooting
// Returns the new position and whether the destination was reached
func V2MoveToward(from, to Vec2, step float64) (Vec2, bool) {
	delta := V2Sub(to, from)
	dist := V2Mag(delta)
	if dist <= step || dist == 0 {
		return to, true
	}
	return V2Add(from, V2Scale(delta, step/dist)), false
}

// Rect is an axis-aligned play-field rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r expanded by margin on every side
func (r Rect) Contains(p Vec2, margin float64) bool {
	return p.X >= r.X-margin && p.X <= r.X+r.W+margin &&
		p.Y >= r.Y-margin && p.Y <= r.Y+r.H+margin
}
