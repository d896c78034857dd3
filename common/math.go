package common

import "math"

// Vec2 is a 2D vector in pixel units with screen-down Y.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector. A zero vector normalizes to zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// MoveToward returns from advanced toward to by at most maxDelta.
// It never overshoots to.
func MoveToward(from, to Vec2, maxDelta float64) Vec2 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return to
	}
	k := maxDelta / dist
	return Vec2{X: from.X + dx*k, Y: from.Y + dy*k}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
