package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D point or free vector, depending on how the caller uses it.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// WithX returns a copy of v with X replaced.
func (v Vec2) WithX(x float64) Vec2 {
	return Vec2{X: x, Y: v.Y}
}

// WithY returns a copy of v with Y replaced.
func (v Vec2) WithY(y float64) Vec2 {
	return Vec2{X: v.X, Y: y}
}

// Plus returns v+o.
func (v Vec2) Plus(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Minus returns v-o.
func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Times returns v scaled by s.
func (v Vec2) Times(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// TimesPointwise returns the component-wise product of v and o.
func (v Vec2) TimesPointwise(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length2 returns the squared length of v.
func (v Vec2) Length2() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.Length2())
}

// Flatten returns the components in (X, Y) order.
func (v Vec2) Flatten() [2]float64 {
	return [2]float64{v.X, v.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 {
	return Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 {
	return Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}
