package game

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// LenSq returns the squared length; collision tests compare against r².
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec2) float64 { return a.Sub(b).LenSq() }

// FromAngle returns the unit vector for an angle in degrees,
// measured counter-clockwise from +X with +Y pointing up.
func FromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}
