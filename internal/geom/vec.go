package geom

import "math"

// Vec is a 2D vector in either body-local or world coordinates.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of two 2D vectors.
func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Rotate rotates v by angle radians about the origin.
func (v Vec) Rotate(angle float64) Vec {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

func (v Vec) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
