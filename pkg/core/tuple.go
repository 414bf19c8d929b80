package core

import (
	"math"
	"math/rand"
)

// Tuple is a 4-component affine coordinate. W=1 marks a point, W=0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with W=1
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W=0
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// RandomVector returns a vector with each component uniform in [-magnitude, magnitude]
func RandomVector(magnitude float64) Tuple {
	return NewVector(
		(rand.Float64()*2-1)*magnitude,
		(rand.Float64()*2-1)*magnitude,
		(rand.Float64()*2-1)*magnitude,
	)
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with all components negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return t.Multiply(1 / scalar)
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return t.Divide(m)
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected around a normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Angle returns the angle in radians between two vectors
func (t Tuple) Angle(other Tuple) float64 {
	return math.Acos(t.Normalize().Dot(other.Normalize()))
}

// ToVector returns the tuple with W forced to 0
func (t Tuple) ToVector() Tuple {
	t.W = 0
	return t
}

// Equals compares two tuples within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}
