package core

// Color is an unclamped linear RGB triple
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a color from linear RGB components
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// MultiplyScalar returns the color scaled by a scalar
func (c Color) MultiplyScalar(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals compares two colors within Epsilon
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) &&
		FloatEquals(c.G, other.G) &&
		FloatEquals(c.B, other.B)
}
