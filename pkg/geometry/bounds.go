package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Bounds is an axis-aligned box in local space, used only as a pre-filter
// to skip subtrees a ray cannot hit. It never changes intersection results.
type Bounds struct {
	Min core.Tuple
	Max core.Tuple
}

// DefaultBounds returns the unit cube [-1,1] on every axis
func DefaultBounds() Bounds {
	return Bounds{
		Min: core.NewPoint(-1, -1, -1),
		Max: core.NewPoint(1, 1, 1),
	}
}

func emptyBounds() Bounds {
	return Bounds{
		Min: core.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: core.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// IntersectRay reports whether the ray passes through the box, via a
// per-axis slab test
func (b Bounds) IntersectRay(ray core.Ray) bool {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	return tmin <= tmax
}

// Transform returns the axis-aligned box enclosing all eight transformed
// corners. Infinite extents (planes, untruncated cylinders and cones) stay
// infinite on the axes they reach after the transform instead of collapsing
// to a box that culls real geometry.
func (b Bounds) Transform(m core.Matrix) Bounds {
	corners := [8]core.Tuple{
		transformCorner(m, core.NewPoint(b.Min.X, b.Min.Y, b.Min.Z)),
		transformCorner(m, core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z)),
		transformCorner(m, core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z)),
		transformCorner(m, core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z)),
		transformCorner(m, core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z)),
		transformCorner(m, core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z)),
		transformCorner(m, core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z)),
		transformCorner(m, core.NewPoint(b.Max.X, b.Max.Y, b.Max.Z)),
	}

	result := emptyBounds()
	for _, c := range corners {
		result.Min = core.NewPoint(
			nanMin(result.Min.X, c.X),
			nanMin(result.Min.Y, c.Y),
			nanMin(result.Min.Z, c.Z),
		)
		result.Max = core.NewPoint(
			nanMax(result.Max.X, c.X),
			nanMax(result.Max.Y, c.Y),
			nanMax(result.Max.Z, c.Z),
		)
	}
	return result
}

// transformCorner applies m to a corner, skipping zero matrix entries so an
// infinite coordinate only reaches the axes the transform actually couples
// it to. A plain multiply would turn 0 * Inf into NaN on every axis.
func transformCorner(m core.Matrix, p core.Tuple) core.Tuple {
	coords := [4]float64{p.X, p.Y, p.Z, p.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m[row][col] != 0 {
				out[row] += m[row][col] * coords[col]
			}
		}
	}
	return core.Tuple{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// Merge grows the box to enclose another box
func (b *Bounds) Merge(other Bounds) {
	b.Min = core.NewPoint(
		nanMin(b.Min.X, other.Min.X),
		nanMin(b.Min.Y, other.Min.Y),
		nanMin(b.Min.Z, other.Min.Z),
	)
	b.Max = core.NewPoint(
		nanMax(b.Max.X, other.Max.X),
		nanMax(b.Max.Y, other.Max.Y),
		nanMax(b.Max.Z, other.Max.Z),
	)
}

// nanMin and nanMax ignore NaN operands. Opposing infinities meeting in a
// rotated corner produce NaN, which must not erase extents already merged.
func nanMin(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func nanMax(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

// checkAxis intersects the ray with one pair of parallel planes. When the
// direction component is near zero the numerators are multiplied by signed
// infinity instead of branching on division by zero.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tminNumerator := min - origin - core.Epsilon
	tmaxNumerator := max - origin + core.Epsilon

	var tmin, tmax float64
	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		return tmax, tmin
	}
	return tmin, tmax
}
