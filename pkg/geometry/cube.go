package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1,1] on every axis
type Cube struct{}

// NewCube creates a unit cube object
func NewCube() *Object {
	return newObject(&Cube{})
}

func (c *Cube) localIntersect(ray core.Ray, object *Object) []Intersection {
	xtmin, xtmax := cubeCheckAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := cubeCheckAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := cubeCheckAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return []Intersection{
		NewIntersection(tmin, object),
		NewIntersection(tmax, object),
	}
}

func (c *Cube) localNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))
	switch maxc {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}

func (c *Cube) prepareBounds(*Object) {}

// cubeCheckAxis intersects one pair of the cube's faces. A near-zero
// direction component multiplies the numerators by signed infinity rather
// than dividing by zero.
func cubeCheckAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

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
