package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the local origin
type Sphere struct{}

// NewSphere creates a unit sphere object
func NewSphere() *Object {
	return newObject(&Sphere{})
}

// NewGlassSphere creates a unit sphere with the glass material preset
func NewGlassSphere() *Object {
	return NewSphere().MadeOfGlass()
}

func (s *Sphere) localIntersect(ray core.Ray, object *Object) []Intersection {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []Intersection{
		NewIntersection((-b-sqrtD)/(2*a), object),
		NewIntersection((-b+sqrtD)/(2*a), object),
	}
}

func (s *Sphere) localNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}

func (s *Sphere) prepareBounds(*Object) {}
