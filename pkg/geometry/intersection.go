package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection is an ephemeral hit record: a distance along the ray, the
// object hit, and barycentric coordinates for triangle hits
type Intersection struct {
	T      float64
	Object *Object
	U, V   float64
}

// NewIntersection creates a hit record at distance t on an object
func NewIntersection(t float64, object *Object) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates a hit record carrying barycentric coordinates
func NewIntersectionUV(t float64, object *Object, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Hit returns the intersection with the smallest non-negative t. A t<0
// intersection lies behind the ray origin and is never selected.
func Hit(xs []Intersection) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations is the short-lived shading state derived from a hit
type Computations struct {
	T      float64
	Object *Object

	Point      core.Tuple
	OverPoint  core.Tuple // shadow-ray origin, nudged along the normal
	UnderPoint core.Tuple // refraction-ray origin, nudged against the normal
	Eyev       core.Tuple
	Normalv    core.Tuple
	Reflectv   core.Tuple
	Inside     bool

	N1 float64 // refractive index of the material being exited
	N2 float64 // refractive index of the material being entered
}

// PrepareComputations derives the shading state for a hit. The full sorted
// intersection list is replayed up to the hit to resolve the entry and exit
// refractive indices through nested transparent volumes.
func (i Intersection) PrepareComputations(ray core.Ray, xs []Intersection) Computations {
	point := ray.Position(i.T)
	eyev := ray.Direction.Negate()
	normalv := i.Object.NormalAt(point, &i)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	offset := normalv.Multiply(core.Epsilon)
	n1, n2 := i.refractiveIndices(xs)

	return Computations{
		T:          i.T,
		Object:     i.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		Eyev:       eyev,
		Normalv:    normalv,
		Reflectv:   ray.Direction.Reflect(normalv),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices replays the sorted hit list maintaining a containment
// stack of entered objects: push on first encounter, pop by identity on
// re-encounter. n1 is the top just before the hit, n2 the top just after.
func (i Intersection) refractiveIndices(xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1, 1

	var containers []*Object
	for _, x := range xs {
		isHit := x.T == i.T && x.Object == i.Object

		if isHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(objects []*Object, o *Object) int {
	for i, x := range objects {
		if x == o {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted, rising toward 1 at grazing angles
// and at total internal reflection
func (c Computations) Schlick() float64 {
	cos := c.Eyev.Dot(c.Normalv)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
