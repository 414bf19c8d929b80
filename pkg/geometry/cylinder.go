package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is the infinite unit-radius cylinder around the local y axis,
// optionally truncated to (Minimum, Maximum) and capped
type Cylinder struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an untruncated open cylinder object
func NewCylinder() *Object {
	return newObject(&Cylinder{Minimum: math.Inf(-1), Maximum: math.Inf(1)})
}

// Truncate bounds the cylinder between min and max, optionally capping the ends
func (c *Cylinder) Truncate(min, max float64, closed bool) {
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
}

func (c *Cylinder) localIntersect(ray core.Ray, object *Object) []Intersection {
	var xs []Intersection
	xs = c.intersectSides(ray, object, xs)
	xs = c.intersectCaps(ray, object, xs)
	return xs
}

func (c *Cylinder) intersectSides(ray core.Ray, object *Object, xs []Intersection) []Intersection {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if core.FloatEquals(a, 0) {
		return xs // ray is parallel to the y axis
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1
	disc := b*b - 4*a*cc
	if disc < 0 {
		return xs
	}

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if y := ray.Origin.Y + t0*ray.Direction.Y; c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t0, object))
	}
	if y := ray.Origin.Y + t1*ray.Direction.Y; c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t1, object))
	}
	return xs
}

func (c *Cylinder) intersectCaps(ray core.Ray, object *Object, xs []Intersection) []Intersection {
	if !c.Closed || core.FloatEquals(ray.Direction.Y, 0) {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t) {
		xs = append(xs, NewIntersection(t, object))
	}
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, t) {
		xs = append(xs, NewIntersection(t, object))
	}
	return xs
}

func (c *Cylinder) localNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}

func (c *Cylinder) prepareBounds(o *Object) {
	o.Bounds.Min = core.NewPoint(-1, c.Minimum, -1)
	o.Bounds.Max = core.NewPoint(1, c.Maximum, 1)
}

// cylinderCheckCap accepts a cap hit within the unit radius, inflated by
// epsilon so rays grazing the rim do not leak through the seam
func cylinderCheckCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1+core.Epsilon
}
