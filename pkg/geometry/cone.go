package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is the infinite double-napped cone around the local y axis, with
// unit slope, optionally truncated to (Minimum, Maximum) and capped
type Cone struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an untruncated open cone object
func NewCone() *Object {
	return newObject(&Cone{Minimum: math.Inf(-1), Maximum: math.Inf(1)})
}

// Truncate bounds the cone between min and max, optionally capping the ends
func (c *Cone) Truncate(min, max float64, closed bool) {
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
}

func (c *Cone) localIntersect(ray core.Ray, object *Object) []Intersection {
	var xs []Intersection
	xs = c.intersectSides(ray, object, xs)
	xs = c.intersectCaps(ray, object, xs)
	return xs
}

func (c *Cone) intersectSides(ray core.Ray, object *Object, xs []Intersection) []Intersection {
	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	// Parallel to one half of the cone: the quadratic degenerates to a
	// linear equation with a single root.
	if core.FloatEquals(a, 0) {
		if core.FloatEquals(b, 0) {
			return xs
		}
		return append(xs, NewIntersection(-cc/(2*b), object))
	}

	disc := b*b - 4*a*cc
	if disc < -core.Epsilon {
		return xs
	}
	disc = math.Max(disc, 0)

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if y := o.Y + t0*d.Y; c.Minimum-core.Epsilon < y && y < c.Maximum+core.Epsilon {
		xs = append(xs, NewIntersection(t0, object))
	}
	if y := o.Y + t1*d.Y; c.Minimum-core.Epsilon < y && y < c.Maximum+core.Epsilon {
		xs = append(xs, NewIntersection(t1, object))
	}
	return xs
}

func (c *Cone) intersectCaps(ray core.Ray, object *Object, xs []Intersection) []Intersection {
	if !c.Closed || core.FloatEquals(ray.Direction.Y, 0) {
		return xs
	}

	// Cap radius equals |y| at the truncation plane.
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, NewIntersection(t, object))
	}
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, NewIntersection(t, object))
	}
	return xs
}

func (c *Cone) localNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	radius2 := point.Y * point.Y
	if dist < radius2 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < radius2 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}

func (c *Cone) prepareBounds(o *Object) {
	o.Bounds.Min = core.NewPoint(-1, c.Minimum, -1)
	o.Bounds.Max = core.NewPoint(1, c.Maximum, 1)
}

func coneCheckCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius+core.Epsilon
}
