package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle with a precomputed face normal
type Triangle struct {
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a flat triangle object from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Object {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return newObject(&Triangle{
		P1: p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	})
}

func (t *Triangle) localIntersect(ray core.Ray, object *Object) []Intersection {
	tt, u, v, ok := mollerTrumbore(ray, t.P1, t.E1, t.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(tt, object, u, v)}
}

func (t *Triangle) localNormalAt(core.Tuple, *Intersection) core.Tuple {
	return t.Normal
}

func (t *Triangle) prepareBounds(o *Object) {
	o.Bounds = triangleBounds(t.P1, t.P2, t.P3)
}

// SmoothTriangle interpolates three vertex normals by the hit's
// barycentric coordinates instead of using the flat face normal
type SmoothTriangle struct {
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	e1, e2     core.Tuple
}

// NewSmoothTriangle creates a smooth triangle object from three points and
// their vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *Object {
	return newObject(&SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		e1: p2.Subtract(p1),
		e2: p3.Subtract(p1),
	})
}

func (t *SmoothTriangle) localIntersect(ray core.Ray, object *Object) []Intersection {
	tt, u, v, ok := mollerTrumbore(ray, t.P1, t.e1, t.e2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(tt, object, u, v)}
}

func (t *SmoothTriangle) localNormalAt(_ core.Tuple, hit *Intersection) core.Tuple {
	return t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
}

func (t *SmoothTriangle) prepareBounds(o *Object) {
	o.Bounds = triangleBounds(t.P1, t.P2, t.P3)
}

// mollerTrumbore runs the Moller-Trumbore intersection against a triangle
// given by its first point and two edges. Near-parallel rays are rejected
// by the determinant epsilon test; u and v gate the hit to the face.
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	return f * e2.Dot(originCrossE1), u, v, true
}

func triangleBounds(p1, p2, p3 core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(
			math.Min(p1.X, math.Min(p2.X, p3.X)),
			math.Min(p1.Y, math.Min(p2.Y, p3.Y)),
			math.Min(p1.Z, math.Min(p2.Z, p3.Z)),
		),
		Max: core.NewPoint(
			math.Max(p1.X, math.Max(p2.X, p3.X)),
			math.Max(p1.Y, math.Max(p2.Y, p3.Y)),
			math.Max(p1.Z, math.Max(p2.Z, p3.Z)),
		),
	}
}
