package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane at y=0
type Plane struct{}

// NewPlane creates an xz plane object
func NewPlane() *Object {
	return newObject(&Plane{})
}

func (p *Plane) localIntersect(ray core.Ray, object *Object) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, object)}
}

func (p *Plane) localNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

func (p *Plane) prepareBounds(o *Object) {
	o.Bounds.Min = core.NewPoint(math.Inf(-1), -core.Epsilon, math.Inf(-1))
	o.Bounds.Max = core.NewPoint(math.Inf(1), core.Epsilon, math.Inf(1))
}
