package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Operation selects how a CSG combines its two operands
type Operation int

// CSG operations
const (
	Union Operation = iota
	Intersect
	Difference
)

// CSG is the boolean combination of exactly two child objects. The filter
// is exact for closed, consistently-oriented operands; behavior on open or
// non-manifold operands is undefined.
type CSG struct {
	Operation Operation
	Left      *Object
	Right     *Object
}

// NewCSG creates a CSG object combining left and right with the operation
func NewCSG(op Operation, left, right *Object) *Object {
	return newObject(&CSG{Operation: op, Left: left, Right: right})
}

func (c *CSG) localIntersect(ray core.Ray, object *Object) []Intersection {
	if !object.Bounds.IntersectRay(ray) {
		return nil
	}

	xs := append(c.Left.Intersect(ray), c.Right.Intersect(ray)...)
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return c.filterIntersections(xs)
}

func (c *CSG) localNormalAt(core.Tuple, *Intersection) core.Tuple {
	panic("geometry: normals are computed on csg children, never on the csg")
}

func (c *CSG) prepareBounds(o *Object) {
	o.Bounds = emptyBounds()
	for _, child := range []*Object{c.Left, c.Right} {
		child.PrepareBounds()
		o.Bounds.Merge(child.Bounds.Transform(child.transform))
	}
}

func (c *CSG) prepareChildTransforms(o *Object) {
	for _, child := range []*Object{c.Left, c.Right} {
		child.worldToObject = child.transformInverse.Multiply(o.worldToObject)
		child.objectToWorld = o.objectToWorld.Multiply(child.transformInverse.Transpose())
		child.PrepareTransform()
	}
}

// filterIntersections streams the sorted hit list through the boolean
// filter, tracking whether the scan point is currently inside each operand
func (c *CSG) filterIntersections(xs []Intersection) []Intersection {
	insideLeft := false
	insideRight := false

	result := make([]Intersection, 0, len(xs))
	for _, x := range xs {
		leftHit := c.Left.Includes(x.Object)
		if intersectionAllowed(c.Operation, leftHit, insideLeft, insideRight) {
			result = append(result, x)
		}
		if leftHit {
			insideLeft = !insideLeft
		} else {
			insideRight = !insideRight
		}
	}
	return result
}

// intersectionAllowed is the CSG membership rule: whether a boundary
// crossing belongs to the combined surface, given which operand was hit
// and which operands the scan point is inside
func intersectionAllowed(op Operation, leftHit, insideLeft, insideRight bool) bool {
	switch op {
	case Union:
		return (leftHit && !insideRight) || (!leftHit && !insideLeft)
	case Intersect:
		return (leftHit && insideRight) || (!leftHit && insideLeft)
	default: // Difference
		return (leftHit && !insideRight) || (!leftHit && insideLeft)
	}
}
