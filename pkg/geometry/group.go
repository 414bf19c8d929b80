package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is an ordered list of child objects intersected as one. Children
// keep no back-reference to the group; containment queries recompute
// top-down from the root.
type Group struct {
	Children []*Object
}

// NewGroup creates an empty group object
func NewGroup() *Object {
	return newObject(&Group{})
}

// AddChild appends a child object to the group
func (g *Group) AddChild(child *Object) {
	g.Children = append(g.Children, child)
}

func (g *Group) localIntersect(ray core.Ray, object *Object) []Intersection {
	if !object.Bounds.IntersectRay(ray) {
		return nil
	}

	var xs []Intersection
	for _, c := range g.Children {
		xs = append(xs, c.Intersect(ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

func (g *Group) localNormalAt(core.Tuple, *Intersection) core.Tuple {
	panic("geometry: normals are computed on group children, never on the group")
}

func (g *Group) prepareBounds(o *Object) {
	o.Bounds = emptyBounds()
	for _, c := range g.Children {
		c.PrepareBounds()
		o.Bounds.Merge(c.Bounds.Transform(c.transform))
	}
}

func (g *Group) prepareChildTransforms(o *Object) {
	for _, c := range g.Children {
		c.worldToObject = c.transformInverse.Multiply(o.worldToObject)
		c.objectToWorld = o.objectToWorld.Multiply(c.transformInverse.Transpose())
		c.PrepareTransform()
	}
}
