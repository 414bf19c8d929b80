package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object wraps any shape payload with a material, a transform and its
// cached inverses, the cached nested world-to-object transforms, and a
// bounding box. Objects are built with the chained constructors, then
// Prepare must run once on each scene root before rendering.
type Object struct {
	Material material.Material
	Bounds   Bounds

	transform        core.Matrix
	transformInverse core.Matrix
	worldToObject    core.Matrix
	objectToWorld    core.Matrix

	shape shape
}

func newObject(s shape) *Object {
	return &Object{
		Material:         material.Default(),
		Bounds:           DefaultBounds(),
		transform:        core.Identity(),
		transformInverse: core.Identity(),
		worldToObject:    core.Identity(),
		objectToWorld:    core.Identity(),
		shape:            s,
	}
}

// WithTransform attaches a transform, caching its inverse and the inverse
// transpose. The nested world/object composites are reset to the local
// caches; Prepare recomputes them for objects inside a hierarchy.
func (o *Object) WithTransform(transform core.Matrix) *Object {
	inverse := transform.Inverse()
	o.transform = transform
	o.transformInverse = inverse
	o.worldToObject = inverse
	o.objectToWorld = inverse.Transpose()
	return o
}

// SetMaterial assigns the material to this object and every descendant.
// Loaded meshes use this to restyle all their triangles at once.
func (o *Object) SetMaterial(m material.Material) {
	o.Material = m
	switch s := o.shape.(type) {
	case *Group:
		for _, c := range s.Children {
			c.SetMaterial(m)
		}
	case *CSG:
		s.Left.SetMaterial(m)
		s.Right.SetMaterial(m)
	}
}

// MadeOfGlass replaces the material with the glass preset
func (o *Object) MadeOfGlass() *Object {
	o.Material = material.Glass()
	return o
}

// Transform returns the attached transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// TransformInverse returns the cached inverse of the attached transform
func (o *Object) TransformInverse() core.Matrix {
	return o.transformInverse
}

// Prepare walks the object tree once, recomputing bounds bottom-up and the
// nested transform caches top-down. It is idempotent on an unmodified tree
// and must run again after any transform or geometry change.
func (o *Object) Prepare() {
	o.PrepareBounds()
	o.PrepareTransform()
}

// PrepareBounds recomputes this object's local bounds, recursing into
// aggregate children first
func (o *Object) PrepareBounds() {
	o.shape.prepareBounds(o)
}

// PrepareTransform pushes the composed world/object transforms down the
// tree, making per-intersection space conversions a single cached lookup
func (o *Object) PrepareTransform() {
	switch s := o.shape.(type) {
	case *Group:
		s.prepareChildTransforms(o)
	case *CSG:
		s.prepareChildTransforms(o)
	}
}

// WorldToObject converts a world-space point into this object's local
// space, through every ancestor transform
func (o *Object) WorldToObject(worldPoint core.Tuple) core.Tuple {
	return o.worldToObject.MultiplyTuple(worldPoint)
}

// NormalToWorld transports a local-space normal back to world space via the
// inverse transpose and renormalizes; non-uniform scaling breaks length
func (o *Object) NormalToWorld(objectNormal core.Tuple) core.Tuple {
	return o.objectToWorld.MultiplyTuple(objectNormal).ToVector().Normalize()
}

// Intersect transforms the ray into local space and delegates to the shape
func (o *Object) Intersect(ray core.Ray) []Intersection {
	localRay := ray.Transform(o.transformInverse)
	return o.shape.localIntersect(localRay, o)
}

// NormalAt returns the world-space surface normal at a world-space point.
// The hit is needed for smooth triangles, which interpolate vertex normals.
func (o *Object) NormalAt(worldPoint core.Tuple, hit *Intersection) core.Tuple {
	localPoint := o.WorldToObject(worldPoint)
	localNormal := o.shape.localNormalAt(localPoint, hit)
	return o.NormalToWorld(localNormal)
}

// Includes reports whether other is this object or a descendant of it.
// Aggregates recompute containment top-down; children hold no parent links.
func (o *Object) Includes(other *Object) bool {
	if o == other {
		return true
	}
	switch s := o.shape.(type) {
	case *Group:
		for _, c := range s.Children {
			if c.Includes(other) {
				return true
			}
		}
	case *CSG:
		return s.Left.Includes(other) || s.Right.Includes(other)
	}
	return false
}

// AsSphere returns the sphere payload, panicking on any other kind.
// Requesting the wrong view signals a scene construction bug.
func (o *Object) AsSphere() *Sphere {
	return asKind[*Sphere](o, "sphere")
}

// AsPlane returns the plane payload, panicking on any other kind
func (o *Object) AsPlane() *Plane {
	return asKind[*Plane](o, "plane")
}

// AsCube returns the cube payload, panicking on any other kind
func (o *Object) AsCube() *Cube {
	return asKind[*Cube](o, "cube")
}

// AsCylinder returns the cylinder payload, panicking on any other kind
func (o *Object) AsCylinder() *Cylinder {
	return asKind[*Cylinder](o, "cylinder")
}

// AsCone returns the cone payload, panicking on any other kind
func (o *Object) AsCone() *Cone {
	return asKind[*Cone](o, "cone")
}

// AsTriangle returns the triangle payload, panicking on any other kind
func (o *Object) AsTriangle() *Triangle {
	return asKind[*Triangle](o, "triangle")
}

// AsSmoothTriangle returns the smooth triangle payload, panicking on any other kind
func (o *Object) AsSmoothTriangle() *SmoothTriangle {
	return asKind[*SmoothTriangle](o, "smooth triangle")
}

// AsGroup returns the group payload, panicking on any other kind
func (o *Object) AsGroup() *Group {
	return asKind[*Group](o, "group")
}

// AsCSG returns the CSG payload, panicking on any other kind
func (o *Object) AsCSG() *CSG {
	return asKind[*CSG](o, "csg")
}

func asKind[T shape](o *Object, name string) T {
	s, ok := o.shape.(T)
	if !ok {
		panic("geometry: object is not a " + name)
	}
	return s
}
