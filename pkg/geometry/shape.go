// Package geometry implements the shape model: primitives, groups and CSG
// combinations, all wrapped in a uniform Object carrying material, transform
// caches and bounds. Shapes work in their unit local frame; Object maps rays
// and normals between world and local space.
package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// shape is the closed set of geometry payloads. Keeping the interface
// unexported makes the sum of kinds exhaustive within this package: a new
// shape cannot be added from outside without a corresponding Object
// constructor and dispatch arm.
type shape interface {
	// localIntersect intersects a ray already transformed into the
	// shape's local frame, tagging results with the owning object.
	localIntersect(ray core.Ray, object *Object) []Intersection
	// localNormalAt returns the surface normal in local space. The hit
	// carries barycentric coordinates for smooth triangles; other shapes
	// ignore it.
	localNormalAt(point core.Tuple, hit *Intersection) core.Tuple
	// prepareBounds recomputes the local-space bounding box.
	prepareBounds(o *Object)
}
