// Package world holds the scene graph and the recursive Whitted shading
// loop: intersection dispatch, shadowing, reflection and refraction.
package world

import (
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// World is a collection of objects and lights. Objects are scene roots;
// nested shapes live inside groups and CSGs, not in this list.
type World struct {
	Objects []*geometry.Object
	Lights  []lights.Light
}

// New creates an empty world
func New() *World {
	return &World{}
}

// AddObject appends a scene root object
func (w *World) AddObject(objects ...*geometry.Object) {
	w.Objects = append(w.Objects, objects...)
}

// AddLight appends a light source
func (w *World) AddLight(ls ...lights.Light) {
	w.Lights = append(w.Lights, ls...)
}

// Prepare readies every object tree for rendering. It must run after scene
// construction and before the first ray is cast.
func (w *World) Prepare() {
	for _, o := range w.Objects {
		o.Prepare()
	}
}

// Intersect collects the intersections of the ray with every object,
// sorted by distance
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, o := range w.Objects {
		xs = append(xs, o.Intersect(ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// ColorAt traces the ray into the scene and shades the nearest visible
// surface. Rays that hit nothing are black; remaining caps how many more
// reflection or refraction bounces may spawn.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black
	}
	comps := hit.PrepareComputations(ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared intersection: the Phong surface
// term summed over every light, plus the reflected and refracted
// contributions. Surfaces that are both reflective and transparent blend
// the two by the Schlick approximation of the Fresnel reflectance.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	material := comps.Object.Material

	surface := core.Black
	for _, light := range w.Lights {
		intensity := light.ShadowedIntensity(comps.OverPoint, w.hitDistance)
		surface = surface.Add(material.Lighting(
			comps.Object, light, comps.OverPoint, comps.Eyev, comps.Normalv, intensity))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if material.Reflective > 0 && material.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.MultiplyScalar(reflectance)).
			Add(refracted.MultiplyScalar(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor bounces a ray off the surface and scales the result by the
// material's reflectivity. Returns black on matte surfaces or when the
// bounce budget is spent.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflectv)
	return w.ColorAt(reflectRay, remaining-1).MultiplyScalar(reflective)
}

// RefractedColor bends a ray through the surface by Snell's law and scales
// the result by the material's transparency. Returns black on opaque
// surfaces, under total internal reflection, or when the bounce budget is
// spent.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material.Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normalv.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eyev.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	return w.ColorAt(refractRay, remaining-1).MultiplyScalar(transparency)
}

// hitDistance is the shadow-ray query handed to lights: the distance of the
// nearest hit along the ray, if any
func (w *World) hitDistance(ray core.Ray) (float64, bool) {
	hit, ok := geometry.Hit(w.Intersect(ray))
	if !ok {
		return 0, false
	}
	return hit.T, true
}
