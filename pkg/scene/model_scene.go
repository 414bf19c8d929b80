package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// newModelScene places a loaded mesh on a gray floor with a gold-ish
// material, framed by a point light over the camera's shoulder. The mesh is
// scaled to roughly unit size using its prepared bounds.
func newModelScene(model *geometry.Object, width, height int) *Scene {
	model.PrepareBounds()
	model = model.WithTransform(normalizingTransform(model.Bounds))

	gold := material.Default()
	gold.Color = core.NewColor(0.85, 0.7, 0.3)
	gold.Diffuse = 0.8
	gold.Specular = 0.4
	gold.Shininess = 50
	model.SetMaterial(gold)

	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(0.7, 0.7, 0.7)
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.05

	w := world.New()
	w.AddObject(floor, model)
	w.AddLight(lights.NewPoint(core.NewPoint(-5, 6, -6), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3).WithTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -3.5),
		core.NewPoint(0, 0.8, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}

// normalizingTransform scales the bounds to fit in a 2-unit cube and drops
// its bottom face onto the floor plane
func normalizingTransform(b geometry.Bounds) core.Matrix {
	size := math.Max(b.Max.X-b.Min.X, math.Max(b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z))
	if size == 0 {
		return core.Identity()
	}
	scale := 2 / size

	centerX := (b.Min.X + b.Max.X) / 2
	centerZ := (b.Min.Z + b.Max.Z) / 2
	return core.Scaling(scale, scale, scale).
		Multiply(core.Translation(-centerX, -b.Min.Y, -centerZ))
}
