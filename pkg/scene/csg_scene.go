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

// NewCSGScene builds two boolean solids over a striped floor: a lens made
// by intersecting two spheres, and a die made by rounding a cube with a
// sphere and boring a cylinder through it.
func NewCSGScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floor.Material.Pattern = material.NewStripe(
		core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.5, 0.55, 0.6)).
		WithTransform(core.RotationY(math.Pi / 4))
	floor.Material.Specular = 0

	w := world.New()
	w.AddObject(floor, lens(), die())
	w.AddLight(lights.NewPoint(core.NewPoint(-8, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3).WithTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}

func lens() *geometry.Object {
	left := geometry.NewSphere().WithTransform(core.Translation(-0.4, 0, 0))
	left.Material.Color = core.NewColor(0.2, 0.3, 1)
	left.Material.Reflective = 0.2
	right := geometry.NewSphere().WithTransform(core.Translation(0.4, 0, 0))
	right.Material.Color = core.NewColor(0.2, 0.3, 1)
	right.Material.Reflective = 0.2

	return geometry.NewCSG(geometry.Intersect, left, right).
		WithTransform(core.Translation(-1.8, 1, 0.5))
}

func die() *geometry.Object {
	cube := geometry.NewCube()
	cube.Material.Color = core.NewColor(1, 0.3, 0.2)
	sphere := geometry.NewSphere().WithTransform(core.Scaling(1.4, 1.4, 1.4))
	sphere.Material.Color = core.NewColor(1, 0.3, 0.2)
	rounded := geometry.NewCSG(geometry.Intersect, cube, sphere)

	bore := geometry.NewCylinder().WithTransform(core.Scaling(0.5, 1, 0.5))
	bore.AsCylinder().Truncate(-2, 2, true)
	bore.Material.Color = core.NewColor(0.2, 0.2, 0.25)

	return geometry.NewCSG(geometry.Difference, rounded, bore).
		WithTransform(core.Translation(1.5, 1, 0.5).Multiply(core.RotationY(math.Pi / 6)))
}
