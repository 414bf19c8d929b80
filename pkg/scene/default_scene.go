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

// NewDefaultScene builds the three-sphere showcase: a checkered floor, a
// large reflective sphere flanked by two smaller matte ones, lit by a
// single point light.
func NewDefaultScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floor.Material.Pattern = material.NewChecker(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.4, 0.4, 0.4))
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.1

	middle := geometry.NewSphere().WithTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Color = core.NewColor(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	middle.Material.Reflective = 0.3

	right := geometry.NewSphere().WithTransform(
		core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	right.Material.Color = core.NewColor(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left := geometry.NewSphere().WithTransform(
		core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	left.Material.Color = core.NewColor(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3

	w := world.New()
	w.AddObject(floor, middle, right, left)
	w.AddLight(lights.NewPoint(core.NewPoint(-10, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3).WithTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}
