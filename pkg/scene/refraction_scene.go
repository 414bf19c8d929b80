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

// NewRefractionScene builds a glass sphere with an air bubble inside it,
// hovering over a checkered floor. The bubble inverts the refraction and
// makes the checker pattern lens through the glass.
func NewRefractionScene(width, height int) *Scene {
	floor := geometry.NewPlane().WithTransform(core.Translation(0, -1, 0))
	floor.Material.Pattern = material.NewChecker(
		core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.15, 0.15, 0.15))
	floor.Material.Specular = 0

	glass := geometry.NewSphere().MadeOfGlass()
	glass.Material.Color = core.NewColor(0.05, 0.05, 0.05)
	glass.Material.Diffuse = 0.05
	glass.Material.Specular = 1
	glass.Material.Shininess = 300

	bubble := geometry.NewSphere().
		WithTransform(core.Scaling(0.5, 0.5, 0.5)).
		MadeOfGlass()
	bubble.Material.Color = core.NewColor(0.05, 0.05, 0.05)
	bubble.Material.Diffuse = 0.05
	bubble.Material.Specular = 1
	bubble.Material.Shininess = 300
	bubble.Material.RefractiveIndex = 1.0000034 // air

	w := world.New()
	w.AddObject(floor, glass, bubble)
	w.AddLight(lights.NewPoint(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	camera := renderer.NewCamera(width, height, math.Pi/6).WithTransform(core.ViewTransform(
		core.NewPoint(0, 4.5, 0.1),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 0, 1),
	))
	camera.MaxDepth = 8

	return &Scene{World: w, Camera: camera}
}
