package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewSoftShadowScene builds a sphere and a pillar on a bare floor, lit by a
// spherical area light and a narrow spot light. The area light gives the
// shadows penumbras; more shadow samples smooth them at the cost of render
// time.
func NewSoftShadowScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(0.9, 0.85, 0.8)
	floor.Material.Specular = 0

	ball := geometry.NewSphere().WithTransform(core.Translation(-1.2, 1, 0))
	ball.Material.Color = core.NewColor(0.8, 0.2, 0.2)
	ball.Material.Diffuse = 0.8
	ball.Material.Specular = 0.2

	pillar := geometry.NewCube().WithTransform(
		core.Translation(1.4, 1.5, 1).Multiply(core.Scaling(0.4, 1.5, 0.4)))
	pillar.Material.Color = core.NewColor(0.3, 0.4, 0.8)

	w := world.New()
	w.AddObject(floor, ball, pillar)
	w.AddLight(
		lights.NewSphere(core.NewPoint(-4, 6, -4), core.NewColor(0.7, 0.7, 0.7), 0.8, 32),
		lights.NewSpot(core.NewPoint(5, 8, -3), core.NewColor(0.4, 0.4, 0.35),
			core.NewVector(-5, -8, 3), math.Pi/8, 0.4),
	)

	camera := renderer.NewCamera(width, height, math.Pi/3).WithTransform(core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}
