// Package material implements the Phong reflectance model and the
// closed-form color patterns applied in object-local space.
package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Transformable maps world-space points into an object's local space.
// Implemented by geometry.Object; patterns need nothing else from it.
type Transformable interface {
	WorldToObject(core.Tuple) core.Tuple
}

// Material holds the Phong reflectance coefficients for a surface
type Material struct {
	Pattern         *Pattern
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the standard matte white material
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Glass returns a plausible transparent, reflective material
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	m.Reflective = 0.9
	return m
}

// Lighting computes the Phong contribution of a single light. The ambient
// term always uses the light's nominal intensity; diffuse and specular are
// scaled by the sampled shadow intensity, which is fractional for area
// lights and black when the point is fully occluded.
func (m Material) Lighting(object Transformable, light lights.Light, point, eyev, normalv core.Tuple, intensity core.Color) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.ColorAtObject(object, point)
	}

	ambient := color.Multiply(light.Intensity).MultiplyScalar(m.Ambient)
	if intensity.Equals(core.Black) {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	effective := color.Multiply(intensity)
	diffuse := effective.MultiplyScalar(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}
	specular := intensity.MultiplyScalar(m.Specular * math.Pow(reflectDotEye, m.Shininess))

	return ambient.Add(diffuse).Add(specular)
}
