// Package lights implements the light model: point lights plus the
// soft-shadow variants (spot, spherical area, cubic area).
package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// HitFunc reports the distance of the nearest hit along a shadow ray, if any.
// The world supplies it so lights stay decoupled from scene traversal.
type HitFunc func(core.Ray) (float64, bool)

type kind int

const (
	kindPoint kind = iota
	kindSpot
	kindSphere
	kindCube
)

// Light is a positioned light source. The kind tag selects how shadow
// visibility is computed; position and intensity are common to all kinds.
type Light struct {
	Position  core.Tuple
	Intensity core.Color

	kind kind

	// Spot parameters
	direction   core.Tuple
	width       float64 // hard cutoff half-angle, radians
	narrowWidth float64 // full-intensity half-angle
	fade        float64

	// Area parameters
	size    float64
	samples int
}

// NewPoint creates a point light with hard shadows
func NewPoint(position core.Tuple, intensity core.Color) Light {
	return Light{kind: kindPoint, Position: position, Intensity: intensity}
}

// NewSpot creates a spot light aimed along direction. Intensity fades
// smoothly between width*(1-fade) and width, and cuts off beyond width.
func NewSpot(position core.Tuple, intensity core.Color, direction core.Tuple, width, fade float64) Light {
	return Light{
		kind:        kindSpot,
		Position:    position,
		Intensity:   intensity,
		direction:   direction,
		width:       width,
		narrowWidth: width * (1 - fade),
		fade:        fade,
	}
}

// NewSphere creates a spherical area light of the given radius, sampled
// with the given number of shadow rays
func NewSphere(position core.Tuple, intensity core.Color, size float64, samples int) Light {
	return Light{kind: kindSphere, Position: position, Intensity: intensity, size: size, samples: clampSamples(samples)}
}

// NewCube creates a cubic area light spanning [-size, size] on each axis,
// sampled with the given number of shadow rays
func NewCube(position core.Tuple, intensity core.Color, size float64, samples int) Light {
	return Light{kind: kindCube, Position: position, Intensity: intensity, size: size, samples: clampSamples(samples)}
}

// clampSamples keeps at least one shadow ray so the visibility average
// never divides by zero
func clampSamples(samples int) int {
	if samples < 1 {
		return 1
	}
	return samples
}

// ShadowedIntensity returns the light intensity reaching the given point.
// Point lights return black or full intensity; area lights return the
// average of binary visibility over their sample positions; spot lights
// apply an angular falloff on top of the hard shadow test.
func (l Light) ShadowedIntensity(point core.Tuple, hit HitFunc) core.Color {
	switch l.kind {
	case kindSpot:
		return l.spotIntensity(point, hit)
	case kindSphere:
		return l.sampledIntensity(point, hit, func() core.Tuple {
			return core.RandomVector(1).Normalize().Multiply(l.size)
		})
	case kindCube:
		return l.sampledIntensity(point, hit, func() core.Tuple {
			return core.RandomVector(l.size)
		})
	default:
		if isShadowed(l.Position, point, hit) {
			return core.Black
		}
		return l.Intensity
	}
}

func (l Light) spotIntensity(point core.Tuple, hit HitFunc) core.Color {
	angle := l.direction.Angle(point.Subtract(l.Position))
	if angle > l.width || isShadowed(l.Position, point, hit) {
		return core.Black
	}
	if angle > l.narrowWidth {
		return l.Intensity.MultiplyScalar(1 - (angle-l.narrowWidth)/(l.width-l.narrowWidth))
	}
	return l.Intensity
}

func (l Light) sampledIntensity(point core.Tuple, hit HitFunc, offset func() core.Tuple) core.Color {
	visible := 0
	for i := 0; i < l.samples; i++ {
		if !isShadowed(l.Position.Add(offset()), point, hit) {
			visible++
		}
	}
	return l.Intensity.MultiplyScalar(float64(visible) / float64(l.samples))
}

// isShadowed casts a ray from point toward lightPosition and reports
// whether anything blocks it strictly before the light
func isShadowed(lightPosition, point core.Tuple, hit HitFunc) bool {
	v := lightPosition.Subtract(point)
	distance := v.Magnitude()
	r := core.NewRay(point, v.Normalize())
	if t, ok := hit(r); ok && t < distance {
		return true
	}
	return false
}
