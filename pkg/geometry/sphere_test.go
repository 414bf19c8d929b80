package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "through the center",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{4, 6},
		},
		{
			name:      "at a tangent",
			origin:    core.NewPoint(0, 1, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{5, 5},
		},
		{
			name:      "missing entirely",
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "originating inside",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			origin:    core.NewPoint(0, 0, 5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			xs := s.Intersect(core.NewRay(tt.origin, tt.direction))
			assertIntersectionTs(t, xs, tt.expected)
		})
	}
}

func TestSphere_IntersectCountIsZeroOrTwo(t *testing.T) {
	// Tangency reports equal roots, so the count is always 0 or 2.
	s := NewSphere()
	for y := -3.0; y <= 3.0; y += 0.25 {
		xs := s.Intersect(core.NewRay(core.NewPoint(0, y, -5), core.NewVector(0, 0, 1)))
		if len(xs) != 0 && len(xs) != 2 {
			t.Fatalf("Expected 0 or 2 intersections at y=%f, got %d", y, len(xs))
		}
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere().WithTransform(core.Scaling(2, 2, 2))
	assertIntersectionTs(t, scaled.Intersect(r), []float64{3, 7})

	translated := NewSphere().WithTransform(core.Translation(5, 0, 0))
	assertIntersectionTs(t, translated.Intersect(r), nil)
}

func TestSphere_NormalAt(t *testing.T) {
	sqrt3over3 := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		sphere   *Object
		point    core.Tuple
		expected core.Tuple
	}{
		{
			name:     "on the x axis",
			sphere:   NewSphere(),
			point:    core.NewPoint(1, 0, 0),
			expected: core.NewVector(1, 0, 0),
		},
		{
			name:     "at a nonaxial point",
			sphere:   NewSphere(),
			point:    core.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3),
			expected: core.NewVector(sqrt3over3, sqrt3over3, sqrt3over3),
		},
		{
			name:     "on a translated sphere",
			sphere:   NewSphere().WithTransform(core.Translation(0, 1, 0)),
			point:    core.NewPoint(0, 1.70711, -0.70711),
			expected: core.NewVector(0, 0.70711, -0.70711),
		},
		{
			name:     "on a scaled and rotated sphere",
			sphere:   NewSphere().WithTransform(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5))),
			point:    core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2),
			expected: core.NewVector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sphere.NormalAt(tt.point, nil)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !got.Equals(got.Normalize()) {
				t.Error("Normal should be normalized")
			}
		})
	}
}

func TestGlassSphere_Material(t *testing.T) {
	s := NewGlassSphere()
	if s.Material.Transparency != 1 || s.Material.RefractiveIndex != 1.5 {
		t.Errorf("Expected glass material, got %+v", s.Material)
	}
}

// assertIntersectionTs compares the t values of a hit list
func assertIntersectionTs(t *testing.T, xs []Intersection, expected []float64) {
	t.Helper()
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i := range xs {
		if !core.FloatEquals(xs[i].T, expected[i]) {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected[i], xs[i].T)
		}
	}
}
