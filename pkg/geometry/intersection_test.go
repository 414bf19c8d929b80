package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestHit(t *testing.T) {
	s := NewSphere()
	tests := []struct {
		name     string
		ts       []float64
		expected float64
		ok       bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest nonnegative of many", []float64{5, 7, -3, 2}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := make([]Intersection, len(tt.ts))
			for i, tv := range tt.ts {
				xs[i] = NewIntersection(tv, s)
			}

			hit, ok := Hit(xs)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && hit.T != tt.expected {
				t.Errorf("Expected hit at t=%f, got %f", tt.expected, hit.T)
			}
		})
	}
}

func TestPrepareComputations_Outside(t *testing.T) {
	s := NewSphere()
	i := NewIntersection(4, s)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	comps := i.PrepareComputations(ray, []Intersection{i})
	if comps.T != i.T || comps.Object != s {
		t.Error("Computations should carry the hit's t and object")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0, 0, -1), got %v", comps.Point)
	}
	if !comps.Eyev.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eyev (0, 0, -1), got %v", comps.Eyev)
	}
	if !comps.Normalv.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0, 0, -1), got %v", comps.Normalv)
	}
	if comps.Inside {
		t.Error("Hit from outside should not be flagged inside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	s := NewSphere()
	i := NewIntersection(1, s)
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))

	comps := i.PrepareComputations(ray, []Intersection{i})
	if !comps.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0, 0, 1), got %v", comps.Point)
	}
	if !comps.Inside {
		t.Error("Hit from inside should be flagged inside")
	}
	// The normal is inverted to face the eye.
	if !comps.Normalv.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0, 0, -1), got %v", comps.Normalv)
	}
}

func TestPrepareComputations_OverPoint(t *testing.T) {
	s := NewSphere().WithTransform(core.Translation(0, 0, 1))
	i := NewIntersection(5, s)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	comps := i.PrepareComputations(ray, []Intersection{i})
	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Over point should sit in front of the surface, got z=%g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Error("Over point should be offset from the surface point")
	}
}

func TestPrepareComputations_UnderPoint(t *testing.T) {
	s := NewGlassSphere().WithTransform(core.Translation(0, 0, 1))
	i := NewIntersection(5, s)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	comps := i.PrepareComputations(ray, []Intersection{i})
	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("Under point should sit behind the surface, got z=%g", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Error("Under point should be offset from the surface point")
	}
}

func TestPrepareComputations_Reflectv(t *testing.T) {
	p := NewPlane()
	i := NewIntersection(math.Sqrt2, p)
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))

	comps := i.PrepareComputations(ray, []Intersection{i})
	if !comps.Reflectv.Equals(core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("Expected reflectv (0, %f, %f), got %v", math.Sqrt2/2, math.Sqrt2/2, comps.Reflectv)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere().WithTransform(core.Scaling(2, 2, 2))
	a.Material.RefractiveIndex = 1.5
	b := NewGlassSphere().WithTransform(core.Translation(0, 0, -0.25))
	b.Material.RefractiveIndex = 2.0
	c := NewGlassSphere().WithTransform(core.Translation(0, 0, 0.25))
	c.Material.RefractiveIndex = 2.5

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := []Intersection{
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for idx, want := range expected {
		comps := xs[idx].PrepareComputations(ray, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("Intersection %d: expected n1=%g n2=%g, got n1=%g n2=%g",
				idx, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick_TotalInternalReflection(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0, math.Sqrt2/2), core.NewVector(0, 1, 0))
	xs := []Intersection{
		NewIntersection(-math.Sqrt2/2, s),
		NewIntersection(math.Sqrt2/2, s),
	}

	comps := xs[1].PrepareComputations(ray, xs)
	if got := comps.Schlick(); got != 1.0 {
		t.Errorf("Expected full reflectance under total internal reflection, got %f", got)
	}
}

func TestSchlick_PerpendicularRay(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	xs := []Intersection{
		NewIntersection(-1, s),
		NewIntersection(1, s),
	}

	comps := xs[1].PrepareComputations(ray, xs)
	if got := comps.Schlick(); !core.FloatEquals(got, 0.04) {
		t.Errorf("Expected reflectance 0.04, got %f", got)
	}
}

func TestSchlick_SmallAngleN2GreaterThanN1(t *testing.T) {
	s := NewGlassSphere()
	ray := core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1))
	xs := []Intersection{NewIntersection(1.8589, s)}

	comps := xs[0].PrepareComputations(ray, xs)
	if got := comps.Schlick(); !core.FloatEquals(got, 0.48873) {
		t.Errorf("Expected reflectance 0.48873, got %f", got)
	}
}
