package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "parallel ray never hits",
			origin:    core.NewPoint(0, 10, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "coplanar ray never hits",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "from above",
			origin:    core.NewPoint(0, 1, 0),
			direction: core.NewVector(0, -1, 0),
			expected:  []float64{1},
		},
		{
			name:      "from below",
			origin:    core.NewPoint(0, -1, 0),
			direction: core.NewVector(0, 1, 0),
			expected:  []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			xs := p.Intersect(core.NewRay(tt.origin, tt.direction))
			assertIntersectionTs(t, xs, tt.expected)
		})
	}
}

func TestPlane_NormalIsConstant(t *testing.T) {
	p := NewPlane()
	expected := core.NewVector(0, 1, 0)

	for _, point := range []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(10, 0, -10),
		core.NewPoint(-5, 0, 150),
	} {
		if got := p.NormalAt(point, nil); !got.Equals(expected) {
			t.Errorf("At %v: expected %v, got %v", point, expected, got)
		}
	}
}
