package core

import "testing"

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equals(NewPoint(4, 6, 8)) || !translated.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("Translating a ray: got %v", translated)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(NewPoint(2, 6, 12)) || !scaled.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("Scaling a ray: got %v", scaled)
	}
}

func TestColor_Arithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Equals(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Adding colors: got %v", got)
	}
	if got := c1.Subtract(c2); !got.Equals(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Subtracting colors: got %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).MultiplyScalar(2); !got.Equals(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Scaling a color: got %v", got)
	}
	if got := NewColor(1, 0.2, 0.4).Multiply(NewColor(0.9, 1, 0.1)); !got.Equals(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Hadamard product: got %v", got)
	}
}
