package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCSG_Construction(t *testing.T) {
	s := NewSphere()
	c := NewCube()

	csg := NewCSG(Union, s, c).AsCSG()
	if csg.Operation != Union {
		t.Errorf("Expected union operation, got %v", csg.Operation)
	}
	if csg.Left != s || csg.Right != c {
		t.Error("CSG should hold its operands")
	}
}

func TestCSG_IntersectionAllowed(t *testing.T) {
	tests := []struct {
		op                               Operation
		leftHit, insideLeft, insideRight bool
		allowed                          bool
	}{
		{Union, true, true, true, false},
		{Union, true, true, false, true},
		{Union, true, false, true, false},
		{Union, true, false, false, true},
		{Union, false, true, true, false},
		{Union, false, true, false, false},
		{Union, false, false, true, true},
		{Union, false, false, false, true},
		{Intersect, true, true, true, true},
		{Intersect, true, true, false, false},
		{Intersect, true, false, true, true},
		{Intersect, true, false, false, false},
		{Intersect, false, true, true, true},
		{Intersect, false, true, false, true},
		{Intersect, false, false, true, false},
		{Intersect, false, false, false, false},
		{Difference, true, true, true, false},
		{Difference, true, true, false, true},
		{Difference, true, false, true, false},
		{Difference, true, false, false, true},
		{Difference, false, true, true, true},
		{Difference, false, true, false, true},
		{Difference, false, false, true, false},
		{Difference, false, false, false, false},
	}

	for _, tt := range tests {
		got := intersectionAllowed(tt.op, tt.leftHit, tt.insideLeft, tt.insideRight)
		if got != tt.allowed {
			t.Errorf("op=%v lhit=%v inl=%v inr=%v: expected %v, got %v",
				tt.op, tt.leftHit, tt.insideLeft, tt.insideRight, tt.allowed, got)
		}
	}
}

func TestCSG_FilterIntersections(t *testing.T) {
	tests := []struct {
		op       Operation
		expected []int // indices into the four-hit list
	}{
		{Union, []int{0, 3}},
		{Intersect, []int{1, 2}},
		{Difference, []int{0, 1}},
	}

	for _, tt := range tests {
		s1 := NewSphere()
		s2 := NewCube()
		c := NewCSG(tt.op, s1, s2).AsCSG()

		xs := []Intersection{
			NewIntersection(1, s1),
			NewIntersection(2, s2),
			NewIntersection(3, s1),
			NewIntersection(4, s2),
		}

		result := c.filterIntersections(xs)
		if len(result) != len(tt.expected) {
			t.Errorf("op=%v: expected %d intersections, got %d", tt.op, len(tt.expected), len(result))
			continue
		}
		for i, idx := range tt.expected {
			if result[i] != xs[idx] {
				t.Errorf("op=%v: expected intersection %d at position %d", tt.op, idx, i)
			}
		}
	}
}

func TestCSG_IntersectMiss(t *testing.T) {
	c := NewCSG(Union, NewSphere(), NewCube())
	c.Prepare()

	xs := c.Intersect(core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1)))
	if len(xs) != 0 {
		t.Errorf("Expected no intersections, got %d", len(xs))
	}
}

func TestCSG_IntersectHit(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere().WithTransform(core.Translation(0, 0, 0.5))
	c := NewCSG(Union, s1, s2)
	c.Prepare()

	xs := c.Intersect(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)))
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	assertIntersectionTs(t, xs, []float64{4, 6.5})
	if xs[0].Object != s1 || xs[1].Object != s2 {
		t.Error("Union surface should enter through s1 and leave through s2")
	}
}

func TestCSG_IncludesDescendants(t *testing.T) {
	inner := NewSphere()
	g := NewGroup()
	g.AsGroup().AddChild(inner)
	c := NewCSG(Difference, g, NewCube())

	if !c.Includes(inner) {
		t.Error("CSG should include a sphere nested under its left operand")
	}
	if c.Includes(NewSphere()) {
		t.Error("CSG should not include an unrelated sphere")
	}
}
