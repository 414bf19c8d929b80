package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type patternKind int

const (
	stripeKind patternKind = iota
	gradientKind
	ringKind
	checkerKind
	testKind
)

// Pattern is a closed-form space-to-color function with its own transform,
// composed with the object's transform at sample time
type Pattern struct {
	kind             patternKind
	a, b             core.Color
	transformInverse core.Matrix
}

func newPattern(kind patternKind, a, b core.Color) *Pattern {
	return &Pattern{kind: kind, a: a, b: b, transformInverse: core.Identity()}
}

// NewStripe alternates between two colors along x
func NewStripe(a, b core.Color) *Pattern {
	return newPattern(stripeKind, a, b)
}

// NewGradient blends linearly from a to b along x
func NewGradient(a, b core.Color) *Pattern {
	return newPattern(gradientKind, a, b)
}

// NewRing alternates between two colors in concentric rings on the xz plane
func NewRing(a, b core.Color) *Pattern {
	return newPattern(ringKind, a, b)
}

// NewChecker alternates between two colors in a 3D checkerboard
func NewChecker(a, b core.Color) *Pattern {
	return newPattern(checkerKind, a, b)
}

// newTest reports the sample point as a color, for transform tests
func newTest() *Pattern {
	return newPattern(testKind, core.Black, core.Black)
}

// WithTransform returns the pattern with its transform replaced
func (p *Pattern) WithTransform(transform core.Matrix) *Pattern {
	q := *p
	q.transformInverse = transform.Inverse()
	return &q
}

// ColorAtObject samples the pattern at a world-space point on an object,
// mapping through object-local then pattern-local space
func (p *Pattern) ColorAtObject(object Transformable, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.transformInverse.MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// ColorAt samples the pattern at a pattern-space point
func (p *Pattern) ColorAt(point core.Tuple) core.Color {
	switch p.kind {
	case stripeKind:
		if int(math.Floor(point.X))%2 == 0 {
			return p.a
		}
		return p.b
	case gradientKind:
		fraction := point.X - math.Floor(point.X)
		return p.a.Add(p.b.Subtract(p.a).MultiplyScalar(fraction))
	case ringKind:
		if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
			return p.a
		}
		return p.b
	case checkerKind:
		if int(math.Floor(point.X)+math.Floor(point.Y)+math.Floor(point.Z))%2 == 0 {
			return p.a
		}
		return p.b
	default:
		return core.NewColor(point.X, point.Y, point.Z)
	}
}
