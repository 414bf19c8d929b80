package core

import "math"

// Epsilon is the tolerance used for all floating point comparisons.
// One fixed value balances robustness against self-intersection artifacts
// across the intersection solvers.
const Epsilon = 1e-4

// FloatEquals compares two floats within Epsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
