package core

import "gonum.org/v1/gonum/mat"

// Matrix is a 4x4 affine transform
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Inverse returns the inverse of the matrix. It panics on a singular
// matrix: a non-invertible object transform is a scene construction bug,
// not a runtime condition.
func (m Matrix) Inverse() Matrix {
	data := make([]float64, 0, 16)
	for row := 0; row < 4; row++ {
		data = append(data, m[row][:]...)
	}
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, data)); err != nil {
		panic("core: matrix is not invertible")
	}
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = inv.At(row, col)
		}
	}
	return result
}

// Equals compares two matrices within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
