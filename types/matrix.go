package types

import "golang.org/x/image/math/f32"

// A 3x3 matrix stored in row-major order.
type Mat3 f32.Mat3

// Get the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Get element at row r, column c.
func (m Mat3) At(r, c int) float32 {
	return m[r*3+c]
}

// Multiply matrix with a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Add two matrices.
func (m Mat3) Add(m2 Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + m2[i]
	}
	return out
}

// Multiply each matrix element with a scalar.
func (m Mat3) Mul(s float32) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Build the outer product v * v^T.
func OuterProduct(v Vec3) Mat3 {
	return Mat3{
		v[0] * v[0], v[0] * v[1], v[0] * v[2],
		v[1] * v[0], v[1] * v[1], v[1] * v[2],
		v[2] * v[0], v[2] * v[1], v[2] * v[2],
	}
}
