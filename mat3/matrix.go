// seehuhn.de/go/colorimetry - colour space conversions and colour differences
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package mat3 implements the 3x3 matrices used for linear colour space
// transformations.
package mat3

import (
	"golang.org/x/image/math/f64"
)

// Matrix is a 3x3 matrix in row major order.
//
// A column vector v = (v0, v1, v2) is transformed by M into M·v:
//
//	/ M0 M1 M2 \   / v0 \
//	| M3 M4 M5 | · | v1 |
//	\ M6 M7 M8 /   \ v2 /
//
// Matrices are values; none of the methods modify the receiver.
type Matrix f64.Mat3

// Identity is the identity matrix.
var Identity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Diag returns the diagonal matrix with the given diagonal entries.
func Diag(a, b, c float64) Matrix {
	return Matrix{a, 0, 0, 0, b, 0, 0, 0, c}
}

// FromColumns returns the matrix with columns c0, c1 and c2.
func FromColumns(c0, c1, c2 f64.Vec3) Matrix {
	return Matrix{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}
}

// Apply applies the matrix to the given vector.
func (M Matrix) Apply(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		M[0]*v[0] + M[1]*v[1] + M[2]*v[2],
		M[3]*v[0] + M[4]*v[1] + M[5]*v[2],
		M[6]*v[0] + M[7]*v[1] + M[8]*v[2],
	}
}

// Mul multiplies two matrices and returns the result.
// The result is equivalent to first applying M and then B,
// i.e. it is the matrix product B·M.
func (M Matrix) Mul(B Matrix) Matrix {
	var R Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[3*i+j] = B[3*i]*M[j] + B[3*i+1]*M[3+j] + B[3*i+2]*M[6+j]
		}
	}
	return R
}

// Det returns the determinant of M.
func (M Matrix) Det() float64 {
	return M[0]*(M[4]*M[8]-M[5]*M[7]) -
		M[1]*(M[3]*M[8]-M[5]*M[6]) +
		M[2]*(M[3]*M[7]-M[4]*M[6])
}

// Inv computes the inverse of M.
// The function panics if M is singular; callers which handle
// user-supplied matrices should check [Matrix.Det] first.
func (M Matrix) Inv() Matrix {
	det := M.Det()
	if det == 0 {
		panic("singular matrix")
	}
	invDet := 1 / det
	return Matrix{
		(M[4]*M[8] - M[5]*M[7]) * invDet,
		(M[2]*M[7] - M[1]*M[8]) * invDet,
		(M[1]*M[5] - M[2]*M[4]) * invDet,
		(M[5]*M[6] - M[3]*M[8]) * invDet,
		(M[0]*M[8] - M[2]*M[6]) * invDet,
		(M[2]*M[3] - M[0]*M[5]) * invDet,
		(M[3]*M[7] - M[4]*M[6]) * invDet,
		(M[1]*M[6] - M[0]*M[7]) * invDet,
		(M[0]*M[4] - M[1]*M[3]) * invDet,
	}
}
