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

package illuminant

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/mat3"
)

// Method selects the cone response model used for chromatic adaptation.
type Method int

// These are the supported chromatic adaptation methods.
const (
	Bradford Method = iota
	VonKries
	XYZScaling
)

func (m Method) String() string {
	switch m {
	case Bradford:
		return "Bradford"
	case VonKries:
		return "von Kries"
	case XYZScaling:
		return "XYZ scaling"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// cone returns the matrix which maps XYZ to the cone response domain.
//
// http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html
func (m Method) cone() mat3.Matrix {
	switch m {
	case VonKries:
		return mat3.Matrix{
			0.4002400, 0.7076000, -0.0808100,
			-0.2263000, 1.1653200, 0.0457000,
			0.0000000, 0.0000000, 0.9182200,
		}
	case XYZScaling:
		return mat3.Identity
	default:
		return mat3.Matrix{
			0.8951000, 0.2664000, -0.1614000,
			-0.7502000, 1.7135000, 0.0367000,
			0.0389000, -0.0685000, 1.0296000,
		}
	}
}

// AdaptationMatrix returns the matrix which maps XYZ values relative to the
// white point src to the corresponding XYZ values relative to dst.
// The matrix maps src.XYZ to dst.XYZ.
func AdaptationMatrix(m Method, src, dst WhitePoint) mat3.Matrix {
	if src.XYZ == dst.XYZ {
		return mat3.Identity
	}
	cone := m.cone()
	s := cone.Apply(src.XYZ)
	d := cone.Apply(dst.XYZ)
	scale := mat3.Diag(d[0]/s[0], d[1]/s[1], d[2]/s[2])
	return cone.Mul(scale).Mul(cone.Inv())
}

// Adapt converts the XYZ value xyz, given relative to the white point src,
// into the corresponding XYZ value relative to dst, using the Bradford
// transform.
func Adapt(xyz f64.Vec3, src, dst WhitePoint) f64.Vec3 {
	if src.XYZ == dst.XYZ {
		return xyz
	}
	return AdaptationMatrix(Bradford, src, dst).Apply(xyz)
}
