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

package transform

import (
	"math"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/illuminant"
)

// labDelta is the CIE constant δ = 6/29.  The cube-root branch of f(t) is
// used for t > δ³ ≈ 0.008856.
const labDelta = 6.0 / 29.0

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// XYZToLab converts XYZ values to CIE 1976 L*a*b*, relative to the given
// reference white.
func XYZToLab(xyz f64.Vec3, white illuminant.WhitePoint) f64.Vec3 {
	fx := labF(xyz[0] / white.XYZ[0])
	fy := labF(xyz[1] / white.XYZ[1])
	fz := labF(xyz[2] / white.XYZ[2])

	return f64.Vec3{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZ converts CIE 1976 L*a*b* values to XYZ, relative to the given
// reference white.  This is the exact inverse of [XYZToLab].
func LabToXYZ(lab f64.Vec3, white illuminant.WhitePoint) f64.Vec3 {
	fy := (lab[0] + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200

	return f64.Vec3{
		labFInv(fx) * white.XYZ[0],
		labFInv(fy) * white.XYZ[1],
		labFInv(fz) * white.XYZ[2],
	}
}

// LabToLCh converts L*a*b* to the cylindrical representation L*C*h.
// The hue of achromatic colours is 0.
func LabToLCh(lab f64.Vec3) f64.Vec3 {
	c := math.Hypot(lab[1], lab[2])
	h := 0.0
	if c > 0 {
		h = NormalizeHue(math.Atan2(lab[2], lab[1]) * 180 / math.Pi)
	}
	return f64.Vec3{lab[0], c, h}
}

// LChToLab is the inverse of [LabToLCh].
func LChToLab(lch f64.Vec3) f64.Vec3 {
	s, c := math.Sincos(lch[2] * math.Pi / 180)
	return f64.Vec3{lch[0], lch[1] * c, lch[1] * s}
}

// XYZToLuv converts XYZ values to CIE 1976 L*u*v*, relative to the given
// reference white.
func XYZToLuv(xyz f64.Vec3, white illuminant.WhitePoint) f64.Vec3 {
	l := 116*labF(xyz[1]/white.XYZ[1]) - 16

	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return f64.Vec3{l, 0, 0}
	}
	un, vn := uvPrime(white.XYZ)
	u := 4 * xyz[0] / d
	v := 9 * xyz[1] / d
	return f64.Vec3{l, 13 * l * (u - un), 13 * l * (v - vn)}
}

// LuvToXYZ is the inverse of [XYZToLuv].
func LuvToXYZ(luv f64.Vec3, white illuminant.WhitePoint) f64.Vec3 {
	y := labFInv((luv[0]+16)/116) * white.XYZ[1]
	if luv[0] == 0 {
		return f64.Vec3{0, y, 0}
	}

	un, vn := uvPrime(white.XYZ)
	u := luv[1]/(13*luv[0]) + un
	v := luv[2]/(13*luv[0]) + vn
	if v == 0 {
		return f64.Vec3{0, y, 0}
	}
	return f64.Vec3{
		y * 9 * u / (4 * v),
		y,
		y * (12 - 3*u - 20*v) / (4 * v),
	}
}

func uvPrime(xyz f64.Vec3) (float64, float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

// XYZToXYY converts XYZ values to the chromaticity coordinates x, y and the
// luminance Y.  For black, where the chromaticity is undefined, the
// chromaticity of the reference white is used.
func XYZToXYY(xyz f64.Vec3, white illuminant.WhitePoint) f64.Vec3 {
	s := xyz[0] + xyz[1] + xyz[2]
	if s == 0 {
		c := white.Chromaticity()
		return f64.Vec3{c.X, c.Y, 0}
	}
	return f64.Vec3{xyz[0] / s, xyz[1] / s, xyz[1]}
}

// XYYToXYZ is the inverse of [XYZToXYY].
func XYYToXYZ(xyY f64.Vec3) f64.Vec3 {
	x, y, Y := xyY[0], xyY[1], xyY[2]
	if y == 0 {
		return f64.Vec3{0, 0, 0}
	}
	return f64.Vec3{x * Y / y, Y, (1 - x - y) * Y / y}
}
