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
)

// RGBToCMY converts RGB values to the subtractive primaries cyan, magenta
// and yellow.
func RGBToCMY(rgb f64.Vec3) f64.Vec3 {
	return f64.Vec3{1 - rgb[0], 1 - rgb[1], 1 - rgb[2]}
}

// CMYToRGB is the inverse of [RGBToCMY].
func CMYToRGB(cmy f64.Vec3) f64.Vec3 {
	return f64.Vec3{1 - cmy[0], 1 - cmy[1], 1 - cmy[2]}
}

// RGBToCMYK converts RGB values to CMYK using the naive device formula,
// with maximal black generation.
func RGBToCMYK(rgb f64.Vec3) (c, m, y, k float64) {
	k = 1 - math.Max(math.Max(rgb[0], rgb[1]), rgb[2])
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - rgb[0] - k) / (1 - k)
	m = (1 - rgb[1] - k) / (1 - k)
	y = (1 - rgb[2] - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB converts CMYK values to RGB using the naive device formula.
func CMYKToRGB(c, m, y, k float64) f64.Vec3 {
	return f64.Vec3{
		(1 - c) * (1 - k),
		(1 - m) * (1 - k),
		(1 - y) * (1 - k),
	}
}
