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

// SRGBToLinear removes the sRGB transfer function from a single component.
//
// The piecewise definition follows IEC 61966-2-1: a linear segment with
// slope 1/12.92 below 0.04045 and the power 2.4 above.
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to a single component.
// This is the inverse of [SRGBToLinear].
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// DecodeSRGB applies [SRGBToLinear] to all three components.
func DecodeSRGB(rgb f64.Vec3) f64.Vec3 {
	return f64.Vec3{SRGBToLinear(rgb[0]), SRGBToLinear(rgb[1]), SRGBToLinear(rgb[2])}
}

// EncodeSRGB applies [LinearToSRGB] to all three components.
func EncodeSRGB(rgb f64.Vec3) f64.Vec3 {
	return f64.Vec3{LinearToSRGB(rgb[0]), LinearToSRGB(rgb[1]), LinearToSRGB(rgb[2])}
}

// GammaToLinear removes a pure power-law transfer function with the given
// gamma, e.g. 2.2 for DeviceRGB or 563/256 for Adobe RGB.
// Negative values are mapped symmetrically.
func GammaToLinear(v, gamma float64) float64 {
	if v < 0 {
		return -math.Pow(-v, gamma)
	}
	return math.Pow(v, gamma)
}

// LinearToGamma is the inverse of [GammaToLinear].
func LinearToGamma(v, gamma float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1/gamma)
	}
	return math.Pow(v, 1/gamma)
}
