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

package gradient

import "math"

// Easing maps the position within a segment of a gradient, in the range
// [0, 1], to the interpolation weight of the segment's end colour.
// An easing function should map 0 to 0 and 1 to 1.  Results outside
// [0, 1] are clipped.
type Easing func(x float64) float64

// Linear interpolates with constant speed.
func Linear(x float64) float64 {
	return x
}

// Smoothstep starts and ends each segment with zero speed, using the
// cubic polynomial 3x² - 2x³.
func Smoothstep(x float64) float64 {
	return x * x * (3 - 2*x)
}

// Power returns the easing function x ↦ x^n.  This is the exponential
// interpolation used for shadings in PostScript and PDF.
// Exponents larger than 1 delay the transition, exponents between 0 and 1
// advance it.  The exponent must be positive.
func Power(n float64) Easing {
	switch n {
	case 1:
		return Linear
	case 2:
		return func(x float64) float64 { return x * x }
	default:
		return func(x float64) float64 { return math.Pow(x, n) }
	}
}
