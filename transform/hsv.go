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

// NormalizeHue maps an angle in degrees into the range [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		// -1e-17 + 360 rounds to 360
		h = 0
	}
	return h
}

// hue computes the hue in degrees from the maximal component and the chroma.
func hue(r, g, b, max, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / chroma
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	return NormalizeHue(60 * h)
}

// RGBToHSV converts RGB values to hue, saturation and value.
// The hue of grey colours is 0.
func RGBToHSV(rgb f64.Vec3) f64.Vec3 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	chroma := max - min

	var s float64
	if max > 0 {
		s = chroma / max
	}
	return f64.Vec3{hue(r, g, b, max, chroma), s, max}
}

// HSVToRGB converts hue, saturation and value to RGB.
func HSVToRGB(hsv f64.Vec3) f64.Vec3 {
	c := hsv[2] * hsv[1]
	return hueToRGB(hsv[0], c, hsv[2]-c)
}

// RGBToHSL converts RGB values to hue, saturation and lightness.
// The hue of grey colours is 0.
func RGBToHSL(rgb f64.Vec3) f64.Vec3 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	chroma := max - min
	l := (max + min) / 2

	var s float64
	if d := 1 - math.Abs(2*l-1); chroma > 0 && d > 0 {
		s = chroma / d
	}
	return f64.Vec3{hue(r, g, b, max, chroma), s, l}
}

// HSLToRGB converts hue, saturation and lightness to RGB.
func HSLToRGB(hsl f64.Vec3) f64.Vec3 {
	c := (1 - math.Abs(2*hsl[2]-1)) * hsl[1]
	return hueToRGB(hsl[0], c, hsl[2]-c/2)
}

// hueToRGB maps a hue angle, a chroma and the offset m of the darkest
// component to RGB.
func hueToRGB(h, c, m float64) f64.Vec3 {
	h = NormalizeHue(h) / 60
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return f64.Vec3{r + m, g + m, b + m}
}
