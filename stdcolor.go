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

package colorimetry

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/illuminant"
)

// RGBA implements the [color.Color] interface.  The colour is converted to
// sRGB, clamped to the sRGB gamut and returned as alpha-premultiplied 16-bit
// values.
func (c Color) RGBA() (r, g, b, a uint32) {
	s := c.To(SRGB)
	conv := func(x float64) uint32 {
		return uint32(math.Round(clip(x, 0, 1) * 0xffff))
	}
	a = conv(s.alpha)
	r = conv(s.v[0] * s.alpha)
	g = conv(s.v[1] * s.alpha)
	b = conv(s.v[2] * s.alpha)
	return r, g, b, a
}

// FromStd converts a colour from the standard library to an sRGB colour.
// If x is already a [Color], it is returned unchanged.
func FromStd(x color.Color) Color {
	if c, ok := x.(Color); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(x).(color.NRGBA64)
	return Color{
		space: SRGB,
		v: f64.Vec3{
			float64(n.R) / 0xffff,
			float64(n.G) / 0xffff,
			float64(n.B) / 0xffff,
		},
		alpha: float64(n.A) / 0xffff,
		white: illuminant.Default,
	}
}

// Model converts arbitrary colours to [Color] values in sRGB.
var Model color.Model = color.ModelFunc(func(x color.Color) color.Color {
	return FromStd(x)
})
