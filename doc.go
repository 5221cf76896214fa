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

// Package colorimetry converts colours between colour spaces and compares
// them perceptually.
//
// A [Color] is an immutable value which combines three components, the
// [Space] these components refer to, an alpha value and a reference white.
// Colours are created using [New], [NewAlpha] or [NewWhite], which check
// that all components are finite and lie in the domain of the space:
//
//	c, err := colorimetry.New(colorimetry.SRGB, 1, 0.5, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	lab := c.To(colorimetry.Lab)
//	L, a, b := lab.Components()
//
// The following colour spaces are supported:
//
//	SRGB       sRGB, components in [0, 1]
//	LinearRGB  sRGB without transfer function, components in [0, 1]
//	HSV        hue in [0, 360), saturation and value in [0, 1]
//	HSL        hue in [0, 360), saturation and lightness in [0, 1]
//	CMY        1 - sRGB
//	XYZ        CIE 1931 XYZ with Y = 1 for the reference white
//	XYY        CIE xyY
//	Lab        CIE 1976 L*a*b*, L* in [0, 100]
//	LCh        cylindrical L*a*b*, hue in [0, 360)
//	Luv        CIE 1976 L*u*v*, L* in [0, 100]
//
// Conversions between the CIE based spaces use the reference white of the
// colour, D65 by default.  [Color.WithWhite] applies a chromatic adaptation
// transform to change the reference white.  Conversions into a space with a
// bounded domain clamp the result; [Color.Convert] reports when this
// happens.
//
// Colour differences are implemented in the sub-package deltae, gradients
// in the sub-package gradient.  The pure conversion formulas are available
// in the sub-package transform.
//
// All functions in this package are safe for concurrent use.
package colorimetry
