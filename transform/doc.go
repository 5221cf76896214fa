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

// Package transform implements the elementary conversions between colour
// spaces.
//
// All functions in this package are pure: they only depend on their
// arguments and can be called concurrently.  Colours are passed as
// [f64.Vec3] values using the following conventions:
//   - sRGB, linear RGB, CMY: components in [0, 1]
//   - HSV, HSL: hue in degrees [0, 360), the other components in [0, 1]
//   - XYZ: relative tristimulus values, Y = 1 for the reference white
//   - xyY: chromaticity coordinates x, y followed by the luminance Y
//   - L*a*b*, L*u*v*: L* in [0, 100]
//   - LCh: L* in [0, 100], chroma C* ≥ 0, hue in degrees [0, 360)
//
// The functions do not clamp their results.  Values outside the nominal
// ranges are passed through, so that chains of conversions are invertible
// even for colours outside the sRGB gamut.  Finite inputs always give finite
// outputs.
package transform
