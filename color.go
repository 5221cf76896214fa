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
	"math"
	"strings"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/illuminant"
	"seehuhn.de/go/colorimetry/internal/float"
	"seehuhn.de/go/colorimetry/transform"
)

// Epsilon is the tolerance used by [Color.Equal].
const Epsilon = 1e-6

// rangeSlack is the amount by which a component may exceed the domain of
// its space before it is considered invalid (in [NewWhite]) or before a
// conversion reports clamping.
const rangeSlack = 1e-9

// Color is a colour in one of the supported colour spaces, together with
// an alpha value and the reference white for the CIE based coordinates.
//
// Color values are immutable and comparable.  The zero value is fully
// transparent black in sRGB, relative to D65.
type Color struct {
	space Space
	v     f64.Vec3
	alpha float64
	white illuminant.WhitePoint
}

// New returns an opaque colour in the given space, relative to the default
// white point D65.
func New(s Space, c1, c2, c3 float64) (Color, error) {
	return NewWhite(s, illuminant.Default, c1, c2, c3, 1)
}

// NewAlpha returns a colour with the given opacity, relative to the default
// white point D65.
func NewAlpha(s Space, c1, c2, c3, alpha float64) (Color, error) {
	return NewWhite(s, illuminant.Default, c1, c2, c3, alpha)
}

// NewWhite returns a colour in the given space, relative to the reference
// white w.
//
// All components must be finite.  Hue components are reduced modulo 360.
// The other components must lie within [Space.Domain]; values which exceed
// the domain by no more than 1e-9 are clamped, larger deviations are an
// error.  Alpha must be in [0, 1].
func NewWhite(s Space, w illuminant.WhitePoint, c1, c2, c3, alpha float64) (Color, error) {
	const op = "New"
	if !s.IsValid() {
		return Color{}, NewInvalidInputError(op, "space", "unknown colour space %d", int(s))
	}
	if !w.IsValid() {
		return Color{}, NewInvalidInputError(op, "white point", "%v", w)
	}

	v := f64.Vec3{c1, c2, c3}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Color{}, NewInvalidInputError(op, "component",
				"%s component %d is %g", s, i, x)
		}
	}
	if !(alpha >= -rangeSlack && alpha <= 1+rangeSlack) {
		return Color{}, NewInvalidInputError(op, "alpha", "%g ∉ [0,1]", alpha)
	}
	alpha = clip(alpha, 0, 1)

	dom := s.Domain()
	h := s.HueIndex()
	for i := range v {
		if i == h {
			v[i] = transform.NormalizeHue(v[i])
			continue
		}
		lo, hi := dom[i][0], dom[i][1]
		if v[i] < lo-rangeSlack || v[i] > hi+rangeSlack {
			return Color{}, NewInvalidInputError(op, "component",
				"%s component %d is %g ∉ [%g,%g]", s, i, v[i], lo, hi)
		}
		v[i] = clip(v[i], lo, hi)
	}

	return Color{space: s, v: v, alpha: alpha, white: w}, nil
}

// Must panics if err is non-nil and returns c otherwise.
// This is intended for colour constants in variable initialisations.
func Must(c Color, err error) Color {
	if err != nil {
		panic(err)
	}
	return c
}

// Space returns the colour space of c.
func (c Color) Space() Space {
	return c.space
}

// Components returns the three components of c.
func (c Color) Components() (float64, float64, float64) {
	return c.v[0], c.v[1], c.v[2]
}

// Vec returns the three components of c as a vector.
func (c Color) Vec() f64.Vec3 {
	return c.v
}

// Alpha returns the opacity of c, in the range [0, 1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// White returns the reference white of c.
func (c Color) White() illuminant.WhitePoint {
	if c.white == (illuminant.WhitePoint{}) {
		return illuminant.Default
	}
	return c.white
}

// WithAlpha returns a copy of c with the given opacity.
func (c Color) WithAlpha(alpha float64) (Color, error) {
	if !(alpha >= 0 && alpha <= 1) {
		return Color{}, NewInvalidInputError("WithAlpha", "alpha", "%g ∉ [0,1]", alpha)
	}
	c.white = c.White()
	c.alpha = alpha
	return c, nil
}

// WithWhite re-expresses c relative to the reference white w, using the
// Bradford chromatic adaptation transform.  The result is in the same
// colour space as c.
//
// For the RGB based spaces the components do not change, since the RGB to
// XYZ matrices are adapted in the same way.
func (c Color) WithWhite(w illuminant.WhitePoint) (Color, error) {
	if !w.IsValid() {
		return Color{}, NewInvalidInputError("WithWhite", "white point", "%v", w)
	}
	src := c.White()
	if src == w {
		c.white = w
		return c, nil
	}

	if c.space.isRGB() {
		c.white = w
		return c, nil
	}

	xyz := c.toXYZ()
	xyz = illuminant.Adapt(xyz, src, w)
	res := Color{space: XYZ, v: xyz, alpha: c.alpha, white: w}
	return res.To(c.space), nil
}

// Equal reports whether c and d describe the same colour, up to a tolerance
// of [Epsilon] in every component.  See [Color.ApproxEqual].
func (c Color) Equal(d Color) bool {
	return c.ApproxEqual(d, Epsilon)
}

// ApproxEqual reports whether c and d describe the same colour, up to the
// given tolerance in every component.
//
// If d uses a different colour space or reference white, it is first
// converted to the space and white of c.  If d lies outside the domain of
// c's space, the colours are not equal.  Colours in the cylindrical
// spaces HSV, HSL and LCh are compared via their Cartesian counterparts
// (sRGB resp. Lab), so that the hue of grey colours is ignored.
func (c Color) ApproxEqual(d Color, tol float64) bool {
	if math.Abs(c.alpha-d.alpha) > tol {
		return false
	}
	if d.White() != c.White() {
		var err error
		d, err = d.WithWhite(c.White())
		if err != nil {
			return false
		}
	}
	if d.space != c.space {
		var clamped bool
		d, clamped = d.Convert(c.space)
		if clamped {
			// d lies outside the domain of c's space
			return false
		}
	}

	u := c.cartesian()
	v := d.cartesian()
	for i := range u {
		if math.Abs(u[i]-v[i]) > tol {
			return false
		}
	}
	return true
}

// cartesian returns the components of c, with cylindrical coordinates
// mapped to the corresponding Cartesian space.
func (c Color) cartesian() f64.Vec3 {
	switch c.space {
	case HSV:
		return transform.HSVToRGB(c.v)
	case HSL:
		return transform.HSLToRGB(c.v)
	case LCh:
		return transform.LChToLab(c.v)
	default:
		return c.v
	}
}

// RGB255 returns the sRGB components of c, scaled to 0, ..., 255 and
// rounded.  Colours outside the sRGB gamut are clamped.
func (c Color) RGB255() (r, g, b uint8) {
	s := c.To(SRGB)
	conv := func(x float64) uint8 {
		return uint8(math.Round(clip(x, 0, 1) * 255))
	}
	return conv(s.v[0]), conv(s.v[1]), conv(s.v[2])
}

// String returns a textual representation of c, for example
// "Lab(53.2408 80.0925 67.2032)".  Alpha is included if c is not opaque,
// the reference white is included if it differs from D65.
func (c Color) String() string {
	b := &strings.Builder{}
	b.WriteString(c.space.String())
	if w := c.White(); w != illuminant.Default {
		b.WriteString("[")
		b.WriteString(w.String())
		b.WriteString("]")
	}
	b.WriteString("(")
	for i, x := range c.v {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(float.Format(x, 4))
	}
	if c.alpha < 1 {
		b.WriteString(" / ")
		b.WriteString(float.Format(c.alpha, 4))
	}
	b.WriteString(")")
	return b.String()
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
