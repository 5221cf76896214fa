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
	"context"
	"log/slog"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/illuminant"
	"seehuhn.de/go/colorimetry/mat3"
	"seehuhn.de/go/colorimetry/transform"
)

// To converts c to the colour space s.  Colours outside the target domain
// are clamped, see [Color.Convert].
//
// The function panics if s is not a valid colour space.
func (c Color) To(s Space) Color {
	res, _ := c.Convert(s)
	return res
}

// Convert converts c to the colour space s.  The reference white and
// alpha are kept.
//
// If the colour lies outside the domain of s, for example a L*a*b* colour
// outside the sRGB gamut, the result is clamped to the domain and the
// second return value is true.  For the RGB based spaces, clamping is
// applied to the linear RGB values, channel by channel.  Deviations of up
// to 1e-9, which are caused by rounding, are clamped without being reported.
// The result only depends on c and s.
//
// The function panics if s is not a valid colour space.
func (c Color) Convert(s Space) (Color, bool) {
	if !s.IsValid() {
		panic("unknown colour space " + s.String())
	}
	w := c.White()
	if s == c.space {
		c.white = w
		return c, false
	}

	var v f64.Vec3
	var clamped bool
	switch {
	case c.space.isRGB() && s.isRGB():
		v = fromSRGB(s, c.srgb())
	case s.isRGB():
		lin := transform.XYZToLinearRGB(c.toXYZ(), xyzToRGB(w))
		lin, clamped = clampRange(lin, 0, 1)
		v = fromLinearRGB(s, lin)
	default:
		v = fromXYZ(s, c.toXYZ(), w)
	}
	v, domainClamped := clampDomain(s, v)
	clamped = clamped || domainClamped

	res := Color{space: s, v: v, alpha: c.alpha, white: w}
	if logger := Logger(); clamped && logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("colour clamped to gamut",
			slog.String("from", c.String()),
			slog.String("to", res.String()))
	}
	return res, clamped
}

func rgbToXYZ(w illuminant.WhitePoint) mat3.Matrix {
	M, err := transform.RGBToXYZMatrix(transform.SRGBPrimaries, w)
	if err != nil {
		// white points are validated when colours are created
		panic(err)
	}
	return M
}

func xyzToRGB(w illuminant.WhitePoint) mat3.Matrix {
	M, err := transform.XYZToRGBMatrix(transform.SRGBPrimaries, w)
	if err != nil {
		panic(err)
	}
	return M
}

// srgb returns the sRGB components of a colour in one of the RGB based
// spaces.
func (c Color) srgb() f64.Vec3 {
	switch c.space {
	case SRGB:
		return c.v
	case LinearRGB:
		return transform.EncodeSRGB(c.v)
	case HSV:
		return transform.HSVToRGB(c.v)
	case HSL:
		return transform.HSLToRGB(c.v)
	case CMY:
		return transform.CMYToRGB(c.v)
	default:
		panic("not an RGB space: " + c.space.String())
	}
}

// linearRGB returns the linear RGB components of a colour in one of the RGB
// based spaces.
func (c Color) linearRGB() f64.Vec3 {
	switch c.space {
	case SRGB:
		return transform.DecodeSRGB(c.v)
	case LinearRGB:
		return c.v
	default:
		return transform.DecodeSRGB(c.srgb())
	}
}

// toXYZ returns the XYZ coordinates of c, relative to the reference white
// of c.
func (c Color) toXYZ() f64.Vec3 {
	w := c.White()
	switch c.space {
	case SRGB, LinearRGB, HSV, HSL, CMY:
		return transform.LinearRGBToXYZ(c.linearRGB(), rgbToXYZ(w))
	case XYZ:
		return c.v
	case XYY:
		return transform.XYYToXYZ(c.v)
	case Lab:
		return transform.LabToXYZ(c.v, w)
	case LCh:
		return transform.LabToXYZ(transform.LChToLab(c.v), w)
	case Luv:
		return transform.LuvToXYZ(c.v, w)
	default:
		panic("unknown colour space " + c.space.String())
	}
}

func fromSRGB(s Space, rgb f64.Vec3) f64.Vec3 {
	switch s {
	case SRGB:
		return rgb
	case LinearRGB:
		return transform.DecodeSRGB(rgb)
	case HSV:
		return transform.RGBToHSV(rgb)
	case HSL:
		return transform.RGBToHSL(rgb)
	case CMY:
		return transform.RGBToCMY(rgb)
	default:
		panic("not an RGB space: " + s.String())
	}
}

func fromLinearRGB(s Space, lin f64.Vec3) f64.Vec3 {
	if s == LinearRGB {
		return lin
	}
	return fromSRGB(s, transform.EncodeSRGB(lin))
}

func fromXYZ(s Space, xyz f64.Vec3, w illuminant.WhitePoint) f64.Vec3 {
	switch s {
	case XYZ:
		return xyz
	case XYY:
		return transform.XYZToXYY(xyz, w)
	case Lab:
		return transform.XYZToLab(xyz, w)
	case LCh:
		return transform.LabToLCh(transform.XYZToLab(xyz, w))
	case Luv:
		return transform.XYZToLuv(xyz, w)
	default:
		panic("not a CIE space: " + s.String())
	}
}

// clampRange clamps all components of v to [lo, hi].
// The second return value reports whether any component was moved by more
// than the rounding tolerance.
func clampRange(v f64.Vec3, lo, hi float64) (f64.Vec3, bool) {
	clamped := false
	for i, x := range v {
		if x < lo-rangeSlack || x > hi+rangeSlack {
			clamped = true
		}
		v[i] = clip(x, lo, hi)
	}
	return v, clamped
}

// clampDomain clamps v to the domain of s and normalises hue components.
func clampDomain(s Space, v f64.Vec3) (f64.Vec3, bool) {
	dom := s.Domain()
	h := s.HueIndex()
	clamped := false
	for i, x := range v {
		if i == h {
			v[i] = transform.NormalizeHue(x)
			continue
		}
		lo, hi := dom[i][0], dom[i][1]
		if x < lo-rangeSlack || x > hi+rangeSlack {
			clamped = true
		}
		v[i] = clip(x, lo, hi)
	}
	return v, clamped
}
