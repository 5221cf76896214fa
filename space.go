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
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"seehuhn.de/go/colorimetry/illuminant"
)

// Space identifies a colour space.
type Space int

// These are the supported colour spaces.
const (
	// SRGB is the sRGB colour space with components R, G, B in [0, 1].
	SRGB Space = iota

	// LinearRGB is sRGB without the transfer function, components in [0, 1].
	LinearRGB

	// HSV is the hue/saturation/value representation of sRGB.
	// Hue is in degrees [0, 360), saturation and value are in [0, 1].
	HSV

	// HSL is the hue/saturation/lightness representation of sRGB.
	// Hue is in degrees [0, 360), saturation and lightness are in [0, 1].
	HSL

	// CMY is the complement of sRGB, components in [0, 1].
	CMY

	// XYZ is CIE 1931 XYZ, normalised so that the reference white has Y = 1.
	XYZ

	// XYY is CIE xyY: chromaticity coordinates x, y and the luminance Y.
	XYY

	// Lab is CIE 1976 L*a*b* with L* in [0, 100].
	Lab

	// LCh is the cylindrical form of L*a*b*: L* in [0, 100], chroma C* ≥ 0
	// and hue in degrees [0, 360).
	LCh

	// Luv is CIE 1976 L*u*v* with L* in [0, 100].
	Luv

	numSpaces
)

// IsValid reports whether s is one of the supported colour spaces.
func (s Space) IsValid() bool {
	return s >= 0 && s < numSpaces
}

func (s Space) String() string {
	switch s {
	case SRGB:
		return "sRGB"
	case LinearRGB:
		return "LinearRGB"
	case HSV:
		return "HSV"
	case HSL:
		return "HSL"
	case CMY:
		return "CMY"
	case XYZ:
		return "XYZ"
	case XYY:
		return "xyY"
	case Lab:
		return "Lab"
	case LCh:
		return "LCh"
	case Luv:
		return "Luv"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// isRGB reports whether s is one of the representations of sRGB.
func (s Space) isRGB() bool {
	switch s {
	case SRGB, LinearRGB, HSV, HSL, CMY:
		return true
	case XYZ, XYY, Lab, LCh, Luv:
		return false
	default:
		panic("unknown colour space " + s.String())
	}
}

// HueIndex returns the index of the component which holds a hue angle in
// degrees, or -1 if s is not a cylindrical space.
func (s Space) HueIndex() int {
	switch s {
	case HSV, HSL:
		return 0
	case LCh:
		return 2
	default:
		return -1
	}
}

// Domain returns the valid range of each component.
// Unbounded ends are represented by ±Inf.  Hue components have the
// range [0, 360), values outside this range are reduced modulo 360.
func (s Space) Domain() [3][2]float64 {
	inf := math.Inf(1)
	unit := [2]float64{0, 1}
	hue := [2]float64{0, 360}
	lightness := [2]float64{0, 100}
	positive := [2]float64{0, inf}
	free := [2]float64{-inf, inf}

	switch s {
	case SRGB, LinearRGB, CMY:
		return [3][2]float64{unit, unit, unit}
	case HSV, HSL:
		return [3][2]float64{hue, unit, unit}
	case XYZ:
		return [3][2]float64{positive, positive, positive}
	case XYY:
		return [3][2]float64{unit, unit, positive}
	case Lab, Luv:
		return [3][2]float64{lightness, free, free}
	case LCh:
		return [3][2]float64{lightness, positive, hue}
	default:
		panic("unknown colour space " + s.String())
	}
}

var spaceNames = map[string]Space{
	"srgb":      SRGB,
	"rgb":       SRGB,
	"linearrgb": LinearRGB,
	"linear":    LinearRGB,
	"linrgb":    LinearRGB,
	"hsv":       HSV,
	"hsb":       HSV,
	"hsl":       HSL,
	"cmy":       CMY,
	"xyz":       XYZ,
	"ciexyz":    XYZ,
	"xyy":       XYY,
	"ciexyy":    XYY,
	"lab":       Lab,
	"cielab":    Lab,
	"lch":       LCh,
	"lchab":     LCh,
	"luv":       Luv,
	"cieluv":    Luv,
}

// ParseSpace returns the colour space with the given name.
// Names are matched case-insensitively; spaces, hyphens and underscores
// are ignored, so that "Linear RGB", "linear-rgb" and "LinearRGB" all
// select [LinearRGB].
func ParseSpace(name string) (Space, error) {
	key := cases.Fold().String(name)
	key = stripSeparators(key)
	if s, ok := spaceNames[key]; ok {
		return s, nil
	}
	return 0, NewInvalidInputError("ParseSpace", "name", "unknown colour space %q", name)
}

func stripSeparators(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '-', '_', '*':
		default:
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// ParseIlluminant returns the standard illuminant with the given name,
// for example "D65" or "d50".  See [illuminant.Names] for the list of
// known names.
func ParseIlluminant(name string) (illuminant.WhitePoint, error) {
	w, err := illuminant.ByName(name)
	if err != nil {
		e := NewInvalidInputError("ParseIlluminant", "name", "%q", name)
		e.Err = err
		return illuminant.WhitePoint{}, e
	}
	return w, nil
}
