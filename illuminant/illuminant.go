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

// Package illuminant provides reference white points and chromatic
// adaptation transforms.
//
// All white points are given as CIE 1931 XYZ tristimulus values for the 2°
// standard observer, normalised so that Y = 1.
package illuminant

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/image/math/f64"
	"golang.org/x/text/cases"
	"seehuhn.de/go/geom/vec"
)

// WhitePoint is a reference white.
// WhitePoint values are comparable and can be used as map keys.
type WhitePoint struct {
	Name string
	XYZ  f64.Vec3
}

// Chromaticity returns the CIE xy chromaticity coordinates of the white point.
func (w WhitePoint) Chromaticity() vec.Vec2 {
	s := w.XYZ[0] + w.XYZ[1] + w.XYZ[2]
	return vec.Vec2{X: w.XYZ[0] / s, Y: w.XYZ[1] / s}
}

func (w WhitePoint) String() string {
	if w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("white(%g, %g, %g)", w.XYZ[0], w.XYZ[1], w.XYZ[2])
}

// IsValid reports whether w can be used as a reference white:
// all components must be positive and finite, and Y must be 1.
func (w WhitePoint) IsValid() bool {
	for _, v := range w.XYZ {
		if !(v > 0) || v > 1e6 {
			return false
		}
	}
	return w.XYZ[1] == 1
}

// Standard illuminants.
//
// https://en.wikipedia.org/wiki/Standard_illuminant#White_points_of_standard_illuminants
var (
	// A is incandescent / tungsten light.
	A = WhitePoint{Name: "A", XYZ: f64.Vec3{1.09850, 1.0, 0.35585}}

	// B is obsolete direct sunlight at noon.
	B = WhitePoint{Name: "B", XYZ: f64.Vec3{0.99072, 1.0, 0.85223}}

	// C is obsolete average daylight.
	C = WhitePoint{Name: "C", XYZ: f64.Vec3{0.98074, 1.0, 1.18232}}

	// D50 is horizon light.  This is the ICC profile connection space white.
	D50 = WhitePoint{Name: "D50", XYZ: f64.Vec3{0.964212, 1.0, 0.8251883}}

	// D55 is mid-morning / mid-afternoon daylight.
	D55 = WhitePoint{Name: "D55", XYZ: f64.Vec3{0.95682, 1.0, 0.92149}}

	// D65 is noon daylight.  This is the white point of sRGB.
	D65 = WhitePoint{Name: "D65", XYZ: f64.Vec3{0.95047, 1.0, 1.08883}}

	// D75 is north sky daylight.
	D75 = WhitePoint{Name: "D75", XYZ: f64.Vec3{0.94972, 1.0, 1.22638}}

	// E is the equal energy illuminant.
	E = WhitePoint{Name: "E", XYZ: f64.Vec3{1.0, 1.0, 1.0}}

	// F2 is a cool white fluorescent lamp.
	F2 = WhitePoint{Name: "F2", XYZ: f64.Vec3{0.99186, 1.0, 0.67393}}

	// F7 is a broad-band daylight fluorescent lamp.
	F7 = WhitePoint{Name: "F7", XYZ: f64.Vec3{0.95041, 1.0, 1.08747}}

	// F11 is a narrow tri-band fluorescent lamp.
	F11 = WhitePoint{Name: "F11", XYZ: f64.Vec3{1.00962, 1.0, 0.64350}}
)

// Default is the white point used when none is specified.
var Default = D65

var standard = []WhitePoint{A, B, C, D50, D55, D65, D75, E, F2, F7, F11}

var byName = func() map[string]WhitePoint {
	m := make(map[string]WhitePoint, len(standard))
	for _, w := range standard {
		m[fold(w.Name)] = w
	}
	return m
}()

// ErrUnknown is returned by [ByName] for names which do not correspond to a
// standard illuminant.
var ErrUnknown = errors.New("unknown illuminant")

// ByName returns the standard illuminant with the given name.
// The lookup is case-insensitive.
func ByName(name string) (WhitePoint, error) {
	w, ok := byName[fold(name)]
	if !ok {
		return WhitePoint{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return w, nil
}

// Names returns the names of all standard illuminants, in sorted order.
func Names() []string {
	res := make([]string, len(standard))
	for i, w := range standard {
		res[i] = w.Name
	}
	slices.Sort(res)
	return res
}

// FromChromaticity returns the white point with the given xy chromaticity
// coordinates.  The coordinates must satisfy x > 0, y > 0 and x+y < 1.
func FromChromaticity(name string, x, y float64) (WhitePoint, error) {
	if !(x > 0 && y > 0 && x+y < 1) {
		return WhitePoint{}, fmt.Errorf("invalid chromaticity (%g, %g)", x, y)
	}
	return WhitePoint{
		Name: name,
		XYZ:  f64.Vec3{x / y, 1, (1 - x - y) / y},
	}, nil
}

func fold(name string) string {
	return cases.Fold().String(name)
}
