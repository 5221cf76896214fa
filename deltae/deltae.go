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

// Package deltae computes perceptual colour differences.
//
// The recommended measure is [CIEDE2000].  The older formulas [CIE76] and
// [CIE94] are provided for compatibility with existing data.  All
// functions convert their arguments to CIE L*a*b* relative to the D65
// white point first, adapting the reference white where needed.  Distances
// are in units of L*, a difference of about 1 is just noticeable.
package deltae

import (
	"math"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/illuminant"
)

// Weights are the parametric weighting factors of the CIEDE2000 formula.
// Larger values reduce the influence of the corresponding term.
type Weights struct {
	KL float64 // lightness
	KC float64 // chroma
	KH float64 // hue
}

// DefaultWeights are the reference conditions used for most applications.
var DefaultWeights = Weights{KL: 1, KC: 1, KH: 1}

// Validate checks that all weights are positive and finite.
func (w Weights) Validate() error {
	check := func(name string, k float64) error {
		if !(k > 0) || math.IsInf(k, 1) {
			return colorimetry.NewInvalidInputError("Weights", name, "%g is not a positive number", k)
		}
		return nil
	}
	if err := check("KL", w.KL); err != nil {
		return err
	}
	if err := check("KC", w.KC); err != nil {
		return err
	}
	return check("KH", w.KH)
}

// CIEDE2000 returns the CIEDE2000 colour difference between a and b,
// using the weights w.  An error is returned if w is not valid.
func (w Weights) CIEDE2000(a, b colorimetry.Color) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return DE2000(toLab(a), toLab(b), w), nil
}

// CIEDE2000 returns the CIEDE2000 colour difference between a and b,
// using [DefaultWeights].  The result is symmetric in a and b, and is
// zero if a and b are the same colour.  Alpha is ignored.
func CIEDE2000(a, b colorimetry.Color) float64 {
	return DE2000(toLab(a), toLab(b), DefaultWeights)
}

// CIE76 returns the Euclidean distance between a and b in L*a*b* space.
func CIE76(a, b colorimetry.Color) float64 {
	x := toLab(a)
	y := toLab(b)
	return math.Sqrt(sq(x[0]-y[0]) + sq(x[1]-y[1]) + sq(x[2]-y[2]))
}

// CIE94 returns the CIE94 colour difference of sample from ref, using the
// constants for graphic arts.  Unlike the other measures, CIE94 is not
// symmetric: the weighting functions depend on the chroma of ref.
func CIE94(ref, sample colorimetry.Color) float64 {
	const (
		kL = 1.0
		k1 = 0.045
		k2 = 0.015
	)

	x := toLab(ref)
	y := toLab(sample)

	dL := x[0] - y[0]
	c1 := math.Hypot(x[1], x[2])
	c2 := math.Hypot(y[1], y[2])
	dC := c1 - c2
	dH2 := sq(x[1]-y[1]) + sq(x[2]-y[2]) - sq(dC)
	if dH2 < 0 {
		dH2 = 0
	}

	sC := 1 + k1*c1
	sH := 1 + k2*c1
	return math.Sqrt(sq(dL/kL) + sq(dC/sC) + dH2/sq(sH))
}

// toLab returns the L*a*b* coordinates of c, relative to D65.
func toLab(c colorimetry.Color) f64.Vec3 {
	if c.White() != illuminant.D65 {
		// D65 is a valid white point, so no error can occur here.
		c, _ = c.WithWhite(illuminant.D65)
	}
	return c.To(colorimetry.Lab).Vec()
}

func sq(x float64) float64 {
	return x * x
}
