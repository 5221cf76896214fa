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

package deltae

import (
	"math"

	"golang.org/x/image/math/f64"
)

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// DE2000 computes the CIEDE2000 colour difference between two L*a*b*
// triples.  The weights must be valid, see [Weights.Validate].
//
// The implementation follows G. Sharma, W. Wu and E. N. Dalal, "The
// CIEDE2000 color-difference formula: Implementation notes, supplementary
// test data, and mathematical observations", Color Research & Application
// 30(1), 2005.  All angles are in degrees.
func DE2000(lab1, lab2 f64.Vec3, w Weights) float64 {
	L1, a1, b1 := lab1[0], lab1[1], lab1[2]
	L2, a2, b2 := lab2[0], lab2[1], lab2[2]

	// chroma correction of a*
	cBar := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	cBar7 := math.Pow(cBar, 7)
	G := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))
	a1p := (1 + G) * a1
	a2p := (1 + G) * a2
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	// differences
	dLp := L2 - L1
	dCp := c2p - c1p
	cProd := c1p * c2p
	var dhp float64
	if cProd != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(cProd) * math.Sin(rad(dhp/2))

	// means
	lBarP := (L1 + L2) / 2
	cBarP := (c1p + c2p) / 2
	hBarP := h1p + h2p
	if cProd != 0 {
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hBarP /= 2
		case hBarP < 360:
			hBarP = (hBarP + 360) / 2
		default:
			hBarP = (hBarP - 360) / 2
		}
	}

	// weighting functions
	T := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))
	dTheta := 30 * math.Exp(-sq((hBarP-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	RC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	l50 := sq(lBarP - 50)
	SL := 1 + 0.015*l50/math.Sqrt(20+l50)
	SC := 1 + 0.045*cBarP
	SH := 1 + 0.015*cBarP*T
	RT := -math.Sin(rad(2*dTheta)) * RC

	tL := dLp / (w.KL * SL)
	tC := dCp / (w.KC * SC)
	tH := dHp / (w.KH * SH)
	return math.Sqrt(tL*tL + tC*tC + tH*tH + RT*tC*tH)
}

// hueAngle returns atan2(b, a) in degrees, in the range [0, 360).
// The hue of an achromatic colour is 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
