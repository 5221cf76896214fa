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
	"errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/illuminant"
	"seehuhn.de/go/colorimetry/mat3"
	"seehuhn.de/go/geom/vec"
)

// Primaries describes an RGB colour space by the chromaticities of its red,
// green and blue primaries together with its native white point.
type Primaries struct {
	Name             string
	Red, Green, Blue vec.Vec2
	White            illuminant.WhitePoint
}

// Standard RGB primaries.
var (
	// SRGBPrimaries are the ITU-R BT.709 primaries used by sRGB.
	SRGBPrimaries = Primaries{
		Name:  "sRGB",
		Red:   vec.Vec2{X: 0.64, Y: 0.33},
		Green: vec.Vec2{X: 0.30, Y: 0.60},
		Blue:  vec.Vec2{X: 0.15, Y: 0.06},
		White: illuminant.D65,
	}

	// AdobeRGBPrimaries are the primaries of Adobe RGB (1998).
	AdobeRGBPrimaries = Primaries{
		Name:  "Adobe RGB",
		Red:   vec.Vec2{X: 0.64, Y: 0.33},
		Green: vec.Vec2{X: 0.21, Y: 0.71},
		Blue:  vec.Vec2{X: 0.15, Y: 0.06},
		White: illuminant.D65,
	}

	// ProPhotoPrimaries are the primaries of ProPhoto RGB (ROMM RGB).
	ProPhotoPrimaries = Primaries{
		Name:  "ProPhoto RGB",
		Red:   vec.Vec2{X: 0.7347, Y: 0.2653},
		Green: vec.Vec2{X: 0.1596, Y: 0.8404},
		Blue:  vec.Vec2{X: 0.0366, Y: 0.0001},
		White: illuminant.D50,
	}
)

type matrixKey struct {
	p Primaries
	w illuminant.WhitePoint
}

type matrixPair struct {
	toXYZ, fromXYZ mat3.Matrix
}

// matrices caches the conversion matrices.  Entries are never modified
// once stored.
var matrices sync.Map // matrixKey -> *matrixPair

// RGBToXYZMatrix returns the matrix which maps linear RGB values in the
// colour space given by p to XYZ values relative to the white point w.
//
// If w differs from the native white point of p, the matrix includes a
// Bradford chromatic adaptation from p.White to w.  In either case the RGB
// value (1, 1, 1) is mapped to w.
func RGBToXYZMatrix(p Primaries, w illuminant.WhitePoint) (mat3.Matrix, error) {
	mp, err := getMatrices(p, w)
	if err != nil {
		return mat3.Matrix{}, err
	}
	return mp.toXYZ, nil
}

// XYZToRGBMatrix returns the inverse of [RGBToXYZMatrix].
func XYZToRGBMatrix(p Primaries, w illuminant.WhitePoint) (mat3.Matrix, error) {
	mp, err := getMatrices(p, w)
	if err != nil {
		return mat3.Matrix{}, err
	}
	return mp.fromXYZ, nil
}

func getMatrices(p Primaries, w illuminant.WhitePoint) (*matrixPair, error) {
	key := matrixKey{p, w}
	if mp, ok := matrices.Load(key); ok {
		return mp.(*matrixPair), nil
	}

	if !w.IsValid() {
		return nil, fmt.Errorf("invalid white point %v", w)
	}
	if !p.White.IsValid() {
		return nil, fmt.Errorf("%s: invalid white point %v", p.Name, p.White)
	}
	native, err := primariesMatrix(p)
	if err != nil {
		return nil, err
	}
	toXYZ := native.Mul(illuminant.AdaptationMatrix(illuminant.Bradford, p.White, w))
	mp := &matrixPair{toXYZ: toXYZ, fromXYZ: toXYZ.Inv()}

	// Concurrent callers may compute the same pair; the values are identical.
	actual, _ := matrices.LoadOrStore(key, mp)
	return actual.(*matrixPair), nil
}

// primariesMatrix computes the RGB to XYZ matrix relative to the native
// white point of p.
//
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
func primariesMatrix(p Primaries) (mat3.Matrix, error) {
	col := func(c vec.Vec2) (f64.Vec3, bool) {
		if !(c.Y > 0) || math.IsInf(c.X, 0) || math.IsNaN(c.X) {
			return f64.Vec3{}, false
		}
		return f64.Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}, true
	}
	r, okR := col(p.Red)
	g, okG := col(p.Green)
	b, okB := col(p.Blue)
	if !(okR && okG && okB) {
		return mat3.Matrix{}, fmt.Errorf("%s: invalid primaries", p.Name)
	}

	P := mat3.FromColumns(r, g, b)
	if det := P.Det(); math.Abs(det) < 1e-12 || math.IsNaN(det) {
		return mat3.Matrix{}, errSingular
	}
	S := P.Inv().Apply(p.White.XYZ)

	// first scale the channels, then map to XYZ
	return mat3.Diag(S[0], S[1], S[2]).Mul(P), nil
}

var errSingular = errors.New("primaries are collinear")

// LinearRGBToXYZ maps linear RGB values to XYZ using the matrix M, as
// returned by [RGBToXYZMatrix].
func LinearRGBToXYZ(rgb f64.Vec3, M mat3.Matrix) f64.Vec3 {
	return M.Apply(rgb)
}

// XYZToLinearRGB maps XYZ values to linear RGB using the matrix M, as
// returned by [XYZToRGBMatrix].
func XYZToLinearRGB(xyz f64.Vec3, M mat3.Matrix) f64.Vec3 {
	return M.Apply(xyz)
}
