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

// Package gradient interpolates between colours.
//
// A [Gradient] maps a parameter t in [0, 1] to a colour, by piecewise
// interpolation between a list of colour stops.  Interpolation takes place
// in a configurable colour space: [colorimetry.Lab] (the default, see
// [DefaultSpace]) gives perceptually even steps, [colorimetry.LinearRGB]
// mixes light physically, and the cylindrical spaces HSV, HSL and LCh
// interpolate the hue along the shorter arc of the colour wheel.
package gradient

import (
	"log/slog"
	"math"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/transform"
)

// DefaultSpace is the recommended interpolation space.
const DefaultSpace = colorimetry.Lab

// achromatic is the chroma (or saturation) below which a colour in a
// cylindrical space is considered to have no hue.
const achromatic = 1e-6

// Options can be used to configure a [Gradient].
type Options struct {
	// Positions (optional) gives the location of each stop within [0, 1].
	// If this is set, it must have the same length as the list of stops
	// and must be strictly increasing.  If this is nil, the stops are
	// evenly spaced, from 0 to 1.
	Positions []float64

	// Easing (optional) is applied to the parameter within each segment.
	// If this is nil, linear interpolation is used.
	Easing Easing
}

// Gradient is a colour gradient.  Gradients are immutable and can be used
// concurrently.
type Gradient struct {
	space     colorimetry.Space
	out       colorimetry.Space
	stops     []colorimetry.Color // converted to space
	positions []float64
	easing    Easing
}

// New creates a gradient which interpolates between the given colours in
// the colour space space.
//
// At least two stops are required.  The colours returned by the gradient
// use the colour space and the reference white of the first stop.  The
// opacity is interpolated linearly.
func New(stops []colorimetry.Color, space colorimetry.Space, opt *Options) (*Gradient, error) {
	const op = "gradient.New"
	if opt == nil {
		opt = &Options{}
	}
	if !space.IsValid() {
		return nil, colorimetry.NewInvalidInputError(op, "space", "unknown colour space %d", int(space))
	}
	k := len(stops)
	if k < 2 {
		return nil, colorimetry.NewInvalidInputError(op, "stops", "need at least 2 colours, got %d", k)
	}

	positions := opt.Positions
	if positions == nil {
		positions = make([]float64, k)
		for i := range positions {
			positions[i] = float64(i) / float64(k-1)
		}
		positions[k-1] = 1
	} else {
		if len(positions) != k {
			return nil, colorimetry.NewInvalidInputError(op, "positions",
				"expected %d values, got %d", k, len(positions))
		}
		for i, p := range positions {
			if !(p >= 0 && p <= 1) {
				return nil, colorimetry.NewInvalidInputError(op, "positions",
					"position %d is %g ∉ [0,1]", i, p)
			}
			if i > 0 && !(p > positions[i-1]) {
				return nil, colorimetry.NewInvalidInputError(op, "positions",
					"positions must be strictly increasing")
			}
		}
		positions = slices.Clone(positions)
	}

	easing := opt.Easing
	if easing == nil {
		easing = Linear
	}

	white := stops[0].White()
	converted := make([]colorimetry.Color, k)
	for i, c := range stops {
		if c.White() != white {
			var err error
			c, err = c.WithWhite(white)
			if err != nil {
				return nil, err
			}
		}
		converted[i] = c.To(space)
	}

	g := &Gradient{
		space:     space,
		out:       stops[0].Space(),
		stops:     converted,
		positions: positions,
		easing:    easing,
	}
	colorimetry.Logger().Debug("new gradient",
		slog.Int("stops", k),
		slog.String("space", space.String()))
	return g, nil
}

// Space returns the colour space used for interpolation.
func (g *Gradient) Space() colorimetry.Space {
	return g.space
}

// At returns the colour at position t, in the colour space of the first
// stop.  Values of t outside [0, 1] are clamped to the nearest end of the
// gradient.  Colours outside the domain of the output space are clamped
// silently; use [Gradient.AtSpace] to detect this.
func (g *Gradient) At(t float64) colorimetry.Color {
	c, _ := g.AtSpace(t, g.out)
	return c
}

// AtSpace returns the colour at position t, converted to the colour space
// s.  The second return value reports whether the interpolated colour had
// to be clamped to the domain of s, see [colorimetry.Color.Convert].
//
// The function panics if s is not a valid colour space.
func (g *Gradient) AtSpace(t float64, s colorimetry.Space) (colorimetry.Color, bool) {
	return g.interpolate(t).Convert(s)
}

// interpolate returns the colour at position t in the interpolation space.
func (g *Gradient) interpolate(t float64) colorimetry.Color {
	p := g.positions
	k := len(p)

	// Each segment covers the half-open interval [p[i], p[i+1]),
	// except for the last one which also includes its right end point.
	t = clip(t, p[0], p[k-1])
	i, found := slices.BinarySearch(p, t)
	if !found {
		i--
	}
	if i > k-2 {
		i = k - 2
	}

	u := (t - p[i]) / (p[i+1] - p[i])
	u = clip(g.easing(u), 0, 1)
	return g.mix(g.stops[i], g.stops[i+1], u)
}

// Sample returns n colours, evenly spaced along the gradient.  The first
// colour is at position 0, the last colour at position 1.
// If n is 1, only the colour at position 0 is returned.
func (g *Gradient) Sample(n int) ([]colorimetry.Color, error) {
	if n < 0 {
		return nil, colorimetry.NewInvalidInputError("Sample", "count", "%d < 0", n)
	}
	res := make([]colorimetry.Color, n)
	for i := range res {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		res[i] = g.At(t)
	}
	return res, nil
}

// mix returns the colour (1-u)·a + u·b, where a and b are in the
// interpolation space.
func (g *Gradient) mix(a, b colorimetry.Color, u float64) colorimetry.Color {
	va := a.Vec()
	vb := b.Vec()

	var res [3]float64
	for j := range res {
		res[j] = lerp(va[j], vb[j], u)
	}
	if h := g.space.HueIndex(); h >= 0 {
		res[h] = mixHue(g.space, va, vb, u)
	}
	alpha := lerp(a.Alpha(), b.Alpha(), u)

	// All components lie between the values at the end points, so the
	// result is within the domain of the space.
	return colorimetry.Must(colorimetry.NewWhite(g.space, a.White(), res[0], res[1], res[2], alpha))
}

// mixHue interpolates the hue component of a and b along the shorter arc.
// If one of the colours has no hue, the hue of the other colour is used.
func mixHue(s colorimetry.Space, a, b [3]float64, u float64) float64 {
	h := s.HueIndex()
	ha, hb := a[h], b[h]
	grayA := isAchromatic(s, a)
	grayB := isAchromatic(s, b)
	switch {
	case grayA && !grayB:
		return hb
	case grayB && !grayA:
		return ha
	}

	d := hb - ha
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return transform.NormalizeHue(ha + u*d)
}

func isAchromatic(s colorimetry.Space, v [3]float64) bool {
	switch s {
	case colorimetry.HSV:
		return v[1] < achromatic || v[2] < achromatic
	case colorimetry.HSL:
		return v[1] < achromatic || v[2] < achromatic || v[2] > 1-achromatic
	case colorimetry.LCh:
		return v[1] < achromatic
	default:
		return false
	}
}

// Interpolate returns the colour at position t of the gradient through
// the given stops, with interpolation in the colour space space.
// The stops are evenly spaced.
func Interpolate(stops []colorimetry.Color, space colorimetry.Space, t float64) (colorimetry.Color, error) {
	g, err := New(stops, space, nil)
	if err != nil {
		return colorimetry.Color{}, err
	}
	return g.At(t), nil
}

func lerp(a, b, u float64) float64 {
	return a*(1-u) + b*u
}

func clip(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	if math.IsNaN(x) {
		return min
	}
	return x
}
