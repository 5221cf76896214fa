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

package illuminant

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/colorimetry/mat3"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"D65", "d65", "D65"} {
		w, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if w != D65 {
			t.Errorf("ByName(%q) = %v", name, w)
		}
	}

	_, err := ByName("D66")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(standard) {
		t.Fatalf("got %d names, want %d", len(names), len(standard))
	}
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		if _, err := ByName(name); err != nil {
			t.Error(err)
		}
	}
}

func TestStandardValid(t *testing.T) {
	for _, w := range standard {
		if !w.IsValid() {
			t.Errorf("%s is not valid", w)
		}
	}
	invalid := []WhitePoint{
		{},
		{XYZ: f64.Vec3{0.9, 0.9, 1}},
		{XYZ: f64.Vec3{math.NaN(), 1, 1}},
		{XYZ: f64.Vec3{1, 1, math.Inf(1)}},
		{XYZ: f64.Vec3{-1, 1, 1}},
	}
	for i, w := range invalid {
		if w.IsValid() {
			t.Errorf("%d: %v is valid", i, w)
		}
	}
}

func TestChromaticity(t *testing.T) {
	testCases := []struct {
		w    WhitePoint
		x, y float64
	}{
		{D65, 0.31271, 0.32902},
		{D50, 0.34567, 0.35850},
		{A, 0.44757, 0.40745},
		{E, 1.0 / 3, 1.0 / 3},
	}
	for _, c := range testCases {
		xy := c.w.Chromaticity()
		if math.Abs(xy.X-c.x) > 1e-4 || math.Abs(xy.Y-c.y) > 1e-4 {
			t.Errorf("%s: got (%.5f, %.5f), want (%.5f, %.5f)",
				c.w, xy.X, xy.Y, c.x, c.y)
		}

		w, err := FromChromaticity("test", xy.X, xy.Y)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.w.XYZ, w.XYZ, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%s: %s", c.w, d)
		}
	}

	for _, xy := range [][2]float64{{0, 0.3}, {0.3, 0}, {0.6, 0.5}, {math.NaN(), 0.3}} {
		if _, err := FromChromaticity("bad", xy[0], xy[1]); err == nil {
			t.Errorf("FromChromaticity(%g, %g) succeeded", xy[0], xy[1])
		}
	}
}

func TestAdaptWhite(t *testing.T) {
	for _, m := range []Method{Bradford, VonKries, XYZScaling} {
		for _, src := range standard {
			for _, dst := range standard {
				t.Run(fmt.Sprintf("%s-%s-%s", m, src, dst), func(t *testing.T) {
					M := AdaptationMatrix(m, src, dst)
					got := M.Apply(src.XYZ)
					if d := cmp.Diff(dst.XYZ, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
						t.Error(d)
					}

					back := M.Mul(AdaptationMatrix(m, dst, src))
					if d := cmp.Diff(mat3.Identity, back, cmpopts.EquateApprox(0, 1e-12)); d != "" {
						t.Error(d)
					}
				})
			}
		}
	}
}

// TestBradfordD65D50 compares against the published Bradford matrix.
func TestBradfordD65D50(t *testing.T) {
	want := mat3.Matrix{
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316,
	}
	got := AdaptationMatrix(Bradford, D65, D50)
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Error(d)
	}
}

func TestAdaptIdentity(t *testing.T) {
	xyz := f64.Vec3{0.2, 0.3, 0.4}
	if got := Adapt(xyz, D65, D65); got != xyz {
		t.Errorf("got %v, want %v", got, xyz)
	}
	if M := AdaptationMatrix(Bradford, D50, D50); M != mat3.Identity {
		t.Errorf("got %v", M)
	}
}
