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
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/colorimetry/illuminant"
)

var allSpaces = []Space{SRGB, LinearRGB, HSV, HSL, CMY, XYZ, XYY, Lab, LCh, Luv}

func rgbGrid() []Color {
	var res []Color
	steps := []float64{0, 0.01, 0.04, 0.2, 0.5, 0.77, 0.99, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				res = append(res, Must(New(SRGB, r, g, b)))
			}
		}
	}
	return res
}

func TestRoundTrip(t *testing.T) {
	for _, c := range rgbGrid() {
		for _, s := range allSpaces {
			d, clamped := c.Convert(s)
			if clamped {
				t.Errorf("%v -> %s was clamped", c, s)
			}
			back := d.To(SRGB)
			if d := cmp.Diff(c.Vec(), back.Vec(), cmpopts.EquateApprox(0, 1e-4)); d != "" {
				t.Errorf("%v -> %s -> sRGB (-want +got):\n%s", c, s, d)
			}
		}
	}
}

func TestWhite(t *testing.T) {
	white := Must(New(SRGB, 1, 1, 1))

	xyz := white.To(XYZ).Vec()
	want := [3]float64{0.95047, 1, 1.08883}
	if d := cmp.Diff(want, [3]float64(xyz), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("white XYZ (-want +got):\n%s", d)
	}

	lab := white.To(Lab).Vec()
	if d := cmp.Diff([3]float64{100, 0, 0}, [3]float64(lab), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("white Lab (-want +got):\n%s", d)
	}
}

func TestKnownValues(t *testing.T) {
	// RGB(45, 28, 156)
	c := Must(New(SRGB, 45.0/255, 28.0/255, 156.0/255))
	xyz := c.To(XYZ).Vec()
	want := [3]float64{0.07496, 0.03788, 0.31782}
	if d := cmp.Diff(want, [3]float64(xyz), cmpopts.EquateApprox(0, 5e-5)); d != "" {
		t.Errorf("XYZ (-want +got):\n%s", d)
	}

	c = Must(New(XYZ, 0.41874, 0.21967, 0.05649))
	r, g, b := c.RGB255()
	if r != 254 || g != 23 || b != 55 {
		t.Errorf("RGB255 = %d %d %d, want 254 23 55", r, g, b)
	}

	red := Must(New(SRGB, 1, 0, 0))
	lab := red.To(Lab).Vec()
	if d := cmp.Diff([3]float64{53.2408, 80.0925, 67.2032}, [3]float64(lab), cmpopts.EquateApprox(0, 1e-3)); d != "" {
		t.Errorf("red Lab (-want +got):\n%s", d)
	}
}

func TestClamp(t *testing.T) {
	c := Must(New(Lab, 50, 120, -120))
	for _, s := range []Space{SRGB, LinearRGB, HSV, HSL, CMY} {
		a, clampedA := c.Convert(s)
		b, clampedB := c.Convert(s)
		if !clampedA || !clampedB {
			t.Errorf("%s: clamp not reported", s)
		}
		if a != b {
			t.Errorf("%s: results differ: %v != %v", s, a, b)
		}
		dom := s.Domain()
		for i, x := range a.Vec() {
			if x < dom[i][0] || x > dom[i][1] {
				t.Errorf("%s: component %d is %g", s, i, x)
			}
		}
	}

	// Converting to the CIE spaces never clamps in-range colours.
	for _, s := range []Space{XYZ, XYY, Lab, LCh, Luv} {
		if _, clamped := c.Convert(s); clamped {
			t.Errorf("%s: unexpected clamp", s)
		}
	}

	// The linear RGB values are clamped, so the hue of an out-of-gamut
	// blue stays blue.
	blue := Must(New(Lab, 30, 60, -110)).To(SRGB)
	r, g, b := blue.Components()
	if !(b > r && b > g) {
		t.Errorf("clamped colour is %v", blue)
	}
}

func TestInvalid(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	testCases := []struct {
		space   Space
		c       [3]float64
		alpha   float64
		comment string
	}{
		{SRGB, [3]float64{nan, 0, 0}, 1, "NaN"},
		{Lab, [3]float64{50, inf, 0}, 1, "Inf"},
		{XYZ, [3]float64{0, 0, -inf}, 1, "-Inf"},
		{SRGB, [3]float64{1.1, 0, 0}, 1, "red too large"},
		{CMY, [3]float64{0, -0.01, 0}, 1, "negative"},
		{Lab, [3]float64{101, 0, 0}, 1, "L too large"},
		{LCh, [3]float64{50, -1, 0}, 1, "negative chroma"},
		{HSV, [3]float64{nan, 0, 0}, 1, "NaN hue"},
		{SRGB, [3]float64{0, 0, 0}, 1.5, "alpha too large"},
		{SRGB, [3]float64{0, 0, 0}, nan, "alpha NaN"},
		{Space(-1), [3]float64{0, 0, 0}, 1, "invalid space"},
		{numSpaces, [3]float64{0, 0, 0}, 1, "invalid space"},
	}
	for _, test := range testCases {
		_, err := NewAlpha(test.space, test.c[0], test.c[1], test.c[2], test.alpha)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", test.comment, err)
		}
		var e *InvalidInputError
		if !errors.As(err, &e) || e.Op != "New" {
			t.Errorf("%s: unexpected error %v", test.comment, err)
		}
	}

	_, err := NewWhite(SRGB, illuminant.WhitePoint{}, 0, 0, 0, 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero white point: expected ErrInvalidInput, got %v", err)
	}

	red := Must(New(SRGB, 1, 0, 0))
	if _, err := red.WithAlpha(-0.5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("WithAlpha: expected ErrInvalidInput, got %v", err)
	}
	if _, err := red.WithWhite(illuminant.WhitePoint{XYZ: [3]float64{1, 2, 1}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("WithWhite: expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalise(t *testing.T) {
	c, err := New(HSV, 725, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if h, _, _ := c.Components(); math.Abs(h-5) > 1e-12 {
		t.Errorf("hue = %g, want 5", h)
	}

	c, err = New(LCh, 50, 10, -90)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, h := c.Components(); h != 270 {
		t.Errorf("hue = %g, want 270", h)
	}

	// rounding errors are tolerated
	c, err = New(SRGB, 1+1e-12, -1e-12, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, _ := c.Components(); r != 1 || g != 0 {
		t.Errorf("components not clamped: %v", c)
	}
}

func TestZeroColor(t *testing.T) {
	var c Color
	if c.Space() != SRGB || c.Alpha() != 0 || c.White() != illuminant.D65 {
		t.Errorf("unexpected zero colour %v", c)
	}
	L, _, _ := c.To(Lab).Components()
	if math.Abs(L) > 1e-12 {
		t.Errorf("L = %g, want 0", L)
	}
}

func TestEqual(t *testing.T) {
	red := Must(New(SRGB, 1, 0, 0))
	for _, s := range allSpaces {
		other := red.To(s)
		if !red.Equal(other) {
			t.Errorf("%v != %v", red, other)
		}
		if !other.Equal(red) {
			t.Errorf("%v != %v", other, red)
		}
	}

	grey1 := Must(New(HSV, 0, 0, 0.5))
	grey2 := Must(New(HSV, 120, 0, 0.5))
	if !grey1.Equal(grey2) {
		t.Error("hue of grey is not ignored")
	}
	a := Must(New(HSV, 359.9999999, 1, 1))
	b := Must(New(HSV, 0, 1, 1))
	if !a.Equal(b) {
		t.Error("hue is not compared modulo 360")
	}

	if red.Equal(Must(New(SRGB, 1, 0.01, 0))) {
		t.Error("different colours compare equal")
	}
	if red.Equal(Must(NewAlpha(SRGB, 1, 0, 0, 0.5))) {
		t.Error("alpha is ignored")
	}
	if !red.ApproxEqual(Must(New(SRGB, 1, 0.01, 0)), 0.02) {
		t.Error("tolerance is ignored")
	}
}

func TestEqualOutsideGamut(t *testing.T) {
	lab := Must(New(Lab, 50, 120, -120))
	clampedRGB, clamped := lab.Convert(SRGB)
	if !clamped {
		t.Fatalf("%v is inside the sRGB gamut", lab)
	}
	if clampedRGB.Equal(lab) {
		t.Errorf("%v equals %v", clampedRGB, lab)
	}
	if lab.Equal(clampedRGB) {
		t.Errorf("%v equals %v", lab, clampedRGB)
	}

	// Both directions agree for colours inside the gamut.
	inside := Must(New(Lab, 50, 20, -30))
	rgb := inside.To(SRGB)
	if !rgb.Equal(inside) || !inside.Equal(rgb) {
		t.Errorf("%v and %v differ", inside, rgb)
	}
}

func TestWithWhite(t *testing.T) {
	c := Must(New(Lab, 60, 30, -40))
	d, err := c.WithWhite(illuminant.D50)
	if err != nil {
		t.Fatal(err)
	}
	if d.White() != illuminant.D50 || d.Space() != Lab {
		t.Errorf("unexpected result %v", d)
	}
	if !c.Equal(d) {
		t.Errorf("%v != %v", c, d)
	}
	e, err := d.WithWhite(illuminant.D65)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.Vec(), e.Vec(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("D65 -> D50 -> D65 (-want +got):\n%s", diff)
	}

	// The reference white is mapped to the new reference white.
	w := Must(NewWhite(XYZ, illuminant.A, 1.09850, 1, 0.35585, 1))
	w, err = w.WithWhite(illuminant.D65)
	if err != nil {
		t.Fatal(err)
	}
	want := [3]float64(illuminant.D65.XYZ)
	if diff := cmp.Diff(want, [3]float64(w.Vec()), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("white point (-want +got):\n%s", diff)
	}

	// RGB values are relative to the white point.
	red := Must(New(SRGB, 1, 0, 0))
	red50, err := red.WithWhite(illuminant.D50)
	if err != nil {
		t.Fatal(err)
	}
	if red50.Vec() != red.Vec() {
		t.Errorf("sRGB components changed: %v", red50)
	}
}

func TestParseSpace(t *testing.T) {
	testCases := []struct {
		in   string
		want Space
	}{
		{"sRGB", SRGB},
		{"rgb", SRGB},
		{"Linear RGB", LinearRGB},
		{"linear-rgb", LinearRGB},
		{"HSB", HSV},
		{"hsl", HSL},
		{"CIE L*a*b*", Lab},
		{"CIELAB", Lab},
		{"LCh", LCh},
		{"xyY", XYY},
		{"XYZ", XYZ},
		{"L*u*v*", Luv},
		{"cmy", CMY},
	}
	for _, test := range testCases {
		got, err := ParseSpace(test.in)
		if err != nil {
			t.Errorf("ParseSpace(%q): %v", test.in, err)
		} else if got != test.want {
			t.Errorf("ParseSpace(%q) = %s, want %s", test.in, got, test.want)
		}
	}

	for _, s := range allSpaces {
		got, err := ParseSpace(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpace(%q) = %s, %v", s.String(), got, err)
		}
	}

	_, err := ParseSpace("YCbCr")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseIlluminant(t *testing.T) {
	w, err := ParseIlluminant("d50")
	if err != nil {
		t.Fatal(err)
	}
	if w != illuminant.D50 {
		t.Errorf("got %v, want D50", w)
	}

	_, err = ParseIlluminant("D42")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, illuminant.ErrUnknown) {
		t.Errorf("expected illuminant.ErrUnknown, got %v", err)
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		c    Color
		want string
	}{
		{Must(New(Lab, 53.24079, 80.09246, 67.2032)), "Lab(53.2408 80.0925 67.2032)"},
		{Must(NewAlpha(SRGB, 1, 0, 0, 0.5)), "sRGB(1 0 0 / 0.5)"},
		{Must(NewWhite(Lab, illuminant.D50, 50, 0, 0, 1)), "Lab[D50](50 0 0)"},
		{Must(New(HSV, 120, 0.25, 1)), "HSV(120 0.25 1)"},
	}
	for _, test := range testCases {
		if got := test.c.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestStdColor(t *testing.T) {
	red := Must(New(SRGB, 1, 0, 0))
	r, g, b, a := red.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}

	half := Must(NewAlpha(SRGB, 1, 1, 1, 0.5))
	r, _, _, a = half.RGBA()
	if r != 0x8000 || a != 0x8000 {
		t.Errorf("RGBA() = %d ... %d, want premultiplied values", r, a)
	}

	// the gray is converted without loss
	c := FromStd(color.Gray16{Y: 0x4000})
	if c.Space() != SRGB || c.Alpha() != 1 {
		t.Errorf("unexpected colour %v", c)
	}
	if d := cmp.Diff([3]float64{0x4000 / 65535.0, 0x4000 / 65535.0, 0x4000 / 65535.0}, [3]float64(c.Vec())); d != "" {
		t.Errorf("FromStd (-want +got):\n%s", d)
	}

	c = FromStd(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if !c.ApproxEqual(Must(NewAlpha(SRGB, 1, 0, 0, 128.0/255)), 1e-4) {
		t.Errorf("unexpected colour %v", c)
	}

	if got := FromStd(color.NRGBA{R: 255, A: 255}); got != red {
		t.Errorf("FromStd(red) = %#v, want %#v", got, red)
	}

	lab := red.To(Lab)
	if got := FromStd(lab); got != lab {
		t.Errorf("FromStd changed a Color value: %v", got)
	}

	converted := Model.Convert(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	if !converted.(Color).Equal(Must(New(SRGB, 0, 0, 1))) {
		t.Errorf("unexpected colour %v", converted)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Must(New(SRGB, 0.5, 0.5, 0.5)).To(Lab)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	Must(New(Lab, 50, 120, -120)).To(SRGB)
	if !strings.Contains(buf.String(), "clamped") {
		t.Errorf("clamping was not logged: %q", buf.String())
	}
}
