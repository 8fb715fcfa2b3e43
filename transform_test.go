package cue

import (
	"math"
	"testing"
)

func pointNear(t *testing.T, gotX, gotY, wantX, wantY float64, context string) {
	t.Helper()
	if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
		t.Errorf("%s: point = (%f, %f), want (%f, %f)", context, gotX, gotY, wantX, wantY)
	}
}

func TestIdentityAffineMapsPointsUnchanged(t *testing.T) {
	m := Identity.Affine(100, 50)
	for _, pt := range [][2]float64{{0, 0}, {100, 50}, {37, 12}} {
		x, y := ApplyAffine(m, pt[0], pt[1])
		pointNear(t, x, y, pt[0], pt[1], "identity")
	}
}

func TestAffinePercentTranslation(t *testing.T) {
	tr := Identity
	tr.TranslateX = -50 // percent of a 200px-wide element = -100px
	m := tr.Affine(200, 100)
	x, y := ApplyAffine(m, 0, 0)
	pointNear(t, x, y, -100, 0, "translateX(-50%)")
}

func TestAffineScalesAboutCenter(t *testing.T) {
	tr := Identity
	tr.ScaleX = 0.5
	tr.ScaleY = 0.5
	m := tr.Affine(100, 100)

	// The center pivot stays put; corners move halfway toward it.
	cx, cy := ApplyAffine(m, 50, 50)
	pointNear(t, cx, cy, 50, 50, "center under scale")
	ox, oy := ApplyAffine(m, 0, 0)
	pointNear(t, ox, oy, 25, 25, "corner under scale")
}

func TestAffineRotatesAboutCenter(t *testing.T) {
	tr := Identity
	tr.Rotate = 90
	m := tr.Affine(100, 100)

	cx, cy := ApplyAffine(m, 50, 50)
	pointNear(t, cx, cy, 50, 50, "center under rotation")

	// 90deg clockwise sends the top-right corner to the bottom-right.
	x, y := ApplyAffine(m, 100, 0)
	pointNear(t, x, y, 100, 100, "corner under rotation")
}

func TestMulAffineComposes(t *testing.T) {
	place := TranslationAffine(300, 200)
	tr := Identity
	tr.ScaleX = 2
	tr.ScaleY = 2
	local := tr.Affine(100, 100)

	m := MulAffine(place, local)
	// Element center lands at offset + center.
	x, y := ApplyAffine(m, 50, 50)
	pointNear(t, x, y, 350, 250, "composed center")
}

func TestInvertAffineRoundTrips(t *testing.T) {
	tr := Identity
	tr.TranslateX = 30
	tr.ScaleX = 1.5
	tr.ScaleY = 0.75
	tr.Rotate = 33
	m := tr.Affine(120, 80)
	inv := InvertAffine(m)

	fx, fy := ApplyAffine(m, 17, 29)
	x, y := ApplyAffine(inv, fx, fy)
	pointNear(t, x, y, 17, 29, "invert round trip")
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	tr := Identity
	tr.ScaleX = 0 // degenerate
	m := tr.Affine(100, 100)
	if got := InvertAffine(m); got != identityAffine {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity.IsIdentity() {
		t.Fatal("Identity must report IsIdentity")
	}
	tr := Identity
	tr.Rotate = 1
	if tr.IsIdentity() {
		t.Fatal("rotated transform must not report IsIdentity")
	}
}
