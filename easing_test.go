package cue

import (
	"errors"
	"math"
	"testing"
)

func easeOrFatal(t *testing.T, c Curve, p float64) float64 {
	t.Helper()
	v, err := c.Ease(p)
	if err != nil {
		t.Fatalf("Ease(%v, %f) failed: %v", c, p, err)
	}
	return v
}

func TestLinearIsIdentity(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := easeOrFatal(t, Linear, p); got != p {
			t.Errorf("Linear(%f) = %f, want %f", p, got, p)
		}
	}
}

func TestEaseClampsOutOfRangeInput(t *testing.T) {
	if got := easeOrFatal(t, Linear, -0.5); got != 0 {
		t.Errorf("Linear(-0.5) = %f, want 0 (clamped)", got)
	}
	if got := easeOrFatal(t, Linear, 1.5); got != 1 {
		t.Errorf("Linear(1.5) = %f, want 1 (clamped)", got)
	}
	// Clamping applies to every family, not just linear.
	if got := easeOrFatal(t, EaseInOut, 2); got != 1 {
		t.Errorf("EaseInOut(2) = %f, want 1", got)
	}
}

func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{
		Linear, Ease, EaseIn, EaseOut, EaseInOut, Spring,
		InQuad, OutQuad, InOutQuad, InCubic, OutCubic, InOutCubic,
		InSine, OutSine, InOutSine,
		InBack, OutBack, InElastic, OutElastic, InBounce, OutBounce,
		CubicBezier(0.17, 0.67, 0.83, 0.67),
	}
	for _, c := range curves {
		if got := easeOrFatal(t, c, 0); math.Abs(got) > 1e-6 {
			t.Errorf("%v: Ease(0) = %f, want 0", c, got)
		}
		if got := easeOrFatal(t, c, 1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%v: Ease(1) = %f, want 1", c, got)
		}
	}
	// The expo family approaches its endpoints asymptotically; allow the
	// implementation's residual.
	for _, c := range []Curve{InExpo, OutExpo, InOutExpo} {
		if got := easeOrFatal(t, c, 0); math.Abs(got) > 2e-3 {
			t.Errorf("%v: Ease(0) = %f, want ~0", c, got)
		}
		if got := easeOrFatal(t, c, 1); math.Abs(got-1) > 2e-3 {
			t.Errorf("%v: Ease(1) = %f, want ~1", c, got)
		}
	}
}

func TestEasingCurvesProduceDifferentMidpoints(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	linear := easeOrFatal(t, Linear, 0.5)
	cubic := easeOrFatal(t, OutCubic, 0.5)
	if math.Abs(linear-cubic) < 0.05 {
		t.Errorf("curves should diverge at midpoint: linear=%f outCubic=%f", linear, cubic)
	}
	// Ease-in stays below linear through the first half, ease-out above.
	if in := easeOrFatal(t, EaseIn, 0.3); in >= 0.3 {
		t.Errorf("EaseIn(0.3) = %f, want < 0.3", in)
	}
	if out := easeOrFatal(t, EaseOut, 0.3); out <= 0.3 {
		t.Errorf("EaseOut(0.3) = %f, want > 0.3", out)
	}
}

func TestOvershootCurvesExceedUnitRange(t *testing.T) {
	overshot := false
	for p := 0.0; p <= 1.0; p += 0.01 {
		if easeOrFatal(t, OutBack, p) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("OutBack never exceeded 1; expected overshoot")
	}
}

func TestSpringIsDeterministic(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.37, 0.5, 0.9, 1} {
		a := easeOrFatal(t, Spring, p)
		b := easeOrFatal(t, Spring, p)
		if a != b {
			t.Fatalf("Spring(%f) not deterministic: %f vs %f", p, a, b)
		}
	}
	if got := easeOrFatal(t, Spring, 0); got != 0 {
		t.Errorf("Spring(0) = %f, want 0", got)
	}
	if got := easeOrFatal(t, Spring, 1); got != 1 {
		t.Errorf("Spring(1) = %f, want 1", got)
	}
	// The spring should have moved meaningfully off zero by the midpoint.
	if mid := easeOrFatal(t, Spring, 0.5); mid < 0.2 {
		t.Errorf("Spring(0.5) = %f, want noticeable displacement", mid)
	}
}

func TestCubicBezierMonotoneFamiliesStayInRange(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.05 {
		v := easeOrFatal(t, EaseInOut, p)
		if v < -1e-9 || v > 1+1e-9 {
			t.Fatalf("EaseInOut(%f) = %f, outside [0,1]", p, v)
		}
	}
}

func TestZeroCurveFailsWithUnknownCurve(t *testing.T) {
	var zero Curve
	if _, err := zero.Ease(0.5); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("zero curve Ease error = %v, want ErrUnknownCurve", err)
	}
}

func TestParseCurve(t *testing.T) {
	cases := map[string]Curve{
		"linear":      Linear,
		"ease-out":    EaseOut,
		"spring":      Spring,
		"out-elastic": OutElastic,
		"in-out-sine": InOutSine,
	}
	for name, want := range cases {
		got, err := ParseCurve(name)
		if err != nil {
			t.Fatalf("ParseCurve(%q) failed: %v", name, err)
		}
		if got.String() != want.String() {
			t.Errorf("ParseCurve(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseCurve("wiggle"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("ParseCurve(wiggle) error = %v, want ErrUnknownCurve", err)
	}
}

func TestSpringCatalogName(t *testing.T) {
	if Spring.String() != "spring" {
		t.Fatalf("Spring.String() = %q, want %q", Spring.String(), "spring")
	}

	parsed, err := ParseCurve("spring")
	if err != nil {
		t.Fatalf("ParseCurve(spring) failed: %v", err)
	}
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := easeOrFatal(t, parsed, p), easeOrFatal(t, Spring, p); got != want {
			t.Errorf("parsed spring(%f) = %f, want %f", p, got, want)
		}
	}

	// Custom springs carry their parameters in the name and stay out of
	// the catalog.
	custom := SpringWith(4.0, 0.8)
	if custom.String() != "spring(4,0.8)" {
		t.Errorf("SpringWith(4, 0.8).String() = %q, want %q", custom.String(), "spring(4,0.8)")
	}
	if _, err := ParseCurve("spring(4,0.8)"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("ParseCurve(spring(4,0.8)) error = %v, want ErrUnknownCurve", err)
	}
}
